package main

import (
	log "github.com/sirupsen/logrus"
)

// DropTarget receives drag payloads on the canvas. Bad payloads are logged
// and dropped without touching the scene.
type DropTarget struct {
	scene  *Scene
	popups *PopupController
	logger log.FieldLogger
}

func NewDropTarget(scene *Scene, popups *PopupController, logger log.FieldLogger) *DropTarget {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &DropTarget{scene: scene, popups: popups, logger: logger}
}

// Drop parses payload and places the task at the device point. It returns
// the new placement id, or "" when nothing was placed.
func (d *DropTarget) Drop(payload string, device Point, origin Rect) string {
	task, err := DecodeDragPayload(payload)
	if err != nil {
		d.logger.WithError(err).Warn("ignoring drop")
		return ""
	}
	if origin.Width <= 0 || origin.Height <= 0 {
		d.logger.Warn("ignoring drop: canvas has no size")
		return ""
	}
	pos := CanvasPoint(device, origin, d.scene.Zoom())
	id := d.scene.AddTask(task, pos)
	d.logger.WithFields(log.Fields{"task": id, "x": pos.X, "y": pos.Y}).Debug("task dropped")
	if d.popups != nil {
		d.popups.OnTaskPlaced(id)
	}
	return id
}
