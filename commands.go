package main

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const storeTimeout = 5 * time.Second

type snapshotLoadedMsg struct {
	key       string
	snap      Snapshot
	err       error
	initial   bool
	newBuffer bool
}

type snapshotSavedMsg struct {
	buf      *Buffer
	revision uint64
	key      string
	name     string
	err      error
}

type snapshotListMsg struct {
	infos []SnapshotInfo
	err   error
}

type snapshotDeletedMsg struct {
	key string
	err error
}

type uploadDoneMsg struct {
	popups *PopupController
	res    UploadResult
}

type exportDoneMsg struct {
	path string
	err  error
}

func loadCmd(store *SnapshotStore, key string, initial, newBuffer bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		var (
			snap Snapshot
			err  error
		)
		if initial {
			snap, err = store.Load(ctx, key)
		} else {
			snap, err = store.Activate(ctx, key)
		}
		return snapshotLoadedMsg{key: key, snap: snap, err: err, initial: initial, newBuffer: newBuffer}
	}
}

// saveCmd writes snap for buf. A non-empty name creates a new named
// snapshot; otherwise the buffer's own key (or the default key) is used.
func saveCmd(store *SnapshotStore, buf *Buffer, snap Snapshot, name string) tea.Cmd {
	key, rev := buf.key, buf.revision
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if name != "" {
			k, err := store.Save(ctx, snap, name)
			return snapshotSavedMsg{buf: buf, revision: rev, key: k, name: name, err: err}
		}
		if key == "" || key == defaultSnapshotKey {
			k, err := store.Save(ctx, snap, "")
			return snapshotSavedMsg{buf: buf, revision: rev, key: k, name: snap.Name, err: err}
		}
		err := store.SaveAs(ctx, key, snap)
		return snapshotSavedMsg{buf: buf, revision: rev, key: key, name: snap.Name, err: err}
	}
}

func listCmd(store *SnapshotStore) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		infos, err := store.List(ctx)
		return snapshotListMsg{infos: infos, err: err}
	}
}

func deleteCmd(store *SnapshotStore, key string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return snapshotDeletedMsg{key: key, err: store.Delete(ctx, key)}
	}
}

func uploadCmd(popups *PopupController, read func() UploadResult) tea.Cmd {
	return func() tea.Msg {
		return uploadDoneMsg{popups: popups, res: read()}
	}
}

// exportCmd renders a copy of the scene so the event loop can keep
// mutating the live one.
func exportCmd(snap Snapshot, path string, png bool, vp Viewport) tea.Cmd {
	return func() tea.Msg {
		scene := NewScene()
		scene.Restore(snap)
		var err error
		if png {
			err = scene.ExportToPNG(path)
		} else {
			err = scene.ExportVisualTXT(path, vp)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "No saved workflow found"
	case errors.Is(err, ErrCorrupt):
		return "Saved workflow is corrupt; keeping the current canvas"
	default:
		return "Failed to load workflow: " + err.Error()
	}
}
