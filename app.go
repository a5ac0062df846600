package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

func initialModel(cfg *Config, store *SnapshotStore, logger log.FieldLogger, initialKey string) model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 512

	mode := ModeNormal
	if cfg.StartMenu {
		mode = ModeStartup
	}
	return model{
		buffers:    []*Buffer{newBuffer(cfg, logger)},
		mode:       mode,
		catalog:    DefaultCatalog(),
		input:      input,
		config:     cfg,
		store:      store,
		logger:     logger,
		initialKey: initialKey,
		cursorY:    toolbarHeight,
	}
}

// Init restores the last workflow so the canvas comes back where it was left.
func (m model) Init() tea.Cmd {
	return loadCmd(m.store, m.initialKey, true, false)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case snapshotLoadedMsg:
		return m.handleLoaded(msg)

	case snapshotSavedMsg:
		if msg.err != nil {
			m.logger.WithError(msg.err).Error("save failed")
			m.errorMessage = "Failed to save workflow: " + msg.err.Error()
			return m, nil
		}
		msg.buf.key = msg.key
		if msg.name != "" {
			msg.buf.name = msg.name
		}
		if msg.buf.revision == msg.revision {
			msg.buf.dirty = false
		}
		m.errorMessage = ""
		m.successMessage = "Workflow saved"
		return m, nil

	case snapshotListMsg:
		if msg.err != nil {
			m.errorMessage = "Failed to list workflows: " + msg.err.Error()
			m.mode = ModeNormal
			return m, nil
		}
		m.snapshots = msg.infos
		if m.selectedSnapshot >= len(m.snapshots) {
			m.selectedSnapshot = len(m.snapshots) - 1
		}
		if m.selectedSnapshot < 0 {
			m.selectedSnapshot = 0
		}
		return m, nil

	case snapshotDeletedMsg:
		if msg.err != nil {
			m.errorMessage = "Failed to delete workflow: " + msg.err.Error()
			return m, nil
		}
		m.successMessage = "Workflow deleted"
		return m, listCmd(m.store)

	case uploadDoneMsg:
		ok, err := msg.popups.CompleteUpload(msg.res)
		switch {
		case errors.Is(err, errInvalidFileType):
			m.errorMessage = "Please upload an image file"
		case err != nil:
			m.errorMessage = err.Error()
		case ok:
			m.errorMessage = ""
			m.successMessage = fmt.Sprintf("Attached %s", filepath.Base(msg.res.Path))
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting: %s", msg.err.Error())
			return m, nil
		}
		absPath, _ := filepath.Abs(msg.path)
		m.errorMessage = ""
		m.successMessage = fmt.Sprintf("Exported to %s", absPath)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help && m.mode != ModeStartup {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case ModeStartup:
			return m.handleStartupKey(msg)
		case ModeNormal:
			return m.handleNormalKey(msg)
		case ModeCatalog:
			return m.handleCatalogKey(msg)
		case ModePlacing:
			return m.handlePlacingKey(msg)
		case ModeTextInput:
			return m.handleTextInputKey(msg)
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModeMove:
			return m.handleMoveKey(msg)
		case ModeLoad:
			return m.handleLoadKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		}
	}
	return m, nil
}

func (m model) handleLoaded(msg snapshotLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.initial && errors.Is(msg.err, ErrNotFound) {
			return m, nil
		}
		m.logger.WithError(msg.err).WithField("key", msg.key).Warn("load failed")
		m.errorMessage = loadErrorMessage(msg.err)
		if m.mode == ModeLoad {
			m.mode = ModeNormal
		}
		return m, nil
	}
	buf := m.getCurrentBuffer()
	if msg.initial && !msg.newBuffer && buf != nil && buf.dirty {
		m.logger.WithField("key", msg.key).Info("skipping startup restore over unsaved edits")
		return m, nil
	}
	if msg.newBuffer || buf == nil {
		buf = newBuffer(m.config, m.logger)
		m.addNewBuffer(buf)
	}
	buf.popups.Close()
	buf.scene.Restore(msg.snap)
	buf.key = msg.key
	if buf.key == "" {
		buf.key = defaultSnapshotKey
	}
	buf.name = msg.snap.Name
	buf.dirty = false
	buf.panX, buf.panY = 0, 0
	if !msg.initial {
		m.mode = ModeNormal
		m.successMessage = "Workflow loaded successfully"
		m.errorMessage = ""
	}
	m.ensureCursorInBounds()
	return m, nil
}

func (m model) handleStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "c":
		m.mode = ModeNormal
		return m, nil
	case "n":
		if buf := m.getCurrentBuffer(); buf != nil {
			buf.scene.Clear()
			buf.key, buf.name, buf.dirty = "", "", false
		}
		m.mode = ModeNormal
		return m, nil
	case "o":
		return m.openLoadPicker(false)
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		maxScroll := len(helpLines) - (m.height - 1)
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.zPanMode = false
		if m.pointerDown {
			buf.engine.PointerUp()
			m.pointerDown = false
		}
		if buf.popups.State().IsOpen {
			buf.popups.Close()
			return m, nil
		}
		buf.engine.SetTool(ToolSelect)
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	key := msg.String()
	if tool, ok := toolKeys[key]; ok {
		if m.pointerDown {
			m.pointerDown = false
		}
		buf.engine.SetTool(tool)
		m.successMessage = fmt.Sprintf("Tool: %s", tool)
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		if !m.config.Confirmations {
			return m, m.quitCmd()
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil
	case "n":
		m.createNewBuffer = false
		if !m.config.Confirmations || buf.scene.IsEmpty() {
			return m.applyConfirm(ConfirmNewCanvas)
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmNewCanvas
		return m, nil
	case "N":
		m.addNewBuffer(newBuffer(m.config, m.logger))
		m.errorMessage = ""
		m.successMessage = ""
		m.ensureCursorInBounds()
		return m, nil
	case "{":
		if len(m.buffers) > 1 {
			m.currentBufferIndex--
			if m.currentBufferIndex < 0 {
				m.currentBufferIndex = len(m.buffers) - 1
			}
		}
		return m, nil
	case "}":
		if len(m.buffers) > 1 {
			m.currentBufferIndex++
			if m.currentBufferIndex >= len(m.buffers) {
				m.currentBufferIndex = 0
			}
		}
		return m, nil
	case "x":
		if !m.config.Confirmations {
			return m.applyConfirm(ConfirmCloseBuffer)
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmCloseBuffer
		return m, nil
	case "?":
		m.help = !m.help
		return m, nil
	case "z":
		m.zPanMode = !m.zPanMode
		return m, nil
	case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
		res, cmd := m.handleNavigation(key, m.getMoveSpeed(key))
		if m.pointerDown {
			buf.engine.PointerMove(m.cursorCanvasPoint())
		}
		return res, cmd
	case "+", "=":
		m.successMessage = fmt.Sprintf("Zoom %d%%", int(buf.scene.SetZoom(zoomStep)*100+0.5))
		return m, nil
	case "-", "_":
		m.successMessage = fmt.Sprintf("Zoom %d%%", int(buf.scene.SetZoom(-zoomStep)*100+0.5))
		return m, nil
	case "0":
		buf.scene.SetZoom(1 - buf.scene.Zoom())
		m.successMessage = "Zoom 100%"
		return m, nil
	case "u":
		if kind := buf.scene.Undo(); kind != UndoNothing {
			m.successMessage = fmt.Sprintf("Undid %s", kind)
		} else {
			m.successMessage = "Nothing to undo"
		}
		return m, nil
	case "X":
		if buf.scene.IsEmpty() {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return m, nil
	case "a":
		m.catalogItems = catalogOrder(m.catalog)
		m.catalogIndex = 0
		m.mode = ModeCatalog
		return m, nil
	case "P":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = "Clipboard unavailable: " + err.Error()
			return m, nil
		}
		m.dropAt(cleanClipboardText(text), m.cursorX, m.cursorY)
		return m, nil
	case "y":
		task, ok := buf.scene.TaskAt(m.cursorCanvasPoint())
		if !ok {
			m.errorMessage = "No task under cursor"
			return m, nil
		}
		payload, err := EncodeDragPayload(task.Task)
		if err == nil {
			err = writeClipboardText(payload)
		}
		if err != nil {
			m.errorMessage = "Copy failed: " + err.Error()
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Copied %s", task.Task.Title)
		return m, nil
	case "enter":
		m.pointerPress(m.cursorX, m.cursorY)
		if m.pointerDown {
			buf.engine.PointerUp()
			m.pointerDown = false
		}
		cmd := m.focusTextInput()
		return m, cmd
	case " ":
		if m.pointerDown {
			buf.engine.PointerUp()
			m.pointerDown = false
			return m, nil
		}
		m.pointerPress(m.cursorX, m.cursorY)
		cmd := m.focusTextInput()
		return m, cmd
	case "m":
		task, ok := buf.scene.TaskAt(m.cursorCanvasPoint())
		if !ok {
			m.errorMessage = "No task under cursor"
			return m, nil
		}
		m.movingTask = task.ID
		m.originalMove = task.Position
		m.mode = ModeMove
		return m, nil
	case "f":
		if !buf.popups.State().IsOpen {
			return m, nil
		}
		m.fileOp = FileOpUpload
		return m.startFileInput("")
	case "s":
		snap := buf.scene.Snapshot()
		snap.Name = buf.name
		return m, saveCmd(m.store, buf, snap, "")
	case "S":
		m.fileOp = FileOpSaveNamed
		return m.startFileInput(buf.name)
	case "o":
		return m.openLoadPicker(false)
	case "O":
		return m.openLoadPicker(true)
	case "E":
		m.fileOp = FileOpSavePNG
		return m.startFileInput("workflow.png")
	case "T":
		m.fileOp = FileOpSaveVisualTXT
		return m.startFileInput("workflow.txt")
	}
	return m, nil
}

var toolKeys = map[string]Tool{
	"1": ToolSelect,
	"2": ToolPen,
	"3": ToolRectangle,
	"4": ToolCircle,
	"5": ToolText,
	"6": ToolEraser,
	"p": ToolPen,
	"r": ToolRectangle,
	"c": ToolCircle,
	"t": ToolText,
	"e": ToolEraser,
}

// pointerPress handles a primary press at a screen cell, from the mouse or
// from the keyboard cursor.
func (m *model) pointerPress(col, row int) {
	buf := m.getCurrentBuffer()
	vp := m.viewport()
	if buf == nil || !vp.ContainsCell(col, row) {
		return
	}
	pt := vp.CellToCanvas(col, row, buf.scene.Zoom())

	if m.mode == ModePlacing {
		m.dropAt(m.placing, col, row)
		m.placing = ""
		m.mode = ModeNormal
		return
	}

	if buf.engine.Tool() == ToolSelect {
		task, ok := buf.scene.TaskAt(pt)
		if !ok {
			buf.popups.Close()
			return
		}
		if opened, notice := buf.popups.OnTaskClick(task.ID); !opened {
			m.successMessage = notice
		}
		return
	}

	buf.engine.PointerDown(pt)
	switch buf.engine.State() {
	case DrawAwaitingText:
		m.input.SetValue("")
		m.mode = ModeTextInput
	case DrawActive:
		m.pointerDown = true
	}
}

// focusTextInput focuses the prompt when a text tool press is waiting for
// its content.
func (m *model) focusTextInput() tea.Cmd {
	if m.mode != ModeTextInput {
		return nil
	}
	return m.input.Focus()
}

func (m *model) dropAt(payload string, col, row int) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	id := buf.drop.Drop(payload, cellToDevice(col, row), m.viewport().Origin())
	if id == "" {
		m.errorMessage = "Nothing to place: invalid task payload"
		return
	}
	task, _ := buf.scene.Task(id)
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Placed %s", task.Task.Title)
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	buf := m.getCurrentBuffer()
	if buf == nil || m.help {
		return m, nil
	}
	if m.mode != ModeNormal && m.mode != ModePlacing {
		return m, nil
	}
	vp := m.viewport()
	inside := vp.ContainsCell(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		buf.scene.SetZoom(zoomStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		buf.scene.SetZoom(-zoomStep)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		m.cursorX, m.cursorY = msg.X, msg.Y
		m.pointerPress(msg.X, msg.Y)
		cmd := m.focusTextInput()
		return m, cmd
	case tea.MouseActionMotion:
		if !m.pointerDown {
			return m, nil
		}
		if !inside {
			buf.engine.PointerLeave()
			m.pointerDown = false
			return m, nil
		}
		m.cursorX, m.cursorY = msg.X, msg.Y
		buf.engine.PointerMove(vp.CellToCanvas(msg.X, msg.Y, buf.scene.Zoom()))
	case tea.MouseActionRelease:
		if m.pointerDown {
			buf.engine.PointerUp()
			m.pointerDown = false
		}
	}
	return m, nil
}

func catalogOrder(c *Catalog) []TaskDescriptor {
	grouped := c.Grouped()
	var items []TaskDescriptor
	for _, cat := range c.Categories() {
		items = append(items, grouped[cat]...)
	}
	return items
}

func (m model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = ModeNormal
	case "j", "down":
		if m.catalogIndex < len(m.catalogItems)-1 {
			m.catalogIndex++
		}
	case "k", "up":
		if m.catalogIndex > 0 {
			m.catalogIndex--
		}
	case "enter":
		if len(m.catalogItems) == 0 {
			m.mode = ModeNormal
			return m, nil
		}
		task := m.catalogItems[m.catalogIndex]
		payload, err := EncodeDragPayload(task)
		if err != nil {
			m.errorMessage = err.Error()
			m.mode = ModeNormal
			return m, nil
		}
		m.placing = payload
		m.placingTitle = task.Title
		m.mode = ModePlacing
		m.errorMessage = ""
		m.successMessage = ""
	}
	return m, nil
}

func (m model) handlePlacingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		m.placing = ""
		m.mode = ModeNormal
	case "enter", " ":
		m.pointerPress(m.cursorX, m.cursorY)
	case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
		return m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m model) handleTextInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buf := m.getCurrentBuffer()
	switch msg.Type {
	case tea.KeyEsc:
		buf.engine.CancelText()
		m.input.Blur()
		m.mode = ModeNormal
		return m, nil
	case tea.KeyEnter:
		buf.engine.SubmitText(m.input.Value())
		m.input.SetValue("")
		m.input.Blur()
		m.mode = ModeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) startFileInput(value string) (tea.Model, tea.Cmd) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.errorMessage = ""
	m.mode = ModeFileInput
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.mode = ModeNormal
		m.errorMessage = ""
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		m.input.Blur()
		m.mode = ModeNormal
		return m.submitFileInput(value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submitFileInput(value string) (tea.Model, tea.Cmd) {
	buf := m.getCurrentBuffer()
	if value == "" {
		m.errorMessage = "A name is required"
		m.mode = ModeFileInput
		cmd := m.input.Focus()
		return m, cmd
	}
	switch m.fileOp {
	case FileOpSaveNamed:
		return m, saveCmd(m.store, buf, buf.scene.Snapshot(), value)
	case FileOpUpload:
		read, ok := buf.popups.BeginUpload(expandHome(value))
		if !ok {
			m.errorMessage = "No task is waiting for a file"
			return m, nil
		}
		return m, uploadCmd(buf.popups, read)
	case FileOpSavePNG, FileOpSaveVisualTXT:
		path := expandHome(value)
		if _, err := os.Stat(path); err == nil {
			m.pendingPath = path
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		return m, m.exportCmd(path)
	}
	return m, nil
}

func (m *model) exportCmd(path string) tea.Cmd {
	buf := m.getCurrentBuffer()
	return exportCmd(buf.scene.Snapshot(), path, m.fileOp == FileOpSavePNG, m.viewport())
}

func (m model) handleMoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		if scene := m.getScene(); scene != nil {
			scene.MoveTask(m.movingTask, m.originalMove)
		}
		m.movingTask = ""
		m.mode = ModeNormal
	case "enter":
		m.movingTask = ""
		m.mode = ModeNormal
	case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
		return m.handleTaskMove(key, m.getMoveSpeed(key)), nil
	}
	return m, nil
}

func (m model) openLoadPicker(newBuffer bool) (tea.Model, tea.Cmd) {
	m.openInNewBuffer = newBuffer
	m.snapshots = nil
	m.selectedSnapshot = 0
	m.mode = ModeLoad
	return m, listCmd(m.store)
}

func (m model) handleLoadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		if len(m.buffers) == 1 && m.config.StartMenu && m.getScene().IsEmpty() && m.getCurrentBuffer().key == "" {
			m.mode = ModeStartup
		} else {
			m.mode = ModeNormal
		}
	case "j", "down":
		if m.selectedSnapshot < len(m.snapshots)-1 {
			m.selectedSnapshot++
		}
	case "k", "up":
		if m.selectedSnapshot > 0 {
			m.selectedSnapshot--
		}
	case "enter":
		if len(m.snapshots) == 0 {
			return m, nil
		}
		key := m.snapshots[m.selectedSnapshot].Key
		return m, loadCmd(m.store, key, false, m.openInNewBuffer)
	case "d":
		if len(m.snapshots) == 0 {
			return m, nil
		}
		m.confirmKey = m.snapshots[m.selectedSnapshot].Key
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDeleteSnapshot
	}
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.applyConfirm(m.confirmAction)
	case "n", "N", "esc":
		switch m.confirmAction {
		case ConfirmDeleteSnapshot:
			m.mode = ModeLoad
		case ConfirmOverwriteFile:
			return m.startFileInput(m.pendingPath)
		default:
			m.mode = ModeNormal
		}
	}
	return m, nil
}

func (m model) applyConfirm(action ConfirmAction) (tea.Model, tea.Cmd) {
	buf := m.getCurrentBuffer()
	m.mode = ModeNormal
	m.errorMessage = ""
	m.successMessage = ""
	switch action {
	case ConfirmClear:
		buf.popups.Close()
		buf.scene.Clear()
		m.successMessage = "Canvas cleared"
	case ConfirmQuit:
		return m, m.quitCmd()
	case ConfirmNewCanvas:
		fresh := newBuffer(m.config, m.logger)
		if m.createNewBuffer {
			m.addNewBuffer(fresh)
		} else {
			m.buffers[m.currentBufferIndex] = fresh
		}
		m.createNewBuffer = false
		m.ensureCursorInBounds()
	case ConfirmCloseBuffer:
		if len(m.buffers) > 1 {
			newIndex := m.currentBufferIndex - 1
			if newIndex < 0 {
				newIndex = 0
			}
			m.buffers = append(m.buffers[:m.currentBufferIndex], m.buffers[m.currentBufferIndex+1:]...)
			m.currentBufferIndex = newIndex
		} else {
			m.buffers = []*Buffer{newBuffer(m.config, m.logger)}
			m.currentBufferIndex = 0
			if m.config.StartMenu {
				m.mode = ModeStartup
			}
		}
		m.ensureCursorInBounds()
	case ConfirmDeleteSnapshot:
		m.mode = ModeLoad
		return m, deleteCmd(m.store, m.confirmKey)
	case ConfirmOverwriteFile:
		return m, m.exportCmd(m.pendingPath)
	}
	return m, nil
}

// quitCmd autosaves and exits.
func (m *model) quitCmd() tea.Cmd {
	if save := m.autosaveCmd(); save != nil {
		return tea.Sequence(save, tea.Quit)
	}
	return tea.Quit
}

type autosave struct {
	key     string
	snap    Snapshot
	current bool
	dirty   bool
}

// autosaveCmd writes the current canvas to the default key so the next start
// resumes it, and keeps unsaved edits in the other buffers under their own
// keys. Buffers never saved before become new named snapshots. Empty canvases
// are skipped. It returns nil when there is nothing to write.
func (m *model) autosaveCmd() tea.Cmd {
	current := m.getCurrentBuffer()
	var saves []autosave
	for _, buf := range m.buffers {
		if buf.scene.IsEmpty() || (buf != current && !buf.dirty) {
			continue
		}
		snap := buf.scene.Snapshot()
		snap.Name = buf.name
		saves = append(saves, autosave{key: buf.key, snap: snap, current: buf == current, dirty: buf.dirty})
	}
	if len(saves) == 0 {
		return nil
	}
	store, logger := m.store, m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		for _, a := range saves {
			named := a.key != "" && a.key != defaultSnapshotKey
			var err error
			switch {
			case a.current:
				_, err = store.Save(ctx, a.snap, "")
				if err == nil && named && a.dirty {
					err = store.SaveAs(ctx, a.key, a.snap)
				}
			case named:
				err = store.SaveAs(ctx, a.key, a.snap)
			default:
				name := a.snap.Name
				if name == "" {
					name = autosaveName
				}
				_, err = store.Save(ctx, a.snap, name)
			}
			if err != nil {
				logger.WithError(err).WithField("key", a.key).Error("autosave failed")
			}
		}
		return nil
	}
}
