package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeCatalog
	ModePlacing
	ModeTextInput
	ModeFileInput
	ModeMove
	ModeLoad
	ModeConfirm
)

type FileOperation int

const (
	FileOpSaveNamed FileOperation = iota
	FileOpSavePNG
	FileOpSaveVisualTXT
	FileOpUpload
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
	ConfirmNewCanvas
	ConfirmCloseBuffer
	ConfirmDeleteSnapshot
	ConfirmOverwriteFile
)

const (
	toolbarHeight = 1
	statusHeight  = 1
	panStep       = 4
)
