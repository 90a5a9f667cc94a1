package tui

import "github.com/SuperMag99/FootPrintX/internal/update"

type answerMsg struct {
	text string
}

type updateMsg struct {
	result *update.Result
}

// noticeMsg is a transient status line, e.g. "copied".
type noticeMsg struct {
	text string
}

type errMsg struct {
	err error
}
