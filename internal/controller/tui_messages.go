package controller

import m "github.com/mouse-blink/logtag/internal/model"

// Message types.
type planMsg struct {
	files int
}

type taggedMsg struct {
	path  string
	sites int
}

type compileMsg struct {
	dir     string
	command string
}

type buildResultMsg struct {
	result m.BuildResult
	err    error
}

type finishMsg struct{}
