package controller

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/logtag/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI using Bubble Tea for interactive display. Builds stream
// through a running program; every other result is printed once, styled.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the build view in ModeBuild and does nothing otherwise.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.mode != ModeBuild {
		return nil
	}

	return t.startWithModel(newBuildModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return errors.New("ui already started")
	}

	// signals belong to the command so restore always gets to run
	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done

	return nil
}

// send forwards msg to the running program and reports whether one was running.
func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// Close stops the build view, leaving its final frame on screen.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishMsg{})
	<-done
}

// DisplayPlan shows how many files will be tagged.
func (t *TUI) DisplayPlan(files int) {
	if !t.send(planMsg{files: files}) {
		t.println(fmt.Sprintf("Tagging %s file(s)", accentStyle.Render(fmt.Sprint(files))))
	}
}

// DisplayTagged records one tagged file.
func (t *TUI) DisplayTagged(file m.Path, sites int) {
	if !t.send(taggedMsg{path: string(file), sites: sites}) {
		t.println(countStyle.Render(fmt.Sprint(sites)) + "  " + pathStyle.Render(string(file)))
	}
}

// DisplayCompileStart switches the build view to the compile spinner.
func (t *TUI) DisplayCompileStart(dir m.Path, command []string) {
	msg := compileMsg{dir: string(dir), command: strings.Join(command, " ")}
	if !t.send(msg) {
		t.println(fmt.Sprintf("Compiling %s in %s", accentStyle.Render(msg.command), msg.dir))
	}
}

// DisplayBuildResult shows the outcome of the build cycle.
func (t *TUI) DisplayBuildResult(result m.BuildResult, err error) {
	if !t.send(buildResultMsg{result: result, err: err}) {
		t.println(renderBuildResult(result, err))
	}
}

// DisplayTagResult prints the outcome of a tag-only run.
func (t *TUI) DisplayTagResult(result m.TagResult, err error) {
	if err != nil {
		t.println(failStyle.Render("✗ tag failed: ") + err.Error())
		return
	}

	t.println(okStyle.Render("✓ ") + fmt.Sprintf("tagged %s file(s), %s call site(s)",
		accentStyle.Render(fmt.Sprint(len(result.Files))),
		accentStyle.Render(fmt.Sprint(result.Sites))))
	t.println(warningStyle.Render("tree is instrumented until `logtag restore` runs"))
}

// DisplayRestoreResult prints the outcome of a restore.
func (t *TUI) DisplayRestoreResult(result m.RestoreResult, err error) {
	if err != nil {
		t.println(failStyle.Render("✗ restore error: ") + err.Error())
	}

	if len(result.Restored) == 0 && err == nil {
		t.println(faintStyle.Render("nothing to restore"))
		return
	}

	t.println(okStyle.Render("✓ ") + fmt.Sprintf("restored %s file(s), removed %s instrumented file(s)",
		accentStyle.Render(fmt.Sprint(len(result.Restored))),
		accentStyle.Render(fmt.Sprint(len(result.Removed)))))
}

// DisplayCallSites prints each file with its call site count.
func (t *TUI) DisplayCallSites(files []m.FileSites, err error) error {
	if err != nil {
		t.println(failStyle.Render("list error: ") + err.Error())
		return err
	}

	t.println(titleStyle.Render("Log call sites"))

	total := 0

	for _, file := range files {
		t.println(countStyle.Render(fmt.Sprint(len(file.Sites))) + "  " + pathStyle.Render(string(file.File.Path)))
		total += len(file.Sites)
	}

	t.println(faintStyle.Render(fmt.Sprintf("%d call site(s) across %d file(s)", total, len(files))))

	return nil
}

// DisplayStatus lists staged files left on disk.
func (t *TUI) DisplayStatus(staged []m.SourceFile) {
	if len(staged) == 0 {
		t.println(okStyle.Render("✓ ") + "clean: no staged files")
		return
	}

	for _, file := range staged {
		t.println(warningStyle.Render("staged ") + pathStyle.Render(string(file.Path)))
	}

	t.println(failStyle.Render(fmt.Sprintf("%d staged file(s)", len(staged))) + " left by an interrupted run; run `logtag restore` to recover")
}

// DisplayReplaceResult prints the files touched by a replace.
func (t *TUI) DisplayReplaceResult(result m.ReplaceResult, err error) {
	if err != nil {
		t.println(failStyle.Render("✗ replace error: ") + err.Error())
		return
	}

	for _, file := range result.Files {
		t.println(faintStyle.Render("updated ") + pathStyle.Render(string(file)))
	}

	t.println(okStyle.Render("✓ ") + fmt.Sprintf("replaced %s occurrence(s) in %s file(s)",
		accentStyle.Render(fmt.Sprint(result.Replacements)),
		accentStyle.Render(fmt.Sprint(len(result.Files)))))
}

func (t *TUI) println(line string) {
	_, _ = fmt.Fprintln(t.output, line)
}
