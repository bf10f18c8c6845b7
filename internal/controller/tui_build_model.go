package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/logtag/internal/model"
)

const (
	recentFiles       = 5
	outputTailOnError = 20
)

type buildModel struct {
	spinner  spinner.Model
	progress progress.Model

	total     int
	tagged    int
	sites     int
	recent    []taggedMsg
	compiling bool
	command   string
	dir       string
	result    *buildResultMsg
	finished  bool
}

func newBuildModel() buildModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return buildModel{
		spinner: s,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (bm buildModel) Init() tea.Cmd {
	return bm.spinner.Tick
}

func (bm buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planMsg:
		bm.total = msg.files

	case taggedMsg:
		bm.tagged++
		bm.sites += msg.sites

		bm.recent = append(bm.recent, msg)
		if len(bm.recent) > recentFiles {
			bm.recent = bm.recent[len(bm.recent)-recentFiles:]
		}

	case compileMsg:
		bm.compiling = true
		bm.command = msg.command
		bm.dir = msg.dir

	case buildResultMsg:
		bm.compiling = false
		bm.result = &msg

	case finishMsg:
		bm.finished = true
		return bm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		bm.spinner, cmd = bm.spinner.Update(msg)

		return bm, cmd
	}

	return bm, nil
}

func (bm buildModel) percent() float64 {
	if bm.total == 0 {
		return 0
	}

	return float64(bm.tagged) / float64(bm.total)
}

func (bm buildModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("logtag build"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Tagged %s / %s files  •  %s call sites\n",
		accentStyle.Render(fmt.Sprint(bm.tagged)),
		accentStyle.Render(fmt.Sprint(bm.total)),
		accentStyle.Render(fmt.Sprint(bm.sites))))
	b.WriteString(bm.progress.ViewAs(bm.percent()))
	b.WriteString("\n")

	if bm.result == nil {
		for _, file := range bm.recent {
			b.WriteString(faintStyle.Render(fmt.Sprintf("  %s (%d)", file.path, file.sites)))
			b.WriteString("\n")
		}
	}

	if bm.compiling {
		b.WriteString(fmt.Sprintf("%s compiling %s in %s\n", bm.spinner.View(), accentStyle.Render(bm.command), bm.dir))
	}

	if bm.result != nil {
		b.WriteString(renderBuildResult(bm.result.result, bm.result.err))
		b.WriteString("\n")
	}

	return b.String()
}

func renderBuildResult(result m.BuildResult, err error) string {
	lines := make([]string, 0, 3)

	if err != nil {
		lines = append(lines, failStyle.Render("✗ build failed: ")+err.Error())

		if tail := tailLines(result.Output, outputTailOnError); tail != "" {
			box := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("9")).
				Padding(0, 1)
			lines = append(lines, box.Render(tail))
		}
	} else {
		lines = append(lines, okStyle.Render("✓ build succeeded: ")+fmt.Sprintf("%d file(s), %d call site(s) tagged",
			len(result.Tag.Files), result.Tag.Sites))
	}

	lines = append(lines, faintStyle.Render(fmt.Sprintf("restored %d file(s)", len(result.Restore.Restored))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
