package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/logtag/internal/model"
	"github.com/olekukonko/tablewriter"
)

// SimpleUI writes line-oriented progress and tables to a plain writer.
type SimpleUI struct {
	out io.Writer
}

// NewSimpleUI creates a SimpleUI printing to out.
func NewSimpleUI(out io.Writer) *SimpleUI {
	return &SimpleUI{out: out}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayPlan prints how many files are about to be tagged.
func (s *SimpleUI) DisplayPlan(files int) {
	s.printf("tagging %d file(s)\n", files)
}

// DisplayTagged prints one tagged file.
func (s *SimpleUI) DisplayTagged(file m.Path, sites int) {
	s.printf("tagged %s (%d call sites)\n", file, sites)
}

// DisplayCompileStart prints the build command about to run.
func (s *SimpleUI) DisplayCompileStart(dir m.Path, command []string) {
	s.printf("compiling in %s: %s\n", dir, strings.Join(command, " "))
}

// DisplayBuildResult prints compiler output and the outcome of the cycle.
func (s *SimpleUI) DisplayBuildResult(result m.BuildResult, err error) {
	if result.Output != "" {
		s.printf("%s", result.Output)

		if !strings.HasSuffix(result.Output, "\n") {
			s.printf("\n")
		}
	}

	if err != nil {
		s.printf("build failed: %v\n", err)
	} else {
		s.printf("build succeeded: %d file(s), %d call site(s) tagged\n", len(result.Tag.Files), result.Tag.Sites)
	}

	s.printf("restored %d file(s)\n", len(result.Restore.Restored))
}

// DisplayTagResult prints the outcome of a tag-only run.
func (s *SimpleUI) DisplayTagResult(result m.TagResult, err error) {
	if err != nil {
		s.printf("tag failed: %v\n", err)
		return
	}

	s.printf("tagged %d file(s), %d call site(s)\n", len(result.Files), result.Sites)
}

// DisplayRestoreResult prints the outcome of a restore.
func (s *SimpleUI) DisplayRestoreResult(result m.RestoreResult, err error) {
	if err != nil {
		s.printf("restore error: %v\n", err)
	}

	if len(result.Restored) == 0 && err == nil {
		s.printf("nothing to restore\n")
		return
	}

	s.printf("restored %d file(s), removed %d instrumented file(s)\n", len(result.Restored), len(result.Removed))
}

// DisplayCallSites prints a table of files and their call site counts.
func (s *SimpleUI) DisplayCallSites(files []m.FileSites, err error) error {
	if err != nil {
		s.printf("list error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Call Sites"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, file := range files {
		table.Append([]string{string(file.File.Path), fmt.Sprintf("%d", len(file.Sites))})
		total += len(file.Sites)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayStatus lists staged files left on disk.
func (s *SimpleUI) DisplayStatus(staged []m.SourceFile) {
	if len(staged) == 0 {
		s.printf("clean: no staged files\n")
		return
	}

	for _, file := range staged {
		s.printf("staged %s\n", file.Path)
	}

	s.printf("%d staged file(s) left by an interrupted run; run `logtag restore` to recover\n", len(staged))
}

// DisplayReplaceResult prints the files touched by a replace.
func (s *SimpleUI) DisplayReplaceResult(result m.ReplaceResult, err error) {
	if err != nil {
		s.printf("replace error: %v\n", err)
		return
	}

	for _, file := range result.Files {
		s.printf("updated %s\n", file)
	}

	s.printf("replaced %d occurrence(s) in %d file(s)\n", result.Replacements, len(result.Files))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
