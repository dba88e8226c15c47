package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderDiff writes a line diff of before and after to w, git style:
// removed lines prefixed "- ", added lines "+ ", unchanged "  ".
func renderDiff(w io.Writer, before, after string, colored bool) {
	if before == after {
		return
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range splitLines(d.Text) {
				del.Fprintf(w, "- %s\n", line)
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range splitLines(d.Text) {
				ins.Fprintf(w, "+ %s\n", line)
			}
		default:
			for _, line := range splitLines(d.Text) {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
