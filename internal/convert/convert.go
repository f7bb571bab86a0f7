// Package convert renders a stream of shortcut expressions, one per line.
package convert

import (
	"bufio"
	"io"
	"strings"

	"ksc/internal/errors"
	"ksc/internal/log"
	"ksc/internal/shortcut"
	"ksc/pkg/types"
)

// Line is the result of converting one input line.
type Line struct {
	Number int    // 1-based
	Input  string // as read, without the line ending
	Output string // rendered shortcuts, or Input for passthrough lines
	Err    error  // set when Input could not be parsed
}

// Lines converts every line of r. Blank lines and lines starting with "#" are
// copied unchanged. A line that fails to parse is recorded with its error and
// conversion continues; only read errors abort.
func Lines(r io.Reader, opts types.RenderOptions) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		lines = append(lines, convertLine(n, scanner.Text(), opts))
	}
	if err := scanner.Err(); err != nil {
		return lines, errors.Wrapf(err, "reading line %d", len(lines)+1)
	}
	return lines, nil
}

// Failed counts the lines that did not parse.
func Failed(lines []Line) int {
	n := 0
	for _, l := range lines {
		if l.Err != nil {
			n++
		}
	}
	return n
}

func convertLine(n int, text string, opts types.RenderOptions) Line {
	line := Line{Number: n, Input: text}
	if isPassthrough(text) {
		line.Output = text
		return line
	}

	shortcuts, err := shortcut.ParseAll(text)
	if err != nil {
		log.LogWithFields(log.F("line", n)).Debugf("skipping line: %v", err)
		line.Err = errors.Wrapf(err, "line %d", n)
		return line
	}

	rendered := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		rendered[i] = s.Render(opts)
	}
	line.Output = strings.Join(rendered, " ")
	return line
}

func isPassthrough(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
