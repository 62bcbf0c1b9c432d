// Package report prints demo sections to a console.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Separator follows headers and response blocks.
var Separator = strings.Repeat("-", 45)

// Reporter writes color-coded sections to w. It never fails on malformed input.
type Reporter struct {
	w      io.Writer
	header *color.Color
	ok     *color.Color
	fail   *color.Color
	data   *color.Color
}

// New returns a Reporter writing to w. When noColor is set no escape codes are written.
func New(w io.Writer, noColor bool) *Reporter {
	r := &Reporter{
		w:      w,
		header: color.New(color.FgMagenta),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		data:   color.New(color.FgCyan),
	}
	if noColor {
		for _, c := range []*color.Color{r.header, r.ok, r.fail, r.data} {
			c.DisableColor()
		}
	}
	return r
}

// Header prints a section title.
func (r *Reporter) Header(text string) {
	r.block(r.header, text, true)
}

// Response prints a response summary, in red when isErr is set.
func (r *Reporter) Response(text string, isErr bool) {
	c := r.ok
	if isErr {
		c = r.fail
	}
	r.block(c, text, true)
}

// JSON prints a structured payload, indented when it parses as JSON.
func (r *Reporter) JSON(text string) {
	r.block(r.data, prettyJSON(text), false)
}

// Line prints text as is.
func (r *Reporter) Line(text string) {
	_, _ = fmt.Fprintln(r.w, text)
}

func (r *Reporter) block(c *color.Color, text string, separator bool) {
	_, _ = io.WriteString(r.w, "\n")
	_, _ = c.Fprintln(r.w, text)
	if separator {
		_, _ = c.Fprintln(r.w, Separator)
	}
}

func prettyJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return text
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return text
	}
	return buf.String()
}
