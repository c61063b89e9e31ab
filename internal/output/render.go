// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/kdiff/internal/differ"
	"github.com/tfctl/kdiff/internal/tree"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatDelta = "delta"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatDelta}

// Options controls rendering. Current and Desired are only used by the delta
// format.
type Options struct {
	Color   bool
	Palette Palette
	Current *tree.Node
	Desired *tree.Node
}

// Render writes res to w in the given format. An empty result writes nothing
// in text and delta formats.
func Render(w io.Writer, format string, res differ.Result, opts Options) error {
	switch format {
	case FormatText:
		return renderText(w, res, opts)
	case FormatJSON:
		b, err := json.MarshalIndent(Summarize(res), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(Summarize(res))
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		_, err = w.Write(b)
		return err
	case FormatDelta:
		return renderDelta(w, opts)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// section is one block of text output.
type section struct {
	kind    string
	color   string
	records []differ.Record
	value   func(differ.Record) []string
}

func renderText(w io.Writer, res differ.Result, opts Options) error {
	if res.Empty() {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	pathStyle := r.NewStyle().Foreground(lipgloss.Color(opts.Palette.Title))

	sections := []section{
		{"removed", opts.Palette.Removed, res.Removed, func(rec differ.Record) []string { return valueLines(rec, rec.OldValue) }},
		{"added", opts.Palette.Added, res.Added, func(rec differ.Record) []string { return valueLines(rec, rec.NewValue) }},
		{"changed", opts.Palette.Changed, res.Changed, func(rec differ.Record) []string {
			return []string{fmt.Sprintf("old value: %s, new value: %s", rec.OldValue.String(), rec.NewValue.String())}
		}},
	}

	var b strings.Builder
	for _, s := range sections {
		if len(s.records) == 0 {
			continue
		}
		header := r.NewStyle().Bold(true).Foreground(lipgloss.Color(s.color))
		b.WriteString(header.Render("The following items were " + s.kind + ":"))
		b.WriteByte('\n')

		for _, rec := range s.records {
			b.WriteString("  " + pathStyle.Render(rec.Path) + ":\n")
			for _, line := range s.value(rec) {
				b.WriteString("    " + line + "\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// valueLines renders a removed or added value. A mapping gets one "k: v" line
// per key; anything else is a single line.
func valueLines(rec differ.Record, v *tree.Node) []string {
	if rec.Message != "" {
		return []string{rec.Message}
	}
	if !v.IsMapping() {
		return []string{v.String()}
	}
	lines := make([]string, 0, v.Len())
	for _, k := range v.Keys {
		lines = append(lines, k+": "+v.Fields[k].String())
	}
	return lines
}

// renderDelta writes a gojsondiff ASCII delta of the two whole documents.
func renderDelta(w io.Writer, opts Options) error {
	current, desired := opts.Current, opts.Desired
	if current == nil {
		current = tree.Mapping()
	}
	if desired == nil {
		desired = tree.Mapping()
	}

	left, err := json.Marshal(current.Interface())
	if err != nil {
		return fmt.Errorf("failed to marshal current document: %w", err)
	}
	right, err := json.Marshal(desired.Interface())
	if err != nil {
		return fmt.Errorf("failed to marshal desired document: %w", err)
	}

	delta, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}
	if !delta.Modified() {
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal current document: %w", err)
	}

	f := formatter.NewAsciiFormatter(jdoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       opts.Color,
	})
	s, err := f.Format(delta)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
