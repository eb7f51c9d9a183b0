package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Table renders headers and rows as monospace text wrapped in a code
// fence. Every row must have exactly len(headers) cells; a mismatch is
// a programming error and panics.
func Table(headers []string, rows [][]string) string {
	for i, row := range rows {
		if len(row) != len(headers) {
			panic(fmt.Sprintf("render: row %d has %d cells, want %d", i, len(row), len(headers)))
		}
	}

	var sb strings.Builder
	tw := tablewriter.NewWriter(&sb)
	tw.SetHeader(headers)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.AppendBulk(rows)
	tw.Render()

	return CodeBlock("", sb.String())
}

// CodeBlock wraps text in a fenced code block with an optional language.
func CodeBlock(lang, text string) string {
	return "```" + lang + "\n" + strings.TrimRight(text, "\n") + "\n```"
}

// JSONBlock pretty-prints v as indented JSON inside a code fence.
func JSONBlock(v any) string {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return CodeBlock("", fmt.Sprintf("<unrenderable: %v>", err))
	}
	return CodeBlock("json", string(data))
}

// TruncateBlock shortens s like Truncate but keeps code fences
// balanced, so a cut through a fenced block still renders as one.
func TruncateBlock(s string, max int) string {
	out := Truncate(s, max)
	if out == s || strings.Count(out, "```")%2 == 0 {
		return out
	}
	const closer = "\n```"
	out = Truncate(out, max-len(closer))
	if strings.Count(out, "```")%2 != 0 {
		out += closer
	}
	return out
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. max must leave room for the ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
