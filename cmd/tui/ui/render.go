package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/VoxDroid/rolo/internal/record"
)

// simple word-wrap to produce lines no wider than width cells
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	out := []string{}
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) > width {
				out = append(out, cur)
				cur = w
			} else {
				cur = cur + " " + w
			}
		}
		out = append(out, cur)
	}
	return out
}

// renderTableInline renders a label on the left and the value on the same
// line. Values are wrapped to valueW and continuation lines are aligned under
// the value column.
func renderTableInline(label, value string, labelW, valueW int) string {
	if labelW < 0 {
		labelW = 0
	}
	padded := runewidth.FillRight(label, labelW)
	lines := wrapText(value, valueW)
	var b strings.Builder
	for i, ln := range lines {
		if i == 0 {
			b.WriteString(padded + " " + ln + "\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", labelW) + " " + ln + "\n")
	}
	return b.String()
}

const detailLabelW = 9

// formatRecordDetails renders one record for the preview pane and the
// detail view.
func formatRecordDetails(r record.Record, width int) string {
	h := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dd3fc"))
	valueW := width - detailLabelW - 1
	if valueW < 10 {
		valueW = 10
	}
	name, company := record.Parts(r.Ident)
	var b strings.Builder
	b.WriteString(h.Render(r.Ident.String()) + "\n\n")
	if name != "" {
		b.WriteString(renderTableInline("Name:", name, detailLabelW, valueW))
	}
	if company != "" {
		b.WriteString(renderTableInline("Company:", company, detailLabelW, valueW))
	}
	b.WriteString(renderTableInline("Phone:", r.Phone, detailLabelW, valueW))
	b.WriteString(renderTableInline("ID:", strconv.FormatInt(r.ID, 10), detailLabelW, valueW))
	return b.String()
}
