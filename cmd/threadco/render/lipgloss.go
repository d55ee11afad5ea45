package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"threadco/internal/format"
	"threadco/internal/pricing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	indent     = "  "
	noteIndent = "    "
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	noteStyle  lipgloss.Style
	totalStyle lipgloss.Style
	dealStyle  lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:      width,
		r:          r,
		titleStyle: r.NewStyle().Bold(true),
		labelStyle: r.NewStyle(),
		valueStyle: r.NewStyle(),
		noteStyle:  r.NewStyle().Faint(true),
		totalStyle: r.NewStyle().Bold(true),
		dealStyle:  r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 48
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = min(tw, width)
		}
	}
	return NewLipglossRenderer(w, width)
}

// line renders label on the left and value flush right within the width.
func (r *LipglossRenderer) line(label, value string, valueStyle lipgloss.Style) string {
	left := indent + r.labelStyle.Render(label)
	right := valueStyle.Render(value)
	padding := max(1, r.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", padding) + right
}

func (r *LipglossRenderer) note(text string, style lipgloss.Style) string {
	return noteIndent + style.Render(text)
}

func (r *LipglossRenderer) RenderSearchResults(view SearchView) string {
	if view.IsEmpty() {
		return "No products found.\n"
	}

	var sb strings.Builder
	for _, g := range view.Groups {
		sb.WriteString(r.titleStyle.Render(fmt.Sprintf("%s - %s", g.Style, g.Name)))
		sb.WriteString(r.noteStyle.Render(" (" + strings.Join(g.Methods, " / ") + ")"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) RenderCatalogQuote(view CatalogQuoteView) string {
	s := view.Selection
	q := view.Quote
	if !s.HasProduct() {
		return "No product selected.\n"
	}

	color := s.Color
	if color == "" {
		color = "no color"
	}

	base := "n/a"
	if q.Priced {
		base = format.Money(q.BasePrice)
	}

	lines := []string{
		r.titleStyle.Render(fmt.Sprintf("%s - %s", s.Style, s.Name)),
		indent + r.noteStyle.Render(s.Method+" · "+color),
		r.line("Base Price", base, r.valueStyle),
		r.line("Quantity", format.Count(s.Quantity), r.valueStyle),
		r.line("Front Colors", format.Count(s.FrontColors), r.valueStyle),
		r.line("Back Colors", format.Count(s.BackColors), r.valueStyle),
		r.line("Front Surcharge", format.Money(q.FrontSurcharge), r.valueStyle),
		r.line("Back Surcharge", format.Money(q.BackSurcharge), r.valueStyle),
		r.line("Unit Price", format.Money(q.UnitPrice), r.totalStyle),
		r.line(totalLabel(q.Quantity), format.Money(q.TotalPrice), r.totalStyle),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *LipglossRenderer) RenderManualQuote(view ManualQuoteView) string {
	q := view.Quote
	in := q.Input

	lines := []string{
		r.titleStyle.Render("Manual quote"),
		r.line("Base Price", format.Money(in.BasePrice), r.valueStyle),
		r.line("Quantity", format.Count(in.Quantity), r.valueStyle),
		r.breakNote(q.QuantityBreak, ""),
		r.line("Front Colors", format.Count(in.FrontColors), r.valueStyle),
		r.breakNote(q.FrontBreak, " colors"),
		r.line("Back Colors", format.Count(in.BackColors), r.valueStyle),
		r.breakNote(q.BackBreak, " colors"),
		r.line("Front Surcharge", format.Money(q.FrontSurcharge), r.valueStyle),
		r.line("Back Surcharge", format.Money(q.BackSurcharge), r.valueStyle),
		r.line("Unit Price", format.Money(q.UnitPrice), r.totalStyle),
		r.line(totalLabel(in.Quantity), format.Money(q.TotalPrice), r.totalStyle),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *LipglossRenderer) breakNote(applied *pricing.PriceBreakRow, unit string) string {
	if applied == nil {
		return r.note("No price break applied", r.noteStyle)
	}
	text := fmt.Sprintf("Applying −%s at ≥ %s%s", format.Money(applied.Deduct), format.Threshold(applied.MinQty), unit)
	return r.note(text, r.dealStyle)
}

func totalLabel(qty int) string {
	return fmt.Sprintf("Total for %s %s", format.Count(qty), format.Units(qty))
}

func (r *LipglossRenderer) RenderBreakTable(view BreakTableView) string {
	var sb strings.Builder
	sb.WriteString(r.titleStyle.Render(view.Kind.Title()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s%-4s%-12s%s\n", indent, "ID", view.Kind.ThresholdLabel(), "Deduct"))

	for _, row := range view.Table {
		deduct := format.Money(row.Deduct)
		style := r.noteStyle
		if row.Deduct > 0 {
			style = r.dealStyle
		}
		sb.WriteString(fmt.Sprintf("%s%-4d%-12s%s\n", indent, row.ID, format.Threshold(row.MinQty), style.Render(deduct)))
	}
	return sb.String()
}
