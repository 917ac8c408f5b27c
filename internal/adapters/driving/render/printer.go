package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// Change markers.
const (
	MarkerNew     = "[+]"
	MarkerUpdated = "[~]"
	MarkerRemoved = "[-]"
)

// indent prefixes change lines under their plan header.
const indent = "    "

// Printer writes plans to an output stream.
type Printer struct {
	out    io.Writer
	styles *Styles
}

// NewPrinter creates a printer for w, colouring output if w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, styles: StylesFor(w)}
}

// NewPrinterWithStyles creates a printer with explicit styles.
func NewPrinterWithStyles(w io.Writer, s *Styles) *Printer {
	if s == nil {
		s = PlainStyles()
	}
	return &Printer{out: w, styles: s}
}

// Plans prints every plan except those with nothing to do.
func (p *Printer) Plans(plans []domain.Plan) {
	for i := range plans {
		if plans[i].Type == domain.ChangeNone {
			continue
		}
		for _, line := range PlanLines(plans[i], p.styles) {
			fmt.Fprintln(p.out, line)
		}
	}
}

// Counts prints a one-line tally of plan classifications.
func (p *Printer) Counts(plans []domain.Plan) {
	counts := domain.CountByType(plans)
	fmt.Fprintf(p.out, "%s new, %s updated, %s ignored, %d unchanged\n",
		p.styles.New.Render(fmt.Sprint(counts[domain.ChangeNew])),
		p.styles.Updated.Render(fmt.Sprint(counts[domain.ChangeUpdated])),
		p.styles.Ignored.Render(fmt.Sprint(counts[domain.ChangeIgnoredNew])),
		counts[domain.ChangeNone])
}

// Summary prints the totals of an apply run.
func (p *Printer) Summary(s *domain.ApplySummary) {
	if s == nil {
		return
	}
	failed := fmt.Sprint(s.Failed)
	if s.Failed > 0 {
		failed = p.styles.Removed.Render(failed)
	}
	fmt.Fprintf(p.out, "Run %s: %s applied, %s failed, %d skipped\n",
		s.RunID, p.styles.New.Render(fmt.Sprint(s.Applied)), failed, s.Skipped)
}

// History prints journal entries, one per line.
func (p *Printer) History(entries []domain.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.out, "No applied proposals recorded.")
		return
	}
	for i := range entries {
		e := &entries[i]
		status := p.styles.New.Render(string(e.Status))
		detail := e.Proposal.String()
		if e.Status == domain.ApplyStatusFailed {
			status = p.styles.Removed.Render(string(e.Status))
			detail = e.Error
		}
		fmt.Fprintf(p.out, "%s  %-8s  %-8s  %s  %s\n",
			e.AppliedAt.Local().Format("2006-01-02 15:04:05"), status, e.PlanType, e.Target, detail)
	}
}

// PlanLines returns the header and change lines for one plan.
func PlanLines(plan domain.Plan, s *Styles) []string {
	if s == nil {
		s = PlainStyles()
	}

	lines := []string{planHeader(plan, s)}
	for i := range plan.Changes {
		lines = append(lines, indent+ChangeLine(plan.Changes[i], s))
	}
	return lines
}

func planHeader(plan domain.Plan, s *Styles) string {
	target := plan.Proposal.Target
	switch plan.Type {
	case domain.ChangeNew:
		return s.New.Render(MarkerNew + " " + target)
	case domain.ChangeIgnoredNew:
		return s.Ignored.Render(fmt.Sprintf("%s %s (%s)", MarkerNew, target, plan.Reason))
	case domain.ChangeUpdated:
		return s.Updated.Render(MarkerUpdated + " " + target)
	default:
		return target
	}
}

// ChangeLine formats one property change.
func ChangeLine(c domain.Change, s *Styles) string {
	if s == nil {
		s = PlainStyles()
	}

	switch c.Type {
	case domain.ChangeNew:
		return s.New.Render(fmt.Sprintf("%s %s: %s", MarkerNew, c.Property, c.NewValue()))
	case domain.ChangeRemoved:
		return s.Removed.Render(fmt.Sprintf("%s %s: %s", MarkerRemoved, c.Property, c.OldValue()))
	case domain.ChangeUpdated:
		return s.Updated.Render(fmt.Sprintf("%s %s: %s → %s", MarkerUpdated, c.Property, c.OldValue(), c.NewValue()))
	default:
		return strings.TrimSpace(fmt.Sprintf("%s: %s", c.Property, c.NewValue()))
	}
}
