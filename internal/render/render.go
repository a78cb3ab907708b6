// Package render prints grading results as styled text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mind-engage/mindengage-grades/internal/exam"
	"github.com/mind-engage/mindengage-grades/internal/grading"
)

// bandHex follows the palette the web UI tints grade badges with.
var bandHex = map[grading.ColorBand]string{
	grading.BandEmerald: "#10b981",
	grading.BandBlue:    "#3b82f6",
	grading.BandAmber:   "#f59e0b",
	grading.BandOrange:  "#f97316",
	grading.BandRed:     "#ef4444",
}

type Printer struct {
	w      io.Writer
	json   bool
	styles map[grading.ColorBand]lipgloss.Style
	dim    lipgloss.Style
}

func New(w io.Writer, asJSON, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	p := &Printer{
		w:      w,
		json:   asJSON,
		styles: make(map[grading.ColorBand]lipgloss.Style, len(grading.Bands)),
		dim:    r.NewStyle(),
	}
	for _, b := range grading.Bands {
		s := r.NewStyle()
		if color {
			s = s.Bold(true).Foreground(lipgloss.Color(bandHex[b]))
		}
		p.styles[b] = s
	}
	if color {
		p.dim = p.dim.Foreground(lipgloss.Color("244"))
	}
	return p
}

type scoreLine struct {
	Label      string            `json:"label,omitempty"`
	Percentage *int              `json:"percentage,omitempty"`
	Band       grading.ColorBand `json:"band"`
}

// Percentage prints a percentage together with its band.
func (p *Printer) Percentage(label string, pct int) error {
	band := grading.GradeColor(float64(pct))
	if p.json {
		return p.encode(scoreLine{Label: label, Percentage: &pct, Band: band})
	}
	_, err := fmt.Fprintf(p.w, "%s: %s\n", label, p.styles[band].Render(fmt.Sprintf("%d%% (%s)", pct, band)))
	return err
}

func (p *Printer) Band(b grading.ColorBand) error {
	if p.json {
		return p.encode(scoreLine{Band: b})
	}
	_, err := fmt.Fprintln(p.w, p.styles[b].Render(b.String()))
	return err
}

func (p *Printer) Report(rep exam.Report) error {
	if p.json {
		return p.encode(rep)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "attempt %s (exam %s)\n", rep.AttemptID, rep.ExamID)
	for _, r := range rep.Results {
		status := fmt.Sprintf("%g/%g", r.Points, r.MaxPoints)
		if r.NeedsManual {
			status = "pending review"
		}
		fmt.Fprintf(&sb, "  %-8s %s", r.QuestionID, status)
		if len(r.Feedback) > 0 {
			sb.WriteString(" " + p.dim.Render(strings.Join(r.Feedback, "; ")))
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		return err
	}
	if err := p.Percentage("overall", rep.Percentage); err != nil {
		return err
	}
	if rep.Pending > 0 {
		_, err := fmt.Fprintf(p.w, "%d question(s) awaiting manual review\n", rep.Pending)
		return err
	}
	return nil
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
