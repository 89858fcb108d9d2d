// Package report renders optimizer results for humans: a ranking table for
// the terminal and a convergence chart as PNG.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/metatsp/internal/compare"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true)
	winnerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

// Summary describes the spread of final lengths over repeats.
type Summary struct {
	Runs   int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single run
}

// Summarize computes a Summary of xs. An empty slice yields the zero value.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	s := Summary{Runs: len(xs), Min: math.Inf(1), Max: math.Inf(-1)}
	for _, x := range xs {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	s.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}

	return s
}

// WriteRanking writes the ranking table for a comparison, best first.
func WriteRanking(w io.Writer, title string, entries []compare.Entry) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-32s %10s %10s %9s %10s",
		"Rank", "Algorithm", "Best", "Mean", "StdDev", "Initial")))
	b.WriteByte('\n')
	b.WriteString(mutedStyle.Render(strings.Repeat("-", 81)))
	b.WriteByte('\n')

	for _, e := range entries {
		s := Summarize(e.Lengths)
		initial := "-"
		if e.Best.InitialLength > 0 {
			initial = fmt.Sprintf("%.2f", e.Best.InitialLength)
		}
		row := fmt.Sprintf("%-5d %-32s %10.2f %10.2f %9.2f %10s",
			e.Rank, e.Variant.Label, s.Min, s.Mean, s.StdDev, initial)
		if e.Rank == 1 {
			row = winnerStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Run is a single optimizer result in display form.
type Run struct {
	Algorithm     string
	Instance      string
	Route         []string
	Length        float64
	InitialLength float64 // 0 hides the line
	Duration      time.Duration
}

// WriteRun writes a boxed summary of one run.
func WriteRun(w io.Writer, r Run) error {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s on %s", r.Algorithm, r.Instance)),
		"route:   " + strings.Join(r.Route, " → "),
		fmt.Sprintf("length:  %.2f", r.Length),
	}
	if r.InitialLength > 0 {
		lines = append(lines, fmt.Sprintf("initial: %.2f", r.InitialLength))
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("elapsed: %s", r.Duration.Round(time.Microsecond))))

	_, err := fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))

	return err
}
