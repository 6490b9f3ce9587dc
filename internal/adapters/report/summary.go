package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/ui/style"
)

var summaryColumns = []string{"Worker", "Files", "Time", "Adjusted", "Items", "Designs"}

// RenderSummary writes the per-worker table followed by a totals line.
func (r *Reporter) RenderSummary(w io.Writer, plan *domain.Plan) error {
	if plan.Empty() {
		_, err := fmt.Fprintln(w, style.Muted.Render("No files to plan."))
		return err
	}

	rows := make([][]string, 0, len(plan.Summaries))
	var files int
	var total, adjusted float64
	for _, s := range plan.Summaries {
		rows = append(rows, []string{
			s.Label,
			strconv.Itoa(s.FileCount),
			domain.HumanDuration(s.TotalSeconds),
			domain.HumanDuration(s.AdjustedSeconds),
			strconv.Itoa(s.UniqueItems),
			strconv.Itoa(s.UniqueDigests),
		})
		files += s.FileCount
		total += s.TotalSeconds
		adjusted += s.AdjustedSeconds
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(style.Muted).
		Headers(summaryColumns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.Header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	footer := fmt.Sprintf("%s %d files in %d clusters, %s (%s after duplicate discount)",
		style.Check, files, len(plan.Clusters), domain.HumanDuration(total), domain.HumanDuration(adjusted))
	if len(plan.Skipped) > 0 {
		footer += fmt.Sprintf(", %d skipped", len(plan.Skipped))
	}

	_, err := fmt.Fprintln(w, t.Render()+"\n"+footer)
	return err
}
