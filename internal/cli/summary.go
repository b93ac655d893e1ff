package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"cpe-synth/internal/app"
	"cpe-synth/internal/types"
)

var (
	accent = lipgloss.Color("#7C3AED")
	muted  = lipgloss.Color("#6B7280")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(muted)
	borderStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func renderGenerateSummary(w io.Writer, result app.GenerateResult) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Generated %d CPE entries", result.Summary.Total)))
	b.WriteString("\n")
	if result.Summary.Total < result.Requested {
		b.WriteString(noteStyle.Render(fmt.Sprintf("requested %d", result.Requested)))
		b.WriteString("\n")
	}
	b.WriteString(noteStyle.Render(fmt.Sprintf("source %s, run %s", result.Source, result.RunID)))
	b.WriteString("\n\n")
	for _, file := range result.Files {
		fmt.Fprintf(&b, "%-5s %s\n", strings.ToUpper(string(file.Format)), file.Path)
	}
	for _, sink := range result.Sinks {
		fmt.Fprintf(&b, "%-5s %s\n", "SINK", sink)
	}
	b.WriteString("\n")
	writeSummary(&b, result.Summary)
	_, err := io.WriteString(w, b.String())
	return err
}

func renderInspect(w io.Writer, result app.InspectResult) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %d CPE entries", result.File, result.Summary.Total)))
	b.WriteString("\n\n")
	writeSummary(&b, result.Summary)

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Records by vendor and product"))
	b.WriteString("\n")
	b.WriteString(recordTable(result.Records))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(result.Latest))
	for _, latest := range result.Latest {
		rows = append(rows, []string{latest.Product, latest.Version})
	}
	b.WriteString(sectionStyle.Render("Latest versions"))
	b.WriteString("\n")
	b.WriteString(newTable("vendor:product", "version").Rows(rows...).Render())
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(b *strings.Builder, summary types.Summary) {
	b.WriteString(sectionStyle.Render("Category breakdown"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(summary.Categories))
	for _, category := range summary.Categories {
		rows = append(rows, []string{category.Category.DisplayName(), strconv.Itoa(category.Count)})
	}
	b.WriteString(newTable("category", "count").Rows(rows...).Render())
	b.WriteString("\n")

	fmt.Fprintf(b, "Total size: %s MB\n", decimal.NewFromFloat(summary.TotalSizeMB).StringFixed(2))
	if summary.OldestDate != "" {
		fmt.Fprintf(b, "Install dates: %s to %s\n", summary.OldestDate, summary.NewestDate)
	}
	if len(summary.Preview) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(fmt.Sprintf("First %d entries", len(summary.Preview))))
	b.WriteString("\n")
	b.WriteString(recordTable(summary.Preview))
	b.WriteString("\n")
}

func recordTable(records []types.Record) string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Category,
			record.Product,
			record.Version,
			record.Vendor,
			record.Date,
			record.Location,
			decimal.NewFromFloat(record.SizeMB).StringFixed(2),
		})
	}
	return newTable(types.ExportColumns...).Rows(rows...).Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}
