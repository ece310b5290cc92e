package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/prevoccupai/ohp/internal/profile"
)

// execSummary renders the field-availability table for all subjects and
// optionally exports it as CSV.
func execSummary(o *IO, store *profile.Store, exportPath string) error {
	rows := profile.Summarize(store)

	renderSummaryTable(o, rows)

	if exportPath != "" {
		if err := profile.WriteSummaryCSV(exportPath, rows); err != nil {
			return err
		}

		o.Printf("exported summary to %s\n", exportPath)
	}

	return nil
}

func renderSummaryTable(o *IO, rows []profile.SummaryRow) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(o.Out())
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Format.Footer = text.FormatDefault

	header := make(table.Row, 0, len(profile.SummaryFields)+1)
	header = append(header, "subject")

	for _, field := range profile.SummaryFields {
		header = append(header, field.Column)
	}

	tbl.AppendHeader(header)

	for _, row := range rows {
		cells := make(table.Row, 0, len(row.Present)+1)
		cells = append(cells, row.Subject)

		for _, present := range row.Present {
			cells = append(cells, profile.PresenceMark(present))
		}

		tbl.AppendRow(cells)
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d subjects", len(rows))})

	tbl.Render()
}
