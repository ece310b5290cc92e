package profile

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/natefinch/atomic"
)

// SummaryField is one probed column of the availability summary.
type SummaryField struct {
	// Column is the display name.
	Column string

	// Path is the document path probed for presence.
	Path string
}

// SummaryFields are the candidate OH profile sections probed for every
// subject. Probing uses Resolve, so nested paths work on any document shape.
var SummaryFields = []SummaryField{
	{Column: "demographics", Path: "demographics"},
	{Column: "age", Path: "demographics.age"},
	{Column: "sex", Path: "demographics.sex"},
	{Column: "occupation", Path: "demographics.occupation"},
	{Column: "work_history", Path: "work_history"},
	{Column: "medical_history", Path: "medical_history"},
	{Column: "lifestyle", Path: "lifestyle"},
	{Column: "audiometry", Path: "assessments.audiometry"},
	{Column: "spirometry", Path: "assessments.spirometry"},
	{Column: "vision", Path: "assessments.vision"},
	{Column: "questionnaires", Path: "questionnaires"},
}

// SummaryRow records field availability for one subject. Present is parallel
// to SummaryFields.
type SummaryRow struct {
	Subject string
	Present []bool
}

// Summarize probes every subject in the store for the SummaryFields paths,
// one row per subject in sorted subject order. Subjects with no matching
// fields still get a full all-false row. Rows are recomputed on every call.
func Summarize(store *Store) []SummaryRow {
	rows := make([]SummaryRow, 0, store.Len())

	for _, subject := range store.Subjects() {
		doc, _ := store.Get(subject)

		row := SummaryRow{
			Subject: subject,
			Present: make([]bool, len(SummaryFields)),
		}

		for i, field := range SummaryFields {
			_, row.Present[i] = Resolve(doc, field.Path)
		}

		rows = append(rows, row)
	}

	return rows
}

// PresenceMark renders one summary cell.
func PresenceMark(present bool) string {
	if present {
		return "yes"
	}

	return "no"
}

// WriteSummaryCSV exports summary rows as CSV. The file is written
// atomically so a failed export never clobbers a previous one.
func WriteSummaryCSV(path string, rows []SummaryRow) error {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	header := make([]string, 0, len(SummaryFields)+1)
	header = append(header, "subject")

	for _, field := range SummaryFields {
		header = append(header, field.Column)
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(row.Present)+1)
		record = append(record, row.Subject)

		for _, present := range row.Present {
			record = append(record, PresenceMark(present))
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("export summary: %w", err)
	}

	return nil
}
