package core

import (
	"bufio"
	"io"
	"strings"
)

const ExportFileName = "ig_compare_results.csv"

type Column struct {
	Name   string
	Values []string
}

// WriteCSV writes a header row followed by the columns side by side. Shorter
// columns are padded with empty fields. Every data field is quoted.
// Rows are separated by a newline; there is none after the last row.
func WriteCSV(w io.Writer, columns []Column) error {
	bw := bufio.NewWriter(w)

	rows := 0
	names := make([]string, len(columns))

	for i, c := range columns {
		names[i] = c.Name

		if len(c.Values) > rows {
			rows = len(c.Values)
		}
	}

	if _, err := bw.WriteString(strings.Join(names, ",")); err != nil {
		return err
	}

	fields := make([]string, len(columns))

	for r := 0; r < rows; r++ {
		for i, c := range columns {
			value := ""

			if r < len(c.Values) {
				value = c.Values[r]
			}

			fields[i] = quoteField(value)
		}

		if _, err := bw.WriteString("\n" + strings.Join(fields, ",")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteCSV exports the displayed lists of the report.
func (r Report) WriteCSV(w io.Writer) error {
	return WriteCSV(w, r.Columns())
}
