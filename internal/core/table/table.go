// Package table parses the comma delimited parliamentary tables.
//
// The format is deliberately small: rows split on newline, a double quote
// toggles quoting and is dropped, a comma outside quotes ends a field, and
// fields are whitespace trimmed. A doubled quote inside a quoted field is
// not an escape. An unterminated quote runs to the end of its line; the
// rest of that line becomes the final field and no error is reported.
package table

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	perr "outofoffice/internal/platform/errors"
)

// Row is one positional record
type Row []string

// Parse splits text into rows. Leading and trailing whitespace of the whole
// input is trimmed first, so a trailing newline never yields an empty row.
// Empty input yields no rows
func Parse(text string) []Row {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, parseLine(line))
	}
	return rows
}

func parseLine(line string) Row {
	var (
		row      Row
		field    strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			row = append(row, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	return append(row, strings.TrimSpace(field.String()))
}

// Join renders fields as one line. Fields are written verbatim, so values
// holding commas or quotes do not survive a Parse round trip
func Join(fields []string) string { return strings.Join(fields, ",") }

// ReadFile reads and parses path. A missing file is "no data": it returns
// (nil, false, nil). Other read failures are IO errors
func ReadFile(path string) ([]Row, bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeIO, "read table %s", path)
	}
	return Parse(string(b)), true, nil
}
