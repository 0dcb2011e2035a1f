package roster

import (
	"slices"
	"strings"

	"outofoffice/internal/core/dates"
	"outofoffice/internal/core/slug"
	"outofoffice/internal/core/table"
	pstrings "outofoffice/internal/platform/strings"
)

// Columns maps Person fields to row positions. A negative index means the
// table has no such column.
//
// Empty string policy: every text field reads as "" when its column is
// absent from the layout, beyond the end of a short row, or blank. Nothing
// downstream distinguishes those cases
type Columns struct {
	Name         int
	Division     int
	State        int
	Elected      int
	ElectionType int
	Ceased       int
	Reason       int
	Party        int
	// House, when present, overrides the chamber of the source table
	House int
}

// HandbookColumns is the layout of representatives.csv and senators.csv
// as published by the parliamentary handbook
var HandbookColumns = Columns{
	Name:         2,
	Division:     3,
	State:        4,
	Elected:      5,
	ElectionType: 6,
	Ceased:       7,
	Reason:       8,
	Party:        9,
	House:        -1,
}

// ExportColumns is the compact phid,name,division,state,party,ceased_date,house
// layout. It has no reason column, so a blank ceased date marks a sitting member
var ExportColumns = Columns{
	Name:         1,
	Division:     2,
	State:        3,
	Elected:      -1,
	ElectionType: -1,
	Ceased:       5,
	Reason:       -1,
	Party:        4,
	House:        6,
}

// DetectColumns picks a layout from a header row
func DetectColumns(header table.Row) Columns {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}
	if slices.Contains(lower, "ceased_date") && slices.Contains(lower, "house") {
		return ExportColumns
	}
	return HandbookColumns
}

// field applies the empty string policy
func (c Columns) field(row table.Row, i int) string { return pstrings.At(row, i) }

// FromRow builds a Person from one data row. ok is false when the name
// column is missing or blank; such rows are skipped, not errors
func (c Columns) FromRow(row table.Row, chamber Chamber) (Person, bool) {
	name := c.field(row, c.Name)
	if name == "" {
		return Person{}, false
	}
	if h, ok := ParseChamber(c.field(row, c.House)); ok {
		chamber = h
	}

	p := Person{
		Slug:         slug.Make(name),
		Name:         name,
		Division:     c.field(row, c.Division),
		State:        c.field(row, c.State),
		Party:        c.field(row, c.Party),
		ElectedDate:  c.field(row, c.Elected),
		ElectionType: c.field(row, c.ElectionType),
		CeasedDate:   c.field(row, c.Ceased),
		Reason:       c.field(row, c.Reason),
		Chamber:      chamber,
	}
	if c.Reason >= 0 {
		p.StillInOffice = p.Reason == StillInOfficeReason
	} else {
		p.StillInOffice = p.CeasedDate == ""
	}
	if !p.StillInOffice {
		p.TenureEnd = dates.Parse(p.CeasedDate)
	}
	return p, true
}

// FromTable maps every data row of rows (the first row is the header) and
// returns the people plus how many rows were skipped
func FromTable(rows []table.Row, chamber Chamber) (people []Person, skipped int) {
	if len(rows) < 2 {
		return nil, 0
	}
	cols := DetectColumns(rows[0])
	people = make([]Person, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p, ok := cols.FromRow(row, chamber)
		if !ok {
			skipped++
			continue
		}
		people = append(people, p)
	}
	return people, skipped
}
