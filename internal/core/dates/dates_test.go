package dates

import (
	"testing"
	"time"

	ptime "outofoffice/internal/platform/time"
)

func day(y, m, d int) *time.Time {
	t := ptime.Date(y, m, d)
	return &t
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want *time.Time
	}{
		{"18.05.2019", day(2019, 5, 18)},
		{"2019-05-18", day(2019, 5, 18)},
		{" 1.7.1996 ", day(1996, 7, 1)},
		{"2019-05-18T10:30:00Z", day(2019, 5, 18)},
		{"2013-09-07T23:30:00+10:00", day(2013, 9, 7)},
		{"2019-05-18T23:30:00-05:00", day(2019, 5, 18)},
		{"2019-05-18T00:30:00+10:00", day(2019, 5, 18)},
		{"31.02.2010", day(2010, 3, 3)},
		{"", nil},
		{"   ", nil},
		{"not-a-date", nil},
		{"18/05/2019", nil},
		{"18.05", nil},
		{"18.05.2019.1", nil},
		{"aa.bb.cccc", nil},
		{"still_in_office", nil},
	}
	for _, c := range cases {
		got := Parse(c.in)
		if !Equal(got, c.want) {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParse_DottedAndISOAgree(t *testing.T) {
	a, b := Parse("18.05.2019"), Parse("2019-05-18")
	if a == nil || b == nil || !a.Equal(*b) {
		t.Fatalf("dotted %v vs iso %v", a, b)
	}
	if a.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", a.Location())
	}
}

func TestCompare_NilIsMostRecent(t *testing.T) {
	early, late := day(2010, 1, 1), day(2020, 1, 1)
	cases := []struct {
		name string
		a, b *time.Time
		want int
	}{
		{"both nil", nil, nil, 0},
		{"nil beats date", nil, late, 1},
		{"date loses to nil", late, nil, -1},
		{"earlier", early, late, -1},
		{"later", late, early, 1},
		{"same", early, day(2010, 1, 1), 0},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Fatalf("%s: Compare = %d, want %d", c.name, got, c.want)
		}
	}
	if !Later(nil, late) || Later(early, late) || Later(early, early) {
		t.Fatal("Later is not strict")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(day(2019, 5, 18)); got != "18 May 2019" {
		t.Fatalf("Format = %q", got)
	}
	if got := Format(day(2007, 12, 3)); got != "3 December 2007" {
		t.Fatalf("Format = %q", got)
	}
	if got := FormatMonthYear(day(2023, 6, 1)); got != "June 2023" {
		t.Fatalf("FormatMonthYear = %q", got)
	}
	if Format(nil) != "" || FormatMonthYear(nil) != "" {
		t.Fatal("nil should format empty")
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   *time.Time
		want string
	}{
		{day(2025, 3, 1), "0 months ago"},
		{day(2025, 2, 28), "1 month ago"},
		{day(2024, 4, 30), "11 months ago"},
		{day(2024, 3, 31), "1 year ago"},
		{day(2022, 5, 21), "2 years ago"},
		{day(1996, 3, 2), "29 years ago"},
	}
	for _, c := range cases {
		if got := TimeAgo(c.at, now); got != c.want {
			t.Fatalf("TimeAgo(%v) = %q, want %q", c.at, got, c.want)
		}
	}
	if TimeAgo(nil, now) != "" {
		t.Fatal("nil should be empty")
	}
}
