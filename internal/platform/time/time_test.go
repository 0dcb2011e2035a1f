package time

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatal("zero time should give nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatal("Ptr lost value")
	}
}

func TestDate_Normalises(t *testing.T) {
	got := Date(2019, 2, 30)
	if got.Month() != time.March || got.Day() != 2 || got.Location() != time.UTC {
		t.Fatalf("Date(2019,2,30) = %v", got)
	}
}

func TestDay(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
	}{
		{"ahead of utc", time.Date(2022, 5, 21, 0, 30, 0, 0, time.FixedZone("AEST", 10*3600))},
		{"behind utc", time.Date(2022, 5, 21, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))},
		{"utc", time.Date(2022, 5, 21, 12, 0, 0, 0, time.UTC)},
	}
	want := time.Date(2022, 5, 21, 0, 0, 0, 0, time.UTC)
	for _, c := range cases {
		got := Day(c.in)
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("%s: Day = %v, want %v", c.name, got, want)
		}
	}
}
