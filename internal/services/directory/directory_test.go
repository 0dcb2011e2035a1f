package directory

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"outofoffice/internal/core/listing"
	"outofoffice/internal/core/roster"
	perr "outofoffice/internal/platform/errors"
	kit "outofoffice/internal/platform/testkit"
)

const repsCSV = `id,surname,name,division,state,elected,election_type,ceased,reason,party
1,Abbott,Anthony John Abbott,Warringah,NSW,13.03.1994,by-election,18.05.2019,Defeated,LIB
2,Pyne,Christopher Maurice Pyne,Sturt,SA,13.03.1993,general,11.04.2019,Retired,LIB
3,Plibersek,Tanya Joan Plibersek,Sydney,NSW,03.10.1998,general,,still_in_office,ALP
4,Nobody,,Nowhere,NSW,,,,,
5,Lundy,Kate Lundy,Canberra,ACT,02.03.1996,general,13.03.1998,Resigned,ALP
`

const senateCSV = `id,surname,name,division,state,elected,election_type,ceased,reason,party
9,Lundy,Kate Lundy,,ACT,13.03.1998,casual,26.03.2015,Resigned,ALP
10,Patrick,Rex Lyall Patrick,,SA,15.11.2017,casual,30.06.2022,Defeated,IND
`

const gigsJSON = `[
  {"role":"Executive Chairman","organisation":"Pyne and Partners","category":"Professional Services & Management Consulting","sources":["https://pyneandpartners.com.au/"],"pollie_slug":"christopher-maurice-pyne","verified_by":"ben","start_date":"2019-06-01"},
  {"role":"Director","organisation":"Some Board","category":"Financial Services and Banking","sources":["https://example.org/board"],"pollie_slug":"christopher-maurice-pyne"},
  {"role":"Chair","organisation":"Somewhere","category":"Retired","sources":["https://example.org/x"],"pollie_slug":"not-a-person"}
]
`

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	kit.WriteFile(t, dir, "representatives.csv", repsCSV)
	kit.WriteFile(t, dir, "senators.csv", senateCSV)
	kit.WriteFile(t, dir, "gigs.json", gigsJSON)
	return dir
}

func fixedNow() time.Time { return time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC) }

func TestLoad_EndToEnd(t *testing.T) {
	d, err := Load(context.Background(), Options{DataDir: fixture(t), Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}

	var slugs []string
	for _, p := range d.People() {
		slugs = append(slugs, p.Slug)
	}
	want := []string{"anthony-john-abbott", "christopher-maurice-pyne", "tanya-joan-plibersek", "kate-lundy", "rex-lyall-patrick"}
	if !reflect.DeepEqual(slugs, want) {
		t.Fatalf("people = %v", slugs)
	}

	// the later senate term replaces the earlier reps term, in the reps slot
	lundy, ok := d.Person("kate-lundy")
	if !ok || lundy.Chamber != roster.Senate || lundy.CeasedDate != "26.03.2015" {
		t.Fatalf("lundy = %+v", lundy)
	}

	if got := d.GigsFor("christopher-maurice-pyne"); len(got) != 2 || got[0].Role != "Executive Chairman" {
		t.Fatalf("pyne gigs = %+v", got)
	}
	if got := d.GigsFor("anthony-john-abbott"); got != nil {
		t.Fatalf("abbott gigs = %+v", got)
	}
	if _, ok := d.Person("not-a-person"); ok {
		t.Fatal("gig slug should not create a person")
	}
	if c := d.GigCounts(true); !reflect.DeepEqual(c, map[string]int{"christopher-maurice-pyne": 1}) {
		t.Fatalf("verified counts = %v", c)
	}

	st := d.Stats()
	if st.Rows != 7 || st.Skipped != 1 || st.People != 5 || st.Sitting != 1 || st.Gigs != 3 || st.VerifiedGigs != 1 {
		t.Fatalf("stats = %+v", st)
	}
	if !st.LoadedAt.Equal(fixedNow()) || len(st.Missing) != 0 {
		t.Fatalf("stats = %+v", st)
	}

	var labels []string
	for _, b := range d.Decades(listing.Options{}) {
		labels = append(labels, b.Label)
	}
	if !reflect.DeepEqual(labels, []string{"Current", "2020s", "2010s"}) {
		t.Fatalf("decades = %v", labels)
	}
	if opts := d.Options(); len(opts) != 5 || opts[0].Slug != "anthony-john-abbott" {
		t.Fatalf("options = %+v", opts)
	}
}

func TestLoad_MissingFilesAreEmpty(t *testing.T) {
	dir := t.TempDir()
	kit.WriteFile(t, dir, "senators.csv", senateCSV)

	d, err := Load(context.Background(), Options{DataDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.People()) != 2 || len(d.Gigs()) != 0 {
		t.Fatalf("people=%d gigs=%d", len(d.People()), len(d.Gigs()))
	}
	if !reflect.DeepEqual(d.Stats().Missing, []string{"representatives.csv", "gigs.json"}) {
		t.Fatalf("missing = %v", d.Stats().Missing)
	}

	empty, err := Load(context.Background(), Options{DataDir: t.TempDir()})
	if err != nil || len(empty.People()) != 0 || len(empty.Decades(listing.Options{})) != 0 {
		t.Fatalf("empty dir: %v", err)
	}
}

func TestLoad_InvalidGigsFailsLoad(t *testing.T) {
	dir := fixture(t)
	kit.WriteFile(t, dir, "gigs.json", `[{"role":"x","organisation":"y","category":"Invalid Category","sources":["https://a.b"],"pollie_slug":"z"}]`)

	_, err := Load(context.Background(), Options{DataDir: dir})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("err = %v", err)
	}
	kit.MustContain(t, err.Error(), "gigs.json")
}

func TestLoad_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, Options{DataDir: fixture(t)}); perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("err = %v", err)
	}
}

func TestLoad_ExportLayout(t *testing.T) {
	dir := t.TempDir()
	kit.WriteFile(t, dir, "pollies.csv", "phid,name,division,state,party,ceased_date,house\n"+
		"ABC1,Kristina Keneally,,NSW,ALP,2022-05-21,senate\n"+
		"ABC2,\"Smith, Jr\",Fenner,ACT,ALP,,reps\n")

	d, err := Load(context.Background(), Options{DataDir: dir, Tables: []Table{{File: "pollies.csv", Chamber: roster.Reps}}})
	if err != nil {
		t.Fatal(err)
	}
	kk, ok := d.Person("kristina-keneally")
	if !ok || kk.Chamber != roster.Senate || kk.StillInOffice {
		t.Fatalf("kk = %+v", kk)
	}
	if js, ok := d.Person("smith-jr"); !ok || !js.StillInOffice || js.Division != "Fenner" {
		t.Fatalf("smith = %+v", js)
	}
}

func TestSource_Reload(t *testing.T) {
	dir := fixture(t)
	src, err := NewSource(context.Background(), Options{DataDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	first := src.Current()

	kit.WriteFile(t, dir, "gigs.json", "[]\n")
	d, err := src.Reload(context.Background())
	if err != nil || d != src.Current() || len(d.Gigs()) != 0 {
		t.Fatalf("reload: %v", err)
	}
	if len(first.Gigs()) != 3 {
		t.Fatal("old snapshot must not change")
	}

	kit.WriteFile(t, dir, "gigs.json", "{broken")
	if _, err := src.Reload(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if src.Current() != d {
		t.Fatal("failed reload must keep the previous snapshot")
	}
}

func TestSource_ConcurrentReaders(t *testing.T) {
	src := Static(New(nil, nil), Options{DataDir: fixture(t)})
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%4 == 0 {
				_, _ = src.Reload(context.Background())
				return
			}
			for range 100 {
				_ = src.Current().Options()
			}
		}()
	}
	wg.Wait()
	if len(src.Current().People()) != 5 {
		t.Fatalf("people = %d", len(src.Current().People()))
	}
}
