package validate

import (
	"strings"
	"testing"

	perr "outofoffice/internal/platform/errors"
)

type entry struct {
	Title   string   `json:"title" validate:"required,min=2"`
	Links   []string `json:"links" validate:"min=1,dive,url"`
	Kind    string   `json:"kind" validate:"required,entry_kind"`
	Comment string   `json:"-" validate:"max=5"`
}

func init() {
	MustRegister("entry_kind", "{0} must be a known kind", func(fl FieldLevel) bool {
		return fl.Field().String() == "board" || fl.Field().String() == "advisory"
	})
}

func TestStruct_OK(t *testing.T) {
	e := entry{Title: "Chair", Links: []string{"https://example.org/a"}, Kind: "board"}
	if err := Struct(e); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestStruct_FieldsAndMessages(t *testing.T) {
	cases := []struct {
		name      string
		in        entry
		wantField string
		wantMsg   string
	}{
		{"short title", entry{Title: "C", Links: []string{"https://x.org"}, Kind: "board"}, "title", "title must be at least 2"},
		{"no links", entry{Title: "Chair", Links: []string{}, Kind: "board"}, "links", "links must be at least 1"},
		{"bad link", entry{Title: "Chair", Links: []string{"nope"}, Kind: "board"}, "links[0]", "must be an absolute URL"},
		{"custom tag", entry{Title: "Chair", Links: []string{"https://x.org"}, Kind: "lunch"}, "kind", "kind must be a known kind"},
		{"go name when json dash", entry{Title: "Chair", Links: []string{"https://x.org"}, Kind: "board", Comment: "toolong"}, "Comment", "Comment must be at most 5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Struct(c.in)
			if perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("code = %v (%v)", perr.CodeOf(err), err)
			}
			e, _ := perr.As(err)
			if e.Field() != c.wantField {
				t.Fatalf("field = %q, want %q", e.Field(), c.wantField)
			}
			if !strings.Contains(err.Error(), c.wantMsg) {
				t.Fatalf("message %q missing %q", err.Error(), c.wantMsg)
			}
		})
	}
}

func TestStruct_NonStruct(t *testing.T) {
	if perr.CodeOf(Struct(42)) != perr.ErrorCodeUnknown {
		t.Fatal("non-struct input should be an internal error")
	}
}

func TestRegister_BadTag(t *testing.T) {
	if err := Register("", "x", func(FieldLevel) bool { return true }); err == nil {
		t.Fatal("empty tag should be rejected")
	}
}
