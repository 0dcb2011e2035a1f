package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "outofoffice/internal/platform/errors"
	kit "outofoffice/internal/platform/testkit"
)

type draftIn struct {
	Role   string `json:"role" validate:"required,min=2"`
	Weight int    `json:"weight" validate:"min=0,max=5"`
}

func post(body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	}
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[draftIn](post(`{"role":"Chair","weight":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Role != "Chair" || got.Weight != 3 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	cases := []struct {
		name string
		body string
		opts []Options
		want perr.ErrorCode
	}{
		{"empty body", "", nil, perr.ErrorCodeJSON},
		{"broken json", `{`, nil, perr.ErrorCodeJSON},
		{"unknown field", `{"role":"Chair","boom":1}`, nil, perr.ErrorCodeJSON},
		{"over limit", `{"role":"Chair"}`, []Options{{MaxBytes: 5}}, perr.ErrorCodeJSON},
		{"validation", `{"role":"C"}`, nil, perr.ErrorCodeValidation},
		{"max", `{"role":"Chair","weight":9}`, nil, perr.ErrorCodeValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseJSON[draftIn](post(c.body), c.opts...)
			if perr.CodeOf(err) != c.want {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), c.want, err)
			}
		})
	}
}

func TestParseJSON_ValidationCarriesField(t *testing.T) {
	_, err := ParseJSON[draftIn](post(`{"role":"Chair","weight":9}`))
	e, ok := perr.As(err)
	if !ok || e.Field() != "weight" {
		t.Fatalf("expected field weight, got %v", err)
	}
	kit.MustContain(t, err.Error(), "weight must be at most 5")
}

func TestParseJSON_AllowEmpty(t *testing.T) {
	got, err := ParseJSON[draftIn](post(""), Options{AllowEmptyBody: true, SkipValidation: true})
	if err != nil || got != (draftIn{}) {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_UnknownAllowed(t *testing.T) {
	got, err := ParseJSON[draftIn](post(`{"role":"Chair","extra":true}`), Options{})
	if err != nil || got.Role != "Chair" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	_, err := ParseJSON[draftIn](post(`{"role":"Chair"}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestParseJSON_Slice(t *testing.T) {
	got, err := ParseJSON[[]string](post(`["a","b"]`), Options{SkipValidation: true})
	if err != nil || len(got) != 2 {
		t.Fatalf("got %v, %v", got, err)
	}
}
