package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "outofoffice/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type slugIn struct {
	Slug string `json:"slug" validate:"required"`
}

func serve(t *testing.T, mount func(Router), method, path, body string) (int, Envelope) {
	t.Helper()
	mux := chi.NewRouter()
	mount(phttp.AdaptChi(mux))

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env Envelope
	if rec.Code != http.StatusNoContent {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %q: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, env
}

func TestSugar_Verbs(t *testing.T) {
	mount := func(r Router) {
		Get(r, "/things/{slug}", func(r *http.Request) (any, error) { return Param(r, "slug"), nil })
		Post(r, "/reload", func(*http.Request) (any, error) { return NoContent(), nil })
		Delete(r, "/things", func(*http.Request) (any, error) { return map[string]int{"cleared": 2}, nil })
		PostJSON(r, "/things", func(_ *http.Request, in slugIn) (any, error) { return Created(in), nil })
		PutJSON(r, "/last", func(_ *http.Request, in slugIn) (any, error) { return in.Slug, nil })
	}

	cases := []struct {
		method, path, body string
		code               int
	}{
		{http.MethodGet, "/things/abbott", "", http.StatusOK},
		{http.MethodPost, "/reload", "", http.StatusNoContent},
		{http.MethodDelete, "/things", "", http.StatusOK},
		{http.MethodPost, "/things", `{"slug":"pyne"}`, http.StatusCreated},
		{http.MethodPost, "/things", `{"slug":""}`, http.StatusBadRequest},
		{http.MethodPost, "/things", `{"slug":"x","extra":1}`, http.StatusBadRequest},
		{http.MethodPut, "/last", `{"slug":"pyne"}`, http.StatusOK},
	}
	for _, c := range cases {
		code, env := serve(t, mount, c.method, c.path, c.body)
		if code != c.code {
			t.Fatalf("%s %s %s: code %d want %d (%+v)", c.method, c.path, c.body, code, c.code, env)
		}
	}

	_, env := serve(t, mount, http.MethodGet, "/things/abbott", "")
	if env.Data != "abbott" {
		t.Fatalf("data = %v", env.Data)
	}
	_, env = serve(t, mount, http.MethodPost, "/things", `{"slug":""}`)
	if env.Field != "slug" {
		t.Fatalf("field = %q", env.Field)
	}
}
