package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outofoffice/internal/platform/config"
	perr "outofoffice/internal/platform/errors"
	ctxnet "outofoffice/internal/platform/net"
	phttp "outofoffice/internal/platform/net/http"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestNewServer_DefaultAddrAndRoutes(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("NOPE_"))
	if srv.Addr() != ":4000" {
		t.Fatalf("addr = %q", srv.Addr())
	}
	r := srv.Router()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	r.Route("/pollies", func(sub phttp.Router) {
		sub.Get("/{slug}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = io.WriteString(w, phttp.URLParam(req, "slug"))
		})
	})

	for path, want := range map[string]string{"/ping": "pong", "/pollies/tony-abbott": "tony-abbott"} {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("%s: %d %q", path, rec.Code, rec.Body.String())
		}
	}
}

func TestNewServer_PortFromEnv(t *testing.T) {
	t.Setenv("OOO_API_PORT", ":4123")
	if got := phttp.NewServer(config.New().Prefix("OOO_")).Addr(); got != ":4123" {
		t.Fatalf("addr = %q", got)
	}
}

func TestHandle_OKCarriesRequestID(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.OK(map[string]int{"n": 1}) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxnet.WithRequest(req.Context(), "rid-1"))
	rec := httptest.NewRecorder()
	h(rec, req)

	env := decode(t, rec)
	if env.StatusCode != http.StatusOK || env.RequestID != "rid-1" {
		t.Fatalf("envelope %+v", env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["n"] != float64(1) {
		t.Fatalf("data %#v", env.Data)
	}
}

func TestHandle_ErrorMapsStatusAndField(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.WithField(perr.Validationf("category must be one of the gig categories"), "category"))
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	env := decode(t, rec)
	if rec.Code != http.StatusBadRequest || env.Code != perr.ErrorCodeValidation || env.Field != "category" {
		t.Fatalf("status %d envelope %+v", rec.Code, env)
	}
}

func TestHandle_CreatedNoContentList(t *testing.T) {
	cases := []struct {
		name string
		resp phttp.Response
		want int
	}{
		{"created", phttp.Created("x"), http.StatusCreated},
		{"no content", phttp.NoContent(), http.StatusNoContent},
		{"list", phttp.List([]int{1, 2}, 10, 2, 2), http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			phttp.Handle(func(*http.Request) phttp.Response { return c.resp })(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != c.want {
				t.Fatalf("status = %d, want %d", rec.Code, c.want)
			}
			if c.want == http.StatusNoContent {
				if rec.Body.Len() != 0 {
					t.Fatalf("204 with body %q", rec.Body.String())
				}
				return
			}
			env := decode(t, rec)
			if c.name == "list" && (env.Page == nil || env.Page.Total != 10 || env.Page.Offset != 2) {
				t.Fatalf("page %+v", env.Page)
			}
		})
	}
}

type echoIn struct {
	Slug string `json:"slug" validate:"required"`
}

func TestSugar_PostAndGetJSON(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.PostJSON(r, "/echo", func(_ *http.Request, in echoIn) (any, error) { return in.Slug, nil })
	phttp.GetJSON(r, "/missing", func(*http.Request) (any, error) { return nil, perr.NotFoundf("pollie not found") })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"slug":"kevin-rudd"}`)))
	if env := decode(t, rec); env.Data != "kevin-rudd" {
		t.Fatalf("echo data %#v", env.Data)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("validation status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("not found status = %d", rec.Code)
	}
}

func TestMountProfiler(t *testing.T) {
	srv := phttp.NewServer(config.New())
	phttp.MountProfiler(srv.Router(), "/debug", true)

	rec := httptest.NewRecorder()
	srv.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("pprof index status = %d", rec.Code)
	}

	off := phttp.NewServer(config.New())
	phttp.MountProfiler(off.Router(), "/debug", false)
	rec = httptest.NewRecorder()
	off.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler status = %d", rec.Code)
	}
}
