package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- { // outermost first
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_RequestReachesHandler(t *testing.T) {
	hit := 0
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit++
		w.WriteHeader(http.StatusNoContent)
	})
	root := applyStack(final, CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pollies", nil))

	if hit != 1 || rr.Code != http.StatusNoContent {
		t.Fatalf("hit=%d code=%d", hit, rr.Code)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("expected no-cache headers")
	}
}

func TestCommonStack_CORSPreflight(t *testing.T) {
	root := applyStack(http.NotFoundHandler(), CommonStack(StackOptions{CORSOrigins: []string{"https://outofoffice.cv"}}))

	req := httptest.NewRequest(http.MethodOptions, "/drafts", nil)
	req.Header.Set("Origin", "https://outofoffice.cv")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://outofoffice.cv" {
		t.Fatalf("allow origin = %q (code %d)", got, rr.Code)
	}
}
