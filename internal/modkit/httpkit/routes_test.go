package httpkit

import (
	"net/http"
	"testing"

	phttp "outofoffice/internal/platform/net/http"
)

type verbCall struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// fakeRouter records what modules mount on it
type fakeRouter struct {
	prefixes   []string
	groupCalls int
	useCalls   int
	lastMWLen  int
	verbCalls  []verbCall
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) {
	f.groupCalls++
	fn(f)
}

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) With(mw ...func(http.Handler) http.Handler) Router {
	f.Use(mw...)
	return f
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"HANDLE", path, nil, h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"GET", path, h, nil})
}

func (f *fakeRouter) Post(path string, h phttp.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"POST", path, h, nil})
}

func (f *fakeRouter) Put(path string, h phttp.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"PUT", path, h, nil})
}

func (f *fakeRouter) Delete(path string, h phttp.Handler) {
	f.verbCalls = append(f.verbCalls, verbCall{"DELETE", path, h, nil})
}

var _ Router = (*fakeRouter)(nil)

func TestMountUnder_AppliesMiddleware_And_CallsMount(t *testing.T) {
	root := &fakeRouter{}

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }

	MountUnder(root, "/pollies", []func(http.Handler) http.Handler{mwA, mwB}, func(sub Router) {
		sub.Get("/options", phttp.Handle(func(r *http.Request) phttp.Response {
			return phttp.NoContent()
		}))
	})

	if len(root.prefixes) != 1 || root.prefixes[0] != "/pollies" {
		t.Fatalf("expected Route to be called with /pollies, got %v", root.prefixes)
	}
	if root.useCalls != 1 || root.lastMWLen != 2 {
		t.Fatalf("expected Use once with 2 middleware, got calls=%d len=%d", root.useCalls, root.lastMWLen)
	}
	if len(root.verbCalls) != 1 {
		t.Fatalf("expected one route, got %+v", root.verbCalls)
	}
	first := root.verbCalls[0]
	if first.verb != "GET" || first.path != "/options" || first.ph == nil {
		t.Fatalf("expected GET /options with a handler, got verb=%s path=%s", first.verb, first.path)
	}
}

func TestMountUnder_NoMiddleware_SkipsUse(t *testing.T) {
	root := &fakeRouter{}

	MountUnder(root, "/drafts", nil, func(sub Router) {
		sub.Delete("/{id}", phttp.Handle(func(r *http.Request) phttp.Response {
			return phttp.NoContent()
		}))
	})

	if root.useCalls != 0 {
		t.Fatalf("expected Use to not be called when mw is empty, got %d", root.useCalls)
	}
	if len(root.verbCalls) != 1 || root.verbCalls[0].verb != "DELETE" || root.verbCalls[0].path != "/{id}" {
		t.Fatalf("expected DELETE /{id}, got %+v", root.verbCalls)
	}
}

func TestMountUnder_EmptyPrefixIsInlineGroup(t *testing.T) {
	for _, prefix := range []string{"", "/"} {
		root := &fakeRouter{}
		MountUnder(root, prefix, nil, func(sub Router) {})
		if len(root.prefixes) != 0 || root.groupCalls != 1 {
			t.Fatalf("prefix %q: prefixes=%v groups=%d", prefix, root.prefixes, root.groupCalls)
		}
	}
}
