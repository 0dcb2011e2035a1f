package httpkit

import (
	"net/http"
	"strconv"
	"strings"

	perr "outofoffice/internal/platform/errors"
	pnet "outofoffice/internal/platform/net"
	phttp "outofoffice/internal/platform/net/http"
)

// Param returns a trimmed path parameter
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(phttp.URLParam(r, name))
}

// MustParam returns a path parameter or an InvalidArgument error naming it
func MustParam(r *http.Request, name string) (string, error) {
	v := Param(r, name)
	if v == "" {
		return "", perr.WithField(perr.InvalidArgf("missing %s", name), name)
	}
	return v, nil
}

// Editor returns the attribution label sent with the request, "" if none
func Editor(r *http.Request) string { return pnet.Editor(r.Context()) }

// QueryInt reads a non-negative int query value. Missing means def; values
// above max are clamped when max > 0
func QueryInt(r *http.Request, key string, def, max int) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, perr.WithField(perr.InvalidArgf("%s must be a non-negative integer", key), key)
	}
	if max > 0 && n > max {
		n = max
	}
	return n, nil
}

// QueryBool reads 1/true/yes as true and 0/false/no as false
func QueryBool(r *http.Request, key string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key))) {
	case "":
		return def, nil
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, perr.WithField(perr.InvalidArgf("%s must be a boolean", key), key)
}

// Window slices items by the offset and limit query values and returns
// the list response with its page block
func Window[T any](r *http.Request, items []T, defLimit, maxLimit int) Response {
	offset, err := QueryInt(r, "offset", 0, 0)
	if err != nil {
		return Error(err)
	}
	limit, err := QueryInt(r, "limit", defLimit, maxLimit)
	if err != nil {
		return Error(err)
	}
	total := len(items)
	lo := min(offset, total)
	hi := total
	if limit > 0 {
		hi = min(lo+limit, total)
	}
	page := items[lo:hi]
	if page == nil {
		page = []T{}
	}
	return List(page, total, offset, limit)
}
