// Package bind decodes and validates JSON request bodies for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/platform/logger"
	"outofoffice/internal/platform/validate"
)

// Options controls ParseJSON
type Options struct {
	MaxBytes        int64 // 0 means unlimited
	DisallowUnknown bool
	AllowEmptyBody  bool
	SkipValidation  bool
}

// Defaults is 1MB, unknown fields rejected, body required
var Defaults = Options{MaxBytes: 1 << 20, DisallowUnknown: true}

var jsonMore = func(dec *json.Decoder) bool { return dec.More() }

// ParseJSON decodes a T from the request body, validates it, and maps
// failures to JSON or Validation errors
func ParseJSON[T any](r *http.Request, opts ...Options) (T, error) {
	var zero T
	o := Defaults
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}
	if !o.AllowEmptyBody {
		peek := make([]byte, 1)
		n, _ := io.ReadFull(body, peek)
		if n == 0 {
			return zero, perr.JSONErrf("empty body")
		}
		body = io.MultiReader(bytes.NewReader(peek[:n]), body)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if o.SkipValidation {
		return dst, nil
	}
	if err := validate.Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
