package http

import (
	"net/http"

	"outofoffice/internal/platform/net/http/bind"
)

// GetJSON mounts a GET handler returning (data, error)
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, NoBody(h))
}

// DeleteJSON mounts a DELETE handler returning (data, error)
func DeleteJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, NoBody(h))
}

// PostJSON mounts a POST handler that binds and validates T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, WithBody(h))
}

// PutJSON mounts a PUT handler that binds and validates T
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, WithBody(h))
}

// WithBody adapts a body-taking JSON handler
func WithBody[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// NoBody adapts a JSON handler that reads no request body
func NoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// result lets handlers return a Response when they need a status other than 200
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
