package gigs

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	perr "outofoffice/internal/platform/errors"
)

// Decode reads a JSON array of gigs, rejecting unknown fields, then
// validates the whole collection
func Decode(r io.Reader) ([]Gig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var gs []Gig
	if err := dec.Decode(&gs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode gigs")
	}
	if dec.More() {
		return nil, perr.JSONErrf("decode gigs: unexpected trailing data")
	}
	if err := ValidateAll(gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// Encode renders gigs as 2-space indented JSON with a trailing newline
func Encode(gs []Gig) ([]byte, error) {
	if gs == nil {
		gs = []Gig{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(gs); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode gigs")
	}
	return buf.Bytes(), nil
}

// ReadFile loads and validates path. A missing file means no gigs and
// found is false; any decode or schema failure rejects the whole file
func ReadFile(path string) (gs []Gig, found bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeIO, "open %s", path)
	}
	defer f.Close()

	gs, err = Decode(f)
	if err != nil {
		return nil, true, perr.WithOp(err, filepath.Base(path))
	}
	return gs, true, nil
}

// WriteFile validates gs and replaces path with its encoding. The write
// goes through a temp file in the same directory and a rename
func WriteFile(path string, gs []Gig) error {
	if err := ValidateAll(gs); err != nil {
		return err
	}
	b, err := Encode(gs)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".gigs-*.json")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "write %s", path)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return perr.Wrapf(err, perr.ErrorCodeIO, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "write %s", path)
	}
	return nil
}

// AppendFile adds extra to the gigs already in path (a missing file counts
// as empty) and writes the result. Nothing is written if the combined
// collection fails validation
func AppendFile(path string, extra []Gig) ([]Gig, error) {
	current, _, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	all := append(current, extra...)
	if err := WriteFile(path, all); err != nil {
		return nil, err
	}
	return all, nil
}
