// Package site renders the data documents the static front end is built
// from
package site

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"outofoffice/internal/platform/config"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/platform/validate"

	"gopkg.in/yaml.v3"
)

// Settings is site.yaml. Every field may also come from OOO_* env, which
// wins over the file
type Settings struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Canonical   string `yaml:"canonical" json:"canonical" validate:"required,url"`
	DataDir     string `yaml:"data_dir" json:"data_dir" validate:"required"`
	OutDir      string `yaml:"out_dir" json:"out_dir" validate:"required"`
	MinDecade   int    `yaml:"min_decade" json:"min_decade" validate:"min=0"`
	SkipCurrent bool   `yaml:"skip_current" json:"skip_current"`
}

// Defaults is the published site
func Defaults() Settings {
	return Settings{
		Title:       "Out of Office CV",
		Description: "Tracking what Australian Parliamentarians do when they leave office",
		Canonical:   "https://outofoffice.cv",
		DataDir:     "./data",
		OutDir:      "./dist",
		MinDecade:   1980,
	}
}

// LoadSettings layers Defaults, the yaml file at path (skipped when
// missing or path is "") and OOO_* env, then validates the result
func LoadSettings(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, perr.Wrapf(err, perr.ErrorCodeIO, "read %s", path)
		default:
			if err := decodeYAML(b, &s); err != nil {
				return Settings{}, perr.WithOp(err, path)
			}
		}
	}

	env := config.New().Prefix("OOO_")
	s.Title = env.MayString("SITE_TITLE", s.Title)
	s.Description = env.MayString("SITE_DESCRIPTION", s.Description)
	s.Canonical = env.MayURL("SITE_CANONICAL", s.Canonical)
	s.DataDir = env.MayString("DATA_DIR", s.DataDir)
	s.OutDir = env.MayString("OUT_DIR", s.OutDir)
	s.MinDecade = env.MayInt("MIN_DECADE", s.MinDecade)
	s.SkipCurrent = env.MayBool("SKIP_CURRENT", s.SkipCurrent)

	if err := validate.Struct(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func decodeYAML(b []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse site settings")
	}
	return nil
}
