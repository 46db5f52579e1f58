package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotFound reports a catalog file that does not exist.
	ErrNotFound = errors.New("catalog not found")
	// ErrIO reports a catalog file that exists but could not be read.
	ErrIO = errors.New("catalog unreadable")
	// ErrParse reports a catalog file that is not a JSON array.
	ErrParse = errors.New("catalog malformed")
)

// LoadError describes a failure to load one catalog file. Kind is one of
// ErrNotFound, ErrIO or ErrParse and matches with errors.Is.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// LoadStars reads the star catalog at path.
func LoadStars(path string) ([]Star, error) {
	var stars []Star
	if err := loadArray(path, &stars); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("stars", len(stars)).Msg("Loaded star catalog")
	return stars, nil
}

// LoadAsterisms reads the asterism catalog at path.
func LoadAsterisms(path string) ([]Asterism, error) {
	var asterisms []Asterism
	if err := loadArray(path, &asterisms); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("asterisms", len(asterisms)).Msg("Loaded asterism catalog")
	return asterisms, nil
}

// loadArray decodes the JSON array stored at path into v. Numbers are kept as
// json.Number so their literal text survives a later re-encode.
func loadArray(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadError{Path: path, Kind: ErrNotFound, Err: err}
		}
		return &LoadError{Path: path, Kind: ErrIO, Err: err}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return &LoadError{Path: path, Kind: ErrParse, Err: errors.New("top-level value is not a JSON array")}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return &LoadError{Path: path, Kind: ErrParse, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &LoadError{Path: path, Kind: ErrParse, Err: fmt.Errorf("unexpected data after offset %d", dec.InputOffset())}
	}

	return nil
}
