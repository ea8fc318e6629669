package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/bookdemo/internal/model"
)

// JSON-backed booking log. Single file, human-readable, re-read and
// re-written wholesale on every append. No locking; one writer at a time.

const DefaultFileName = "bookings.json"

type Store struct {
	path string
}

// New returns a store for path. An empty path means bookings.json in the
// working directory.
func New(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

// Load returns every record. A missing file is an empty log.
func (s *Store) Load() ([]model.Booking, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Booking{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return []model.Booking{}, nil
	}
	var records []model.Booking
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if records == nil {
		records = []model.Booking{}
	}
	return records, nil
}

// Save replaces the file contents with records.
func (s *Store) Save(records []model.Booking) error {
	if records == nil {
		records = []model.Booking{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // keep "+46" and å/ä/ö readable
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Append adds one record and returns the new total.
func (s *Store) Append(rec model.Booking) (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}
	records = append(records, rec)
	if err := s.Save(records); err != nil {
		return 0, err
	}
	return len(records), nil
}
