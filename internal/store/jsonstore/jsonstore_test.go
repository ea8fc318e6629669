package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/bookdemo/internal/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "bookings.json"))
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := newStore(t)
	got, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAppendGrowsLog(t *testing.T) {
	s := newStore(t)
	for i := 1; i <= 3; i++ {
		n, err := s.Append(model.Booking{Date: "2024-05-14", Time: "10:00", Name: "Erik Andersson"})
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSaveIsReadableJSON(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save([]model.Booking{{
		Date: "2024-05-14", Time: "10:00", Name: "Erik Andersson", Company: "TechSoft AB",
		Email: "erik@techsoft.se", Phone: "+46701234567", Message: "Vi är intresserade",
	}}))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"phone": "+46701234567"`)
	assert.Contains(t, string(raw), "Vi är intresserade")
	assert.Contains(t, string(raw), "\n  {")
}

func TestLoadMalformed(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))
	_, err := s.Load()
	assert.ErrorContains(t, err, "json unmarshal")
}

func TestLoadEmptyFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), nil, 0o644))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewDefaultsToWorkingDir(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, filepath.Base(s.Path()))
}
