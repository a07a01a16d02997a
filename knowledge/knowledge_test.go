package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundled(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2, base.Len())
	assert.Equal(t, []string{"Paris", "Tokyo"}, base.Names())
}

func TestFind(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name   string
		query  string
		wantID string
	}{
		{"exact name", "Paris", "paris"},
		{"lowercase name", "tokyo", "tokyo"},
		{"uppercase name", "TOKYO", "tokyo"},
		{"name substring", "ari", "paris"},
		{"id substring", "tok", "tokyo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := base.Find(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, e.ID)
		})
	}

	t.Run("no match", func(t *testing.T) {
		_, err := base.Find("Berlin")
		assert.True(t, errors.Is(err, ErrNoMatch))
	})

	t.Run("query longer than name", func(t *testing.T) {
		_, err := base.Find("Paris, France")
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}

func TestFindReturnsFirstMatch(t *testing.T) {
	base, err := Parse([]byte(`[
		{"id": "san-jose-cr", "name": "San Jose"},
		{"id": "san-jose-us", "name": "San Jose"}
	]`))
	require.NoError(t, err)

	e, err := base.Find("san jose")
	require.NoError(t, err)
	assert.Equal(t, "san-jose-cr", e.ID)
}

func TestFindIDIsCaseSensitive(t *testing.T) {
	base, err := Parse([]byte(`[{"id": "NYC", "name": "New York"}]`))
	require.NoError(t, err)

	// The query is lowercased before comparison, so an uppercase id never
	// matches on its own.
	_, err = base.Find("NYC")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestContextIsCompactedRecord(t *testing.T) {
	base, err := Parse([]byte(`[
		{ "id": "paris",
		  "name": "Paris",
		  "attractions": [ {"name": "Louvre"} ] }
	]`))
	require.NoError(t, err)

	e, err := base.Find("paris")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"paris","name":"Paris","attractions":[{"name":"Louvre"}]}`, e.Context())
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"object instead of array", `{"id": "paris", "name": "Paris"}`},
		{"missing name", `[{"id": "paris"}]`},
		{"empty id", `[{"id": "", "name": "Paris"}]`},
		{"numeric id", `[{"id": 7, "name": "Paris"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travel_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "rome", "name": "Rome"}]`), 0o644))

	base, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rome"}, base.Names())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
