package knowledge

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed travel_data.json
var bundled []byte

// ErrNoMatch is returned by Find when no entry matches the destination.
var ErrNoMatch = errors.New("no knowledge base entry matches destination")

// Every entry needs a non-empty id and name; attractions are free-form.
const entriesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name"],
    "properties": {
      "id":   {"type": "string", "minLength": 1},
      "name": {"type": "string", "minLength": 1}
    }
  }
}`

// Entry is a single destination record.
type Entry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Attractions json.RawMessage `json:"attractions,omitempty"`

	raw []byte
}

// Context returns the record exactly as it appears in the source file,
// compacted to a single line.
func (e Entry) Context() string {
	return string(e.raw)
}

// Base is the read-only set of entries. It is never mutated after Load, so it
// is safe to share between request goroutines.
type Base struct {
	entries []Entry
}

// Load reads the knowledge base from path, or the bundled travel_data.json
// when path is empty.
func Load(path string) (*Base, error) {
	if path == "" {
		return Parse(bundled)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read knowledge base %s", path)
	}
	return Parse(data)
}

// Parse validates data against the entry schema and decodes it.
func Parse(data []byte) (*Base, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(entriesSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, errors.Wrap(err, "decode knowledge base")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, errors.Errorf("invalid knowledge base: %s", strings.Join(msgs, "; "))
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.Wrap(err, "decode knowledge base")
	}

	entries := make([]Entry, 0, len(raws))
	for i, raw := range raws {
		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, errors.Wrapf(err, "decode entry %d", i)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, errors.Wrapf(err, "compact entry %d", i)
		}
		e.raw = buf.Bytes()
		entries = append(entries, e)
	}

	return &Base{entries: entries}, nil
}

// Find returns the first entry whose lowercased name contains the lowercased
// destination, or whose id contains it. Order is file order; there is no
// ranking.
func (b *Base) Find(destination string) (Entry, error) {
	query := strings.ToLower(destination)
	for _, e := range b.entries {
		if strings.Contains(strings.ToLower(e.Name), query) || strings.Contains(e.ID, query) {
			return e, nil
		}
	}
	return Entry{}, ErrNoMatch
}

// Names lists the entry names in file order.
func (b *Base) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.Name
	}
	return names
}

func (b *Base) Len() int {
	return len(b.entries)
}
