package memory

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed layout.schema.json
var layoutSchemaSource string

var (
	layoutSchemaOnce sync.Once
	layoutSchema     *jsonschema.Schema
	layoutSchemaErr  error
)

func compiledLayoutSchema() (*jsonschema.Schema, error) {
	layoutSchemaOnce.Do(func() {
		layoutSchema, layoutSchemaErr = jsonschema.CompileString("layout.schema.json", layoutSchemaSource)
	})
	return layoutSchema, layoutSchemaErr
}

type layoutDocument struct {
	Version string  `json:"version" yaml:"version"`
	Fields  []Field `json:"fields" yaml:"fields"`
}

// LoadLayout reads a YAML layout document, checks it against the layout
// schema and returns the indexed Layout.
func LoadLayout(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	var raw any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err = validateLayoutDocument(raw); err != nil {
		return nil, err
	}

	var doc layoutDocument
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return NewLayout(doc.Version, doc.Fields...)
}

// LoadLayoutFile loads a layout from disk. An empty path yields DefaultLayout.
func LoadLayoutFile(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return LoadLayout(bytes.NewReader(data))
}

// MarshalYAML renders the layout in the document format LoadLayout accepts.
func (l *Layout) MarshalYAML() (any, error) {
	return layoutDocument{Version: l.Version, Fields: l.Fields()}, nil
}

// validateLayoutDocument normalises the YAML tree into JSON types before
// schema validation, so integers and maps match what the validator expects.
func validateLayoutDocument(raw any) error {
	schema, err := compiledLayoutSchema()
	if err != nil {
		return fmt.Errorf("compile layout schema: %w", err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	var doc any
	if err = dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err = schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return nil
}
