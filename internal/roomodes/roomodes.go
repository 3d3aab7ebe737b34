// Package roomodes reads and writes .roomodes files, the JSON document that
// lists the custom modes enabled in a workspace.
package roomodes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FileName is the name of the modes file in a workspace.
const FileName = ".roomodes"

const customModesKey = "customModes"

// Mode is one element of customModes. Raw holds the full JSON object so
// fields this package does not know about survive a rewrite.
type Mode struct {
	Slug string
	Raw  json.RawMessage
}

// File is a parsed .roomodes document. Top-level keys other than
// customModes are kept in Extra.
type File struct {
	CustomModes []Mode
	Extra       map[string]json.RawMessage
}

// Parse decodes a .roomodes document. Elements of customModes without a
// string slug are kept in the file but have an empty Slug.
func Parse(data []byte) (File, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	var f File
	raw, ok := top[customModesKey]
	delete(top, customModesKey)
	if len(top) > 0 {
		f.Extra = top
	}
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return f, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return File{}, fmt.Errorf("parsing %s: customModes: %w", FileName, err)
	}
	for _, el := range elems {
		var probe struct {
			Slug any `json:"slug"`
		}
		m := Mode{Raw: el}
		if err := json.Unmarshal(el, &probe); err == nil {
			if s, ok := probe.Slug.(string); ok {
				m.Slug = s
			}
		}
		f.CustomModes = append(f.CustomModes, m)
	}
	return f, nil
}

// Read parses the .roomodes file at path.
func Read(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return Parse(data)
}

// Marshal encodes f as indented JSON with a trailing newline.
func Marshal(f File) ([]byte, error) {
	top := make(map[string]any, len(f.Extra)+1)
	for k, v := range f.Extra {
		top[k] = v
	}
	modes := make([]json.RawMessage, 0, len(f.CustomModes))
	for _, m := range f.CustomModes {
		modes = append(modes, m.definition())
	}
	top[customModesKey] = modes

	data, err := json.MarshalIndent(top, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	return append(data, '\n'), nil
}

// definition returns the JSON object for m, synthesizing a minimal one when
// no raw definition is known.
func (m Mode) definition() json.RawMessage {
	if len(m.Raw) > 0 {
		return m.Raw
	}
	data, _ := json.Marshal(map[string]string{"slug": m.Slug})
	return data
}

// Slugs returns the slugs of customModes in file order, skipping elements
// without a string slug.
func (f File) Slugs() []string {
	out := make([]string, 0, len(f.CustomModes))
	for _, m := range f.CustomModes {
		if m.Slug != "" {
			out = append(out, m.Slug)
		}
	}
	return out
}

// Definitions indexes customModes by slug. The first definition of a slug wins.
func (f File) Definitions() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(f.CustomModes))
	for _, m := range f.CustomModes {
		if m.Slug == "" {
			continue
		}
		if _, ok := out[m.Slug]; !ok {
			out[m.Slug] = m.Raw
		}
	}
	return out
}
