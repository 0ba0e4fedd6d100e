package pages

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// EntryMap maps bundle ids to entry file paths, remembering insertion order
// so the serialized form lines up with the directive sequence.
type EntryMap struct {
	ids   []string
	paths map[string]string
}

// NewEntryMap returns an empty EntryMap.
func NewEntryMap() *EntryMap {
	return &EntryMap{paths: make(map[string]string)}
}

// Add registers id -> entryPath. An id that is already present is never
// overwritten; a *DuplicateBundleError is returned instead.
func (m *EntryMap) Add(id, entryPath string) error {
	if m.paths == nil {
		m.paths = make(map[string]string)
	}
	if existing, ok := m.paths[id]; ok {
		return &DuplicateBundleError{BundleID: id, Existing: existing, Duplicate: entryPath}
	}
	m.ids = append(m.ids, id)
	m.paths[id] = entryPath
	return nil
}

// Get returns the entry path registered for id.
func (m *EntryMap) Get(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	p, ok := m.paths[id]
	return p, ok
}

// IDs returns the bundle ids in insertion order.
func (m *EntryMap) IDs() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.ids...)
}

// Len returns the number of entries.
func (m *EntryMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.ids)
}

// Map returns a copy of the entries as a plain map.
func (m *EntryMap) Map() map[string]string {
	out := make(map[string]string, m.Len())
	if m == nil {
		return out
	}
	for id, p := range m.paths {
		out[id] = p
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *EntryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.IDs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.paths[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m *EntryMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range m.IDs() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.paths[id]},
		)
	}
	return node, nil
}
