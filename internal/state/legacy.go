package state

import (
	"encoding/json"
	"fmt"
)

// Decode parses a state document and applies the read adapter for files
// written before "connectors" replaced "integrations". The adapter is
// permanent: whenever the connectors key is absent or null, the legacy
// integrations list is used in its place. Files that carry connectors are
// returned exactly as stored.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse state document: %w", err)
	}
	adoptLegacyConnectors(&doc)
	doc.normalize()
	return &doc, nil
}

// Encode renders the document the way it is written to disk.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state document: %w", err)
	}
	return append(data, '\n'), nil
}

func adoptLegacyConnectors(doc *Document) {
	if doc.Connectors != nil || doc.Integrations == nil {
		return
	}
	doc.Connectors = make([]Connector, len(doc.Integrations))
	copy(doc.Connectors, doc.Integrations)
}
