package savegame

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encode renders a record as a YAML document.
func Encode(rec Record) ([]byte, error) {
	data, err := yaml.Marshal(toDocument(rec))
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot encode %q: %w", rec.Name, err)
	}
	return data, nil
}

// Decode parses and validates a YAML document produced by Encode.
// Every failure wraps ErrCorrupt.
func Decode(data []byte) (Record, error) {
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return Record{}, corrupt("%v", err)
	}
	for _, k := range requiredKeys {
		if _, ok := keys[k]; !ok {
			return Record{}, corrupt("missing field %q", k)
		}
	}

	if err := checkShipKeys(keys["ship_positions"]); err != nil {
		return Record{}, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Record{}, corrupt("%v", err)
	}
	return fromDocument(doc)
}

// checkShipKeys verifies that every ship_positions entry carries all of its
// fields; a missing coordinate would otherwise decode as zero.
func checkShipKeys(node yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return nil
	}
	for i, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return corrupt("ship_positions[%d] is not a mapping", i)
		}
		present := make(map[string]bool, len(item.Content)/2)
		for j := 0; j+1 < len(item.Content); j += 2 {
			present[item.Content[j].Value] = true
		}
		for _, k := range requiredShipKeys {
			if !present[k] {
				return corrupt("ship_positions[%d] is missing %q", i, k)
			}
		}
	}
	return nil
}
