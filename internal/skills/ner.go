package skills

import "context"

// Entity is an organization/product span recognized in posting text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// EntityRecognizer extracts organization and product entities from text.
// Implementations are external collaborators (e.g., an LLM-backed recognizer).
type EntityRecognizer interface {
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
}

// NERCapability models the optional named-entity capability as an explicit
// enabled/disabled variant rather than a nullable recognizer. The disabled
// variant is a first-class path: every other output is identical, only the
// NER-sourced entities are omitted.
type NERCapability struct {
	recognizer EntityRecognizer
}

// EnabledNER returns a capability backed by the given recognizer.
func EnabledNER(recognizer EntityRecognizer) NERCapability {
	return NERCapability{recognizer: recognizer}
}

// DisabledNER returns the disabled capability variant.
func DisabledNER() NERCapability {
	return NERCapability{}
}

// Enabled reports whether a recognizer is available.
func (c NERCapability) Enabled() bool {
	return c.recognizer != nil
}

// Extract runs the recognizer if enabled. Recognizer failures degrade to no
// entities; they never surface to the caller.
func (c NERCapability) Extract(ctx context.Context, text string) []Entity {
	if c.recognizer == nil {
		return nil
	}
	entities, err := c.recognizer.ExtractEntities(ctx, text)
	if err != nil {
		return nil
	}
	return entities
}
