// Package llm - ner.go provides model-backed named entity recognition.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/job-analyzer/internal/skills"
)

// entityLabels are the labels the recognizer is allowed to emit.
var entityLabels = map[string]bool{
	"ORG":      true,
	"PRODUCT":  true,
	"LANGUAGE": true,
	"GPE":      true,
	"PERSON":   true,
}

// Recognizer implements skills.EntityRecognizer using an LLM backend.
type Recognizer struct {
	client Client
}

// NewRecognizer creates a model-backed entity recognizer.
func NewRecognizer(client Client) *Recognizer {
	return &Recognizer{client: client}
}

// ExtractEntities identifies named entities in the given text.
func (r *Recognizer) ExtractEntities(ctx context.Context, text string) ([]skills.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	prompt := buildEntityPrompt(text)

	raw, err := r.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("entity extraction failed: %w", err)
	}

	var parsed struct {
		Entities []struct {
			Text  string `json:"text"`
			Label string `json:"label"`
		} `json:"entities"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	entities := make([]skills.Entity, 0, len(parsed.Entities))
	for _, e := range parsed.Entities {
		label := strings.ToUpper(strings.TrimSpace(e.Label))
		mention := strings.TrimSpace(e.Text)
		if mention == "" || !entityLabels[label] {
			continue
		}
		// Offsets are recovered locally; models are unreliable at counting.
		start := strings.Index(text, mention)
		entity := skills.Entity{Text: mention, Label: label}
		if start >= 0 {
			entity.Start = start
			entity.End = start + len(mention)
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func buildEntityPrompt(text string) string {
	if len(text) > maxDescriptionChars {
		text = text[:maxDescriptionChars]
	}

	var sb strings.Builder
	sb.WriteString(`Identify named entities in the text below. Only use these labels:
ORG (companies, organizations), PRODUCT (tools, platforms), LANGUAGE (human or programming languages), GPE (cities, countries), PERSON.

Return ONLY valid JSON matching this exact structure:
{"entities": [{"text": "string", "label": "ORG"}]}

Text:
"""
`)
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}
