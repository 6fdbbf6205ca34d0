package skills

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	entities []Entity
	err      error
	called   bool
}

func (f *fakeRecognizer) ExtractEntities(ctx context.Context, text string) ([]Entity, error) {
	f.called = true
	return f.entities, f.err
}

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor(DisabledNER())

	result := extractor.Extract(context.Background(), "Senior   Backend Engineer.\nPython, Docker and REST API design. Machine learning a plus.")

	assert.True(t, result.Skills["python"])
	assert.True(t, result.Skills["docker"])
	assert.True(t, result.Skills["REST"])
	assert.True(t, result.Skills["API"])
	assert.True(t, result.Skills["Machine learning"])

	// Exact matches scored by occurrence, acronyms and compounds by default.
	assert.InDelta(t, 0.6, result.Confidence["python"], 1e-9)
	assert.InDelta(t, 0.6, result.Confidence["REST"], 1e-9)
	assert.InDelta(t, 0.7, result.Confidence["Machine learning"], 1e-9)

	assert.Nil(t, result.Entities)
}

func TestExtractor_NormalizesInput(t *testing.T) {
	extractor := NewExtractor(DisabledNER())

	// The phrase is split by a newline; normalization makes it contiguous.
	result := extractor.Extract(context.Background(), "spring\nboot experience")
	assert.True(t, result.Skills["spring boot"])
}

func TestExtractor_WithNER(t *testing.T) {
	recognizer := &fakeRecognizer{entities: []Entity{
		{Text: "Google", Label: "ORG", Start: 0, End: 6},
	}}
	extractor := NewExtractor(EnabledNER(recognizer))

	result := extractor.Extract(context.Background(), "Google is hiring")

	require.True(t, recognizer.called)
	require.Len(t, result.Entities, 1)
	assert.Equal(t, "Google", result.Entities[0].Text)
}

func TestExtractor_NERFailureDegrades(t *testing.T) {
	recognizer := &fakeRecognizer{err: errors.New("model unavailable")}
	extractor := NewExtractor(EnabledNER(recognizer))

	result := extractor.Extract(context.Background(), "python developer")

	assert.True(t, result.Skills["python"])
	assert.Nil(t, result.Entities)
}

func TestNERCapability(t *testing.T) {
	assert.False(t, DisabledNER().Enabled())
	assert.Nil(t, DisabledNER().Extract(context.Background(), "text"))

	enabled := EnabledNER(&fakeRecognizer{})
	assert.True(t, enabled.Enabled())
}
