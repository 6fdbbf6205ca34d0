package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequirements(t *testing.T) {
	description := `Senior Backend Engineer

Requirements:
- 5+ years of Python experience
- Solid PostgreSQL knowledge
* Docker and Kubernetes in production

Benefits:
- Free snacks
`

	requirements := ExtractRequirements(description)

	require.Len(t, requirements, 3)
	assert.Equal(t, "5+ years of Python experience", requirements[0])
	assert.Equal(t, "Solid PostgreSQL knowledge", requirements[1])
	assert.Equal(t, "Docker and Kubernetes in production", requirements[2])
}

func TestExtractRequirements_SpanishHeading(t *testing.T) {
	description := `Desarrollador Backend

Requisitos:
- Experiencia con Python
- Conocimientos de Docker
`

	requirements := ExtractRequirements(description)

	require.Len(t, requirements, 2)
	assert.Equal(t, "Experiencia con Python", requirements[0])
}

func TestExtractRequirements_NumberedItems(t *testing.T) {
	description := `Qualifications:
1. Degree in computer science
2. Experience with distributed systems
`

	requirements := ExtractRequirements(description)

	require.Len(t, requirements, 2)
	assert.Equal(t, "Degree in computer science", requirements[0])
	assert.Equal(t, "Experience with distributed systems", requirements[1])
}

func TestExtractRequirements_ShortItemsDropped(t *testing.T) {
	description := `Requirements:
- Git
- Comfortable with code reviews
`

	requirements := ExtractRequirements(description)

	require.Len(t, requirements, 1)
	assert.Equal(t, "Comfortable with code reviews", requirements[0])
}

func TestExtractRequirements_CappedAtTen(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Requirements:\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "- Requirement item number %d\n", i)
	}

	requirements := ExtractRequirements(sb.String())
	assert.Len(t, requirements, 10)
}

func TestExtractRequirements_NoSection(t *testing.T) {
	assert.Empty(t, ExtractRequirements("We are a fun team looking for an engineer."))
	assert.Empty(t, ExtractRequirements(""))
}
