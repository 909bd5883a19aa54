package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: "wisdom", expected: "wisdom"},
		{name: "uppercase", input: "Wisdom", expected: "wisdom"},
		{name: "surrounding whitespace", input: "  Leadership \n", expected: "leadership"},
		{name: "multi word", input: " Self Improvement ", expected: "self improvement"},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTagName(tt.input))
		})
	}
}

func TestQuoteTagNames(t *testing.T) {
	q := &Quote{Tags: []Tag{{Name: "life"}, {Name: "stoicism"}}}
	assert.Equal(t, []string{"life", "stoicism"}, q.TagNames())

	empty := &Quote{}
	assert.Empty(t, empty.TagNames())
}
