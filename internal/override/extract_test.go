package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestCollectRefs(t *testing.T) {
	testCases := []struct {
		name     string
		json     string
		expected []string
	}{
		{
			name:     "direct string",
			json:     `"minecraft:item/bow"`,
			expected: []string{"minecraft:item/bow"},
		},
		{
			name:     "object with model field",
			json:     `{"model": "minecraft:item/bow"}`,
			expected: []string{"minecraft:item/bow"},
		},
		{
			name:     "empty model field ignored",
			json:     `{"model": ""}`,
			expected: nil,
		},
		{
			name:     "composite models flattened recursively",
			json:     `{"models": [{"model": "a"}, "b", {"models": [{"model": "c"}]}]}`,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "type field becomes a marker",
			json:     `{"type": "minecraft:player_head"}`,
			expected: []string{"[type:minecraft:player_head]"},
		},
		{
			name:     "model then composites then marker",
			json:     `{"type": "t", "models": ["m2"], "model": "m1"}`,
			expected: []string{"m1", "m2", "[type:t]"},
		},
		{
			name:     "number carries no references",
			json:     `42`,
			expected: nil,
		},
		{
			name:     "array carries no references",
			json:     `["minecraft:item/bow"]`,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, collectRefs(gjson.Parse(tc.json)))
		})
	}
}

func TestConditionValues(t *testing.T) {
	testCases := []struct {
		name     string
		json     string
		expected []string
	}{
		{
			name:     "array sorted and deduplicated",
			json:     `["b", "a", "b"]`,
			expected: []string{"a", "b"},
		},
		{
			name:     "blanks dropped",
			json:     `["a", "  ", ""]`,
			expected: []string{"a"},
		},
		{
			name:     "entries trimmed",
			json:     `["  rename me  "]`,
			expected: []string{"rename me"},
		},
		{
			name:     "scalar string",
			json:     `"rename"`,
			expected: []string{"rename"},
		},
		{
			name:     "numbers keep their source text",
			json:     `[1.50, 2]`,
			expected: []string{"1.50", "2"},
		},
		{
			name:     "booleans render as json",
			json:     `true`,
			expected: []string{"true"},
		},
		{
			name:     "null dropped",
			json:     `null`,
			expected: nil,
		},
		{
			name:     "null inside array dropped",
			json:     `["a", null]`,
			expected: []string{"a"},
		},
		{
			name:     "empty array",
			json:     `[]`,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, conditionValues(gjson.Parse(tc.json)))
		})
	}
}
