package resolver

import (
	"testing"

	"github.com/mcpacktools/packtable/internal/modelref"
	"github.com/mcpacktools/packtable/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFS_Resolve_namespaced(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string
		ref      string
		expected []string
	}{
		{
			name:     "exact path under models",
			files:    map[string]string{"assets/minecraft/models/item/bow.json": "{}"},
			ref:      "minecraft:item/bow",
			expected: []string{"assets/minecraft/models/item/bow.json"},
		},
		{
			name:     "bare name falls through to models/item",
			files:    map[string]string{"assets/minecraft/models/item/totem.json": "{}"},
			ref:      "minecraft:totem",
			expected: []string{"assets/minecraft/models/item/totem.json"},
		},
		{
			name: "both probe locations hit",
			files: map[string]string{
				"assets/minecraft/models/totem.json":      "{}",
				"assets/minecraft/models/item/totem.json": "{}",
			},
			ref: "minecraft:totem",
			expected: []string{
				"assets/minecraft/models/totem.json",
				"assets/minecraft/models/item/totem.json",
			},
		},
		{
			name:     "block prefix skips the item probe",
			files:    map[string]string{"assets/minecraft/models/item/block/stone.json": "{}"},
			ref:      "minecraft:block/stone",
			expected: nil,
		},
		{
			name:     "block prefix resolves in place",
			files:    map[string]string{"assets/minecraft/models/block/stone.json": "{}"},
			ref:      "minecraft:block/stone",
			expected: []string{"assets/minecraft/models/block/stone.json"},
		},
		{
			name:     "missing file yields no candidates",
			files:    map[string]string{"assets/minecraft/models/item/bow.json": "{}"},
			ref:      "minecraft:item/crossbow",
			expected: nil,
		},
		{
			name:     "unknown namespace yields no candidates",
			files:    map[string]string{"assets/minecraft/models/item/bow.json": "{}"},
			ref:      "custom:item/bow",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteTree(t, tc.files)
			got := FS{Root: root}.Resolve(modelref.Parse(tc.ref))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFS_Resolve_search(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"assets/custom/extra/models/deep/bow.json": "{}",
		"assets/custom/models/bow.json":            "{}",
		"assets/minecraft/models/item/bow.json":    "{}",
		"assets/minecraft/items/bow.json":          "{}",
		"assets/minecraft/textures/item/bow.png":   "",
	})

	got := FS{Root: root}.Resolve(modelref.Parse("bow"))

	// Only files under a models directory count; assets/minecraft/items is
	// an item definition, not a model.
	assert.ElementsMatch(t, []string{
		"assets/custom/extra/models/deep/bow.json",
		"assets/custom/models/bow.json",
		"assets/minecraft/models/item/bow.json",
	}, got)
}

func TestFS_Resolve_marker(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{})

	got := FS{Root: root}.Resolve(modelref.NewMarkerRef("[type:minecraft:select]"))

	assert.Equal(t, []string{"[type:minecraft:select]"}, got)
}

func TestFS_Resolve_emptyRef(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"assets/minecraft/models/item/bow.json": "{}",
	})

	assert.Empty(t, FS{Root: root}.Resolve(modelref.Ref{}))
}
