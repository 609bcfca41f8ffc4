package pack

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mcpacktools/packtable/internal/override"
	"github.com/mcpacktools/packtable/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_resolvesOverrideToModelFile(t *testing.T) {
	archive := testutil.BuildPackZip(t, map[string]string{
		"assets/minecraft/items/foo.json": `{
			"overrides": [
				{"when": "custom_model_data=1", "model": {"model": "minecraft:item/foo_variant"}}
			]
		}`,
		"assets/minecraft/models/item/foo_variant.json": `{}`,
	})

	result, err := Scan(context.Background(), archive)
	require.NoError(t, err)

	expected := []override.RawRow{
		{
			Item:   "assets/minecraft/items/foo.json",
			Whens:  []string{"custom_model_data=1"},
			Models: []string{"assets/minecraft/models/item/foo_variant.json"},
		},
	}
	if diff := cmp.Diff(expected, result.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_noAssetsDirectory(t *testing.T) {
	archive := testutil.BuildPackZip(t, map[string]string{
		"pack.mcmeta": `{"pack":{"pack_format":34}}`,
	})

	result, err := Scan(context.Background(), archive)

	require.NoError(t, err, "a pack without assets is empty, not broken")
	assert.Empty(t, result.Rows)
}

func TestScan_skipsMalformedJSON(t *testing.T) {
	archive := testutil.BuildPackZip(t, map[string]string{
		"assets/minecraft/items/a_broken.json": `{"overrides": [`,
		"assets/minecraft/items/b_good.json":   `{"when": "renamed", "model": "minecraft:item/good"}`,
	})

	result, err := Scan(context.Background(), archive)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "assets/minecraft/items/b_good.json", result.Rows[0].Item)
}

func TestScan_unresolvedReferenceKeptVerbatim(t *testing.T) {
	archive := testutil.BuildPackZip(t, map[string]string{
		"assets/minecraft/items/bow.json": `{"when": "x", "model": "custompack:item/ghost"}`,
	})

	result, err := Scan(context.Background(), archive)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"custompack:item/ghost"}, result.Rows[0].Models)
}

func TestScan_corruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := Scan(context.Background(), path)
	require.Error(t, err)
}

func TestScan_missingArchive(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "absent.zip"))
	require.Error(t, err)
}

func TestScan_readsPackMeta(t *testing.T) {
	archive := testutil.BuildPackZip(t, map[string]string{
		"pack.mcmeta": `{"pack":{"pack_format":34,"description":"Fancy models"}}`,
	})

	result, err := Scan(context.Background(), archive)
	require.NoError(t, err)

	assert.Equal(t, Meta{Description: "Fancy models", PackFormat: 34}, result.Meta)
}

func TestScan_malformedMetaIgnored(t *testing.T) {
	archive := testutil.BuildPackZip(t, map[string]string{
		"pack.mcmeta":                     `{"pack":`,
		"assets/minecraft/items/bow.json": `{"when": "x", "model": "m"}`,
	})

	result, err := Scan(context.Background(), archive)

	require.NoError(t, err)
	assert.Equal(t, Meta{}, result.Meta)
	assert.Len(t, result.Rows, 1)
}
