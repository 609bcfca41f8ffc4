package pack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcpacktools/packtable/internal/ctxlog"
	"github.com/mcpacktools/packtable/internal/fsutil"
	"github.com/mcpacktools/packtable/internal/override"
	"github.com/mcpacktools/packtable/internal/resolver"
	"github.com/tidwall/gjson"
)

// metaFile is the optional self-description at the archive root.
const metaFile = "pack.mcmeta"

// Scan extracts the archive into a scoped workspace and collects every
// override rule from its assets tree. The workspace is removed before
// Scan returns, on success and failure alike. A pack without an assets
// directory scans to zero rows; only an unreadable or corrupt archive is
// an error.
func Scan(ctx context.Context, archivePath string) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	workspace, err := os.MkdirTemp("", "rp_*")
	if err != nil {
		return Result{}, fmt.Errorf("creating workspace: %w", err)
	}
	defer os.RemoveAll(workspace)

	if err := extractArchive(archivePath, workspace); err != nil {
		return Result{}, err
	}

	result := Result{Meta: readMeta(workspace)}

	assetsRoot := filepath.Join(workspace, "assets")
	if _, err := os.Stat(assetsRoot); err != nil {
		logger.Debug("Archive has no assets directory.", "archive", archivePath)
		return result, nil
	}

	files, err := fsutil.FindFilesByExtension(assetsRoot, ".json")
	if err != nil {
		return Result{}, fmt.Errorf("walking assets of %s: %w", archivePath, err)
	}

	res, err := resolver.NewCached(resolver.FS{Root: workspace}, resolver.DefaultCacheSize)
	if err != nil {
		return Result{}, err
	}

	for _, file := range files {
		item, err := fsutil.RelSlash(workspace, file)
		if err != nil {
			return Result{}, err
		}
		data, err := os.ReadFile(file)
		if err != nil || !gjson.ValidBytes(data) {
			logger.Debug("Skipping unparseable JSON file.", "archive", archivePath, "file", item)
			continue
		}
		result.Rows = append(result.Rows, override.Walk(gjson.ParseBytes(data), item, res)...)
	}

	logger.Debug("Archive scanned.",
		"archive", archivePath,
		"pack_format", result.Meta.PackFormat,
		"files", len(files),
		"rows", len(result.Rows),
	)
	return result, nil
}

// readMeta reads pack.mcmeta best-effort; any problem leaves the zero Meta.
func readMeta(workspace string) Meta {
	data, err := os.ReadFile(filepath.Join(workspace, metaFile))
	if err != nil || !gjson.ValidBytes(data) {
		return Meta{}
	}

	meta := Meta{PackFormat: gjson.GetBytes(data, "pack.pack_format").Int()}
	if desc := gjson.GetBytes(data, "pack.description"); desc.Type == gjson.String {
		meta.Description = desc.String()
	}
	return meta
}
