package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mcpacktools/packtable/internal/config"
	"github.com/mcpacktools/packtable/internal/ctxlog"
	"github.com/mcpacktools/packtable/internal/pack"
	"github.com/mcpacktools/packtable/internal/render"
	"github.com/mcpacktools/packtable/internal/report"
)

// Run executes the full report pipeline: load the report settings, resolve
// the input archives, scan each one, and write the rendered HTML report.
// A single archive that fails to scan is reported inside the page rather
// than aborting the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	started := time.Now()

	cfg, err := config.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load report settings: %w", err)
	}

	shell, err := a.loadTemplate(cfg)
	if err != nil {
		return err
	}

	archives, err := resolveArchives(ctx, a.config.Inputs)
	if err != nil {
		return err
	}
	if len(archives) == 0 {
		return fmt.Errorf("no resourcepack archives found under: %s", strings.Join(a.config.Inputs, ", "))
	}
	a.logger.Info("🔍 Found resourcepack archives.", "count", len(archives))

	rep := report.Report{Title: cfg.Title}
	var totalRows int
	for _, archive := range archives {
		name := strings.TrimSuffix(filepath.Base(archive), ".zip")
		a.logger.Info("📦 Processing archive.", "name", name, "path", archive)

		result, err := pack.Scan(ctx, archive)
		if err != nil {
			a.logger.Error("Archive scan failed, continuing with the rest.", "name", name, "error", err)
			rep.Packs = append(rep.Packs, report.PackRows{Name: name, Err: err})
			continue
		}

		section := report.Group(name, result.Rows)
		section.Description = result.Meta.Description
		totalRows += len(section.Rows)
		rep.Packs = append(rep.Packs, section)
	}

	page, err := render.Page(cfg, rep, shell)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := os.WriteFile(a.config.OutputPath, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	a.logger.Info("✅ Report generated.",
		"output", a.config.OutputPath,
		"archives", len(archives),
		"rows", totalRows,
		"duration", time.Since(started).Round(time.Millisecond),
	)
	return nil
}

// loadTemplate returns the HTML shell to render into, preferring the file
// given on the command line, then the one named in the settings, then the
// built-in page.
func (a *App) loadTemplate(cfg config.Config) (string, error) {
	path := a.config.TemplatePath
	if path == "" {
		path = cfg.TemplateFile
	}
	if path == "" {
		return render.DefaultPage, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}
