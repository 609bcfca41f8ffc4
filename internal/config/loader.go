package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mcpacktools/packtable/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// fileConfig mirrors the attributes a config file may set. Pointer fields
// distinguish absent from zero-valued so defaults only fill real gaps.
type fileConfig struct {
	Title          *string           `hcl:"title,optional"`
	Columns        hcl.Expression    `hcl:"columns,optional"`
	Labels         map[string]string `hcl:"labels,optional"`
	GroupByModel   *bool             `hcl:"group_by_model,optional"`
	ShowAllItems   *bool             `hcl:"show_all_items,optional"`
	OpenAllDetails *bool             `hcl:"open_all_details,optional"`
	TableClass     *string           `hcl:"table_class,optional"`
	TemplateFile   *string           `hcl:"template_file,optional"`
}

// Load reads the config file at path and applies it over the defaults.
// A missing file yields the defaults unchanged; callers that require the
// file to exist check that before calling.
func Load(ctx context.Context, path string) (Config, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// It's not an error if the conventional config path doesn't exist.
		logger.Debug("No config file found, using defaults.", "path", path)
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if fc.Title != nil {
		cfg.Title = *fc.Title
	}
	if fc.GroupByModel != nil {
		cfg.GroupByModel = *fc.GroupByModel
	}
	if fc.ShowAllItems != nil {
		cfg.ShowAllItems = *fc.ShowAllItems
	}
	if fc.OpenAllDetails != nil {
		cfg.OpenAllDetails = *fc.OpenAllDetails
	}
	if fc.TableClass != nil {
		cfg.TableClass = *fc.TableClass
	}
	if fc.TemplateFile != nil {
		cfg.TemplateFile = *fc.TemplateFile
	}
	cols, err := decodeColumns(fc.Columns)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if cols != nil {
		cfg.Columns = cols
	}
	for key, label := range fc.Labels {
		col, err := parseColumn(key)
		if err != nil {
			return Config{}, fmt.Errorf("config file %s: labels: %w", path, err)
		}
		cfg.Labels[col] = label
	}

	logger.Debug("Report config loaded.", "path", path, "columns", len(cfg.Columns))
	return cfg, nil
}

// decodeColumns evaluates the columns attribute statically. Both a list
// of column ids and a single bare id are accepted. gohcl hands us a
// synthetic null expression when the attribute is absent, so a null value
// means "not set" and leaves the defaults in force.
func decodeColumns(expr hcl.Expression) ([]Column, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil) // Use nil context for static eval.
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating columns: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	if val.Type() == cty.String {
		col, err := parseColumn(val.AsString())
		if err != nil {
			return nil, err
		}
		return []Column{col}, nil
	}

	if !val.CanIterateElements() {
		return nil, fmt.Errorf("columns must be a list of column ids or a single id")
	}

	var cols []Column
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		if elem.Type() != cty.String {
			return nil, fmt.Errorf("columns entries must be strings")
		}
		col, err := parseColumn(elem.AsString())
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("columns must name at least one column")
	}
	return cols, nil
}

func parseColumn(id string) (Column, error) {
	switch Column(id) {
	case ColumnRenames, ColumnItem, ColumnModel:
		return Column(id), nil
	}
	return "", fmt.Errorf("unknown column %q (valid: renames, item, model)", id)
}
