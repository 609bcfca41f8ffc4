package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/mcpacktools/packtable/internal/config"
	"github.com/mcpacktools/packtable/internal/report"
)

// Placeholders recognized in a page shell. They are substituted as plain
// text so user templates stay ordinary HTML files.
const (
	tablesPlaceholder = "{{TABLES}}"
	titlePlaceholder  = "{{TITLE}}"
)

var tablesTmpl = template.Must(template.New("tables").Parse(tablesTemplate))

// pageView is the data handed to the tables template.
type pageView struct {
	GroupChecked bool
	TableClass   string
	Columns      []columnView
	Packs        []packView
	ShowAllItems bool
	OpenDetails  bool
	AllItems     []string
}

type columnView struct {
	Role  string
	Label string
}

type packView struct {
	Name        string
	ID          string
	Description string
	Err         string
	Rows        []rowView
}

type rowView struct {
	Cells []string
}

// Page assembles the final HTML document: the report body is rendered
// through html/template and substituted into the shell together with the
// styling and the interactive script. The shell must contain the
// {{TABLES}} placeholder.
func Page(cfg config.Config, rep report.Report, shell string) (string, error) {
	if !strings.Contains(shell, tablesPlaceholder) {
		return "", fmt.Errorf("page template does not contain the %s placeholder", tablesPlaceholder)
	}

	var buf bytes.Buffer
	if err := tablesTmpl.Execute(&buf, buildView(cfg, rep)); err != nil {
		return "", fmt.Errorf("rendering tables: %w", err)
	}

	out := strings.ReplaceAll(shell, tablesPlaceholder, buf.String()+tableCSS+tableJS)
	out = strings.ReplaceAll(out, titlePlaceholder, html.EscapeString(rep.Title))
	return out, nil
}

func buildView(cfg config.Config, rep report.Report) pageView {
	view := pageView{
		GroupChecked: cfg.GroupByModel,
		TableClass:   cfg.TableClass,
		ShowAllItems: cfg.ShowAllItems,
		OpenDetails:  cfg.OpenAllDetails,
		AllItems:     rep.AllItems(),
	}

	for _, col := range cfg.Columns {
		label, ok := cfg.Labels[col]
		if !ok {
			label = string(col)
		}
		view.Columns = append(view.Columns, columnView{Role: string(col), Label: label})
	}

	for _, p := range rep.Packs {
		pv := packView{
			Name:        p.Name,
			ID:          "pack_" + strings.ReplaceAll(p.Name, " ", "_"),
			Description: p.Description,
		}
		if p.Err != nil {
			pv.Err = p.Err.Error()
			view.Packs = append(view.Packs, pv)
			continue
		}
		for _, row := range p.Rows {
			rv := rowView{Cells: make([]string, 0, len(cfg.Columns))}
			for _, col := range cfg.Columns {
				rv.Cells = append(rv.Cells, cellText(row, col))
			}
			pv.Rows = append(pv.Rows, rv)
		}
		view.Packs = append(view.Packs, pv)
	}

	return view
}

func cellText(row report.GroupedRow, col config.Column) string {
	switch col {
	case config.ColumnRenames:
		return row.ConditionList()
	case config.ColumnItem:
		return row.Item
	case config.ColumnModel:
		return row.Model
	}
	return ""
}
