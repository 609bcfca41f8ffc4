package config

// Column identifies one table column by role rather than by its header
// text, so relabeling a column never breaks layout or the client-side
// column toggle.
type Column string

const (
	// ColumnRenames shows the merged condition list for a row.
	ColumnRenames Column = "renames"
	// ColumnItem shows the item definition path.
	ColumnItem Column = "item"
	// ColumnModel shows the resolved model path or verbatim reference.
	ColumnModel Column = "model"
)

// Config is the resolved report configuration with every default applied.
type Config struct {
	// Title replaces the {{TITLE}} placeholder of the page template.
	Title string
	// Columns lists the table columns in render order.
	Columns []Column
	// Labels maps each column role to its header text.
	Labels map[Column]string
	// GroupByModel sets the initial state of the group-by-model toggle.
	GroupByModel bool
	// ShowAllItems controls the all-items list after the pack sections.
	ShowAllItems bool
	// OpenAllDetails renders collapsible sections expanded.
	OpenAllDetails bool
	// TableClass is the CSS class applied to every pack table.
	TableClass string
	// TemplateFile optionally names a page template to use instead of the
	// embedded one.
	TemplateFile string
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Title:          "📦 Resourcepack report",
		Columns:        []Column{ColumnRenames, ColumnItem, ColumnModel},
		Labels:         defaultLabels(),
		GroupByModel:   true,
		ShowAllItems:   true,
		OpenAllDetails: true,
		TableClass:     "default-table",
	}
}

func defaultLabels() map[Column]string {
	return map[Column]string{
		ColumnRenames: "Renames",
		ColumnItem:    "Item",
		ColumnModel:   "Model",
	}
}
