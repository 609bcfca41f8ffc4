// Package render turns a report into a single self-contained HTML
// document: per-pack tables with a filter box, sortable and draggable
// columns, and a grouping toggle, followed by a collapsible list of all
// items seen. The page shell around the report body is replaceable via
// configuration.
package render
