// Package report shapes extracted override rows into the document model
// the renderer consumes. Rows are grouped by (item, resolved model) so
// that every condition selecting the same model lands in one table row,
// regardless of how many separate rules produced it.
package report
