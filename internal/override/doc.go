// Package override walks parsed item definition documents and collects
// their conditional model overrides. The 1.21.6+ schema attaches an
// override wherever an object carries both a "when" and a "model" key,
// at any nesting depth, so the walker descends the whole document rather
// than assuming a fixed layout.
package override
