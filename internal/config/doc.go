// Package config defines the report configuration model and its HCL
// loader. Configuration only shapes the rendered report (title, column
// layout, interactive defaults); run-facing settings such as input paths
// stay on the command line.
//
// A missing config file at the conventional path is not an error: the
// defaults mirror what the report looks like with no file at all.
package config
