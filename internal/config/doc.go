// Package config loads gridnav settings.
//
// Settings are layered: built-in defaults, then a TOML or YAML file, then
// GRIDNAV_* environment variables. Later layers override earlier ones key by
// key. A Manager holds the merged result and can reload it when the file
// changes.
//
// A config file looks like:
//
//	[grid]
//	defaultColumnWidth = 100.0
//	frozenRows = 1
//
//	[viewport]
//	width = 800.0
//	height = 600.0
//
//	[script]
//	timeout = "2s"
//
// The same file may be written in YAML with identical keys.
package config
