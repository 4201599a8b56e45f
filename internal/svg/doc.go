// Package svg validates SVG documents and rasterizes them into square images.
//
// Parsing and drawing are delegated to github.com/srwiley/oksvg and
// github.com/srwiley/rasterx. A Document holds the raw bytes and the parsed
// icon so one thumbnail can be rendered at many sizes without re-reading it.
package svg
