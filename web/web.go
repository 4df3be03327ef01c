package web

import "embed"

// Templates holds the HTML templates, layouts first then pages
//
//go:embed templates
var Templates embed.FS
