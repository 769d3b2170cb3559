// Package web embeds the advisor's HTML templates and static assets.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed public
var Public embed.FS
