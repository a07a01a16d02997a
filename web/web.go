// Package web holds the browser front end served at GET /.
package web

import "embed"

//go:embed index.html script.js style.css
var Assets embed.FS
