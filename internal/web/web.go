// Package web carries the embedded dashboard page. The page is a static
// shell: it fetches the JSON API and renders the KPI row and chart grid in
// the browser, so the server keeps no per-session state.
package web

import "embed"

//go:embed index.html
var content embed.FS

// IndexHTML returns the dashboard page bytes
func IndexHTML() ([]byte, error) {
	return content.ReadFile("index.html")
}
