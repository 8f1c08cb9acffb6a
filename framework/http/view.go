package http

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"path"
)

// ── View / Templates ─────────────────────────────────────────────────────────

// ViewEngine renders html/template files from a file system. Values are
// escaped for the context they land in and are otherwise echoed verbatim.
type ViewEngine struct {
	fsys fs.FS
	ext  string
}

// NewViewEngine creates a ViewEngine over fsys, usually an embed.FS.
// ext is the file extension (e.g. ".html").
func NewViewEngine(fsys fs.FS, ext string) *ViewEngine {
	return &ViewEngine{fsys: fsys, ext: ext}
}

// View renders a single template file.
//
//	engine.View(w, http.StatusOK, "home", map[string]any{"title": "Home"})
func (ve *ViewEngine) View(w http.ResponseWriter, status int, name string, data any) {
	ve.render(w, status, path.Base(name+ve.ext), data, name+ve.ext)
}

// ViewWithLayout renders name inside layout. The layout file is executed and
// is expected to call {{template "content" .}}.
func (ve *ViewEngine) ViewWithLayout(w http.ResponseWriter, status int, layout, name string, data any) {
	ve.render(w, status, path.Base(layout+ve.ext), data, layout+ve.ext, name+ve.ext)
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind the status line.
func (ve *ViewEngine) render(w http.ResponseWriter, status int, entry string, data any, files ...string) {
	tmpl, err := template.New(entry).ParseFS(ve.fsys, files...)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
