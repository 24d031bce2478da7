package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"net/url"

	"ewaste-tracker/internal/lifecycle"
	webembed "ewaste-tracker/web"
)

// Templates holds parsed HTML templates, one entry per page, each combined
// with the shared layout.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusLabel": lifecycle.Label,
		"deref":       func(p *int) int { return *p },
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"dashboard.html",
		"assets_list.html",
		"asset_form.html",
		"asset_detail.html",
		"donors.html",
		"recipients.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("[Templates] render %s: %v", name, err)
	}
}

// PageData is the base data passed to all templates. Flash messages travel
// as query parameters across the redirect after a form post.
type PageData struct {
	Title   string
	Error   string
	Success string
}

// NewPageData builds the base data, picking up flash messages from the
// request query.
func NewPageData(r *http.Request, title string) PageData {
	q := r.URL.Query()
	return PageData{
		Title:   title,
		Error:   q.Get("error"),
		Success: q.Get("success"),
	}
}

// redirectSuccess redirects to path with a success flash.
func redirectSuccess(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?success="+url.QueryEscape(msg), http.StatusSeeOther)
}

// redirectError redirects to path with an error flash.
func redirectError(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}
