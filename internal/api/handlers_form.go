// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

//go:embed templates/*.html
var templatesFS embed.FS

var formTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"outcome": func(o recommend.Outcome) string { return o.String() },
}).ParseFS(templatesFS, "templates/index.html"))

// maxFormBytes bounds POST / bodies.
const maxFormBytes = 4 << 10

// formView is the data rendered into templates/index.html.
type formView struct {
	Title  string
	Result *recommend.QueryResult
	Error  string
}

// Form handles GET / and POST /.
//
// GET renders an empty form. POST reads the "title" field, runs the query
// pipeline and renders whichever outcome it produced.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.renderForm(w, http.StatusOK, formView{})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, http.StatusBadRequest, formView{Error: "Could not read the submitted form."})
		return
	}

	req := TitleQueryRequest{Query: r.PostForm.Get("title")}
	view := formView{Title: req.Query}
	if apiErr := validateRequest(&req); apiErr != nil {
		view.Error = apiErr.Message
		h.renderForm(w, http.StatusBadRequest, view)
		return
	}

	result, err := h.engine.Query(r.Context(), req.Query)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Form query failed")
		view.Error = "Something went wrong. Please try again."
		h.renderForm(w, http.StatusInternalServerError, view)
		return
	}

	view.Result = result
	h.renderForm(w, http.StatusOK, view)
}

// renderForm executes into a buffer first so a template error never leaves
// a half-written page behind a 200.
func (h *Handler) renderForm(w http.ResponseWriter, status int, view formView) {
	var buf bytes.Buffer
	if err := h.form.Execute(&buf, view); err != nil {
		logging.Error().Err(err).Msg("Failed to execute form template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Error().Err(err).Msg("Failed to write form response")
	}
}
