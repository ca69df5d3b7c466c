package handler

import (
	"bytes"
	"fmt"
	"net/http"

	mw "github.com/itchan-dev/threadboard/internal/middleware"
	"github.com/itchan-dev/threadboard/internal/view"
	"github.com/itchan-dev/threadboard/shared/logger"
)

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := view.TemplateData{
		Data: data,
		Common: view.CommonTemplateData{
			CSRFToken: mw.GetCSRFTokenFromContext(r),
		},
	}

	// Render to a buffer first so a template error never produces half a page
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
