package handler

import (
	"html/template"
	"net/http"

	"github.com/itchan-dev/threadboard/internal/service"
	"github.com/itchan-dev/threadboard/shared/config"
)

type Handler struct {
	Templates map[string]*template.Template
	Public    config.Public
	Thread    service.ThreadService
}

func New(templates map[string]*template.Template, publicCfg config.Public, thread service.ThreadService) *Handler {
	return &Handler{
		Templates: templates,
		Public:    publicCfg,
		Thread:    thread,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
