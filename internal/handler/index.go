package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	mw "github.com/itchan-dev/threadboard/internal/middleware"
	"github.com/itchan-dev/threadboard/internal/service"
	"github.com/itchan-dev/threadboard/internal/view"
	"github.com/itchan-dev/threadboard/shared/api"
	"github.com/itchan-dev/threadboard/shared/domain"
	internal_errors "github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/utils"
)

func (h *Handler) indexPageData(store service.ThreadStorage) view.IndexPageData {
	return view.IndexPageData{
		Threads:    h.Thread.List(store),
		Recent:     h.Thread.Recent(store, h.Public.Forum.RecentPostsLimit),
		Categories: h.Public.Forum.Categories,
	}
}

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	store := mw.GetThreadStore(r)
	if store == nil {
		utils.WriteErrorAndStatusCode(w, errors.New("no thread store in request context"))
		return
	}

	data := h.indexPageData(store)
	if created, err := strconv.ParseInt(r.URL.Query().Get("created"), 10, 64); err == nil {
		data.CreatedId = domain.ThreadId(created)
	}

	h.renderTemplate(w, r, "index.html", http.StatusOK, data)
}

// IndexPostHandler handles the create-post form. A rejected submission re-renders
// the page with inline messages and the submitted values; the store is untouched.
func (h *Handler) IndexPostHandler(w http.ResponseWriter, r *http.Request) {
	store := mw.GetThreadStore(r)
	if store == nil {
		utils.WriteErrorAndStatusCode(w, errors.New("no thread store in request context"))
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "Invalid form data", StatusCode: http.StatusBadRequest})
		return
	}

	req := api.CreateThreadRequest{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	thread, err := h.Thread.Submit(store, req.Submission())
	if err != nil {
		var validationErr *internal_errors.ValidationError
		if !errors.As(err, &validationErr) {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}

		data := h.indexPageData(store)
		data.Form = view.PostForm{Title: req.Title, Content: req.Content, Errors: validationErr.Fields}
		h.renderTemplate(w, r, "index.html", http.StatusUnprocessableEntity, data)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/?created=%d#thread-%d", thread.Id, thread.Id), http.StatusSeeOther)
}
