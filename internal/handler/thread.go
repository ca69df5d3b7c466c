package handler

import (
	"errors"
	"net/http"

	mw "github.com/itchan-dev/threadboard/internal/middleware"
	"github.com/itchan-dev/threadboard/shared/api"
	internal_errors "github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/utils"
)

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	store := mw.GetThreadStore(r)
	if store == nil {
		utils.WriteErrorAndStatusCode(w, errors.New("no thread store in request context"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ThreadListResponse{Threads: h.Thread.List(store)})
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	store := mw.GetThreadStore(r)
	if store == nil {
		utils.WriteErrorAndStatusCode(w, errors.New("no thread store in request context"))
		return
	}

	var body api.CreateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.Thread.Submit(store, body.Submission())
	if err != nil {
		var validationErr *internal_errors.ValidationError
		if errors.As(err, &validationErr) {
			utils.WriteJSON(w, http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: validationErr.Fields})
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.ThreadResponse{Thread: thread})
}
