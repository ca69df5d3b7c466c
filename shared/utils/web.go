package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *errors.ErrorWithStatusCode
	if stderrors.As(err, &e) {
		http.Error(w, e.Error(), e.StatusCode)
		return
	}
	// default error is 500
	logger.Log.Error("unhandled error", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// Decode reads a single JSON object into body; unknown fields are rejected.
func Decode(r io.ReadCloser, body any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(body); err != nil {
		logger.Log.Debug("decoding request body", "error", err)
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return &errors.ErrorWithStatusCode{Message: "Body is too large", StatusCode: http.StatusRequestEntityTooLarge}
		}
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("encoding response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
