package api

import (
	"github.com/itchan-dev/threadboard/shared/domain"
)

// Request DTOs

// CreateThreadRequest is decoded from both the HTML form and the JSON body.
// Fields are checked by the post validator after normalization, not on decode.
type CreateThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r CreateThreadRequest) Submission() domain.PostSubmission {
	return domain.PostSubmission{Title: r.Title, Content: r.Content}
}

// Response DTOs

type ThreadResponse struct {
	domain.Thread
}

type ThreadListResponse struct {
	Threads []domain.Thread `json:"threads"`
}

// ValidationErrorResponse maps a field name to its message
type ValidationErrorResponse struct {
	Errors map[domain.FieldName]string `json:"errors"`
}
