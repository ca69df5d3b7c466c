package view

import "github.com/itchan-dev/threadboard/shared/domain"

// PostForm is the create-post form as last submitted.
// Errors maps a field name to the message shown under that field.
type PostForm struct {
	Title   string
	Content string
	Errors  map[string]string
}

type IndexPageData struct {
	Threads    []domain.Thread
	Recent     []domain.Thread
	Categories []string
	Form       PostForm
	CreatedId  domain.ThreadId // highlighted after a successful submission, 0 for none
}
