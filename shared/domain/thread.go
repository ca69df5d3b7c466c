package domain

import (
	"time"
)

// PostSubmission is the raw form input, before any normalization.
type PostSubmission struct {
	Title   string
	Content string
}

// ValidatedPost is a submission that passed validation.
// Title and Content are normalized and guaranteed non-empty.
type ValidatedPost struct {
	Title   ThreadTitle
	Content ThreadContent
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title   ThreadTitle
	Content ThreadContent
	Author  Author
}

type Thread struct {
	Id           ThreadId      `json:"id"`
	Title        ThreadTitle   `json:"title"`
	Content      ThreadContent `json:"content"`
	Author       Author        `json:"author"`
	CreatedAt    time.Time     `json:"created_at"`
	CommentCount int           `json:"comment_count"`
	ViewCount    int           `json:"view_count"`
}
