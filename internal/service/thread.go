package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/itchan-dev/threadboard/shared/domain"
	internal_errors "github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/logger"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "threadboard_submissions_total",
			Help: "Create-post submissions by outcome",
		},
		[]string{"outcome"},
	)

	validationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "threadboard_validation_failures_total",
			Help: "Rejected create-post submissions by offending field",
		},
		[]string{"field"},
	)
)

// to mock service in tests
type ThreadService interface {
	Submit(store ThreadStorage, raw domain.PostSubmission) (domain.Thread, error)
	List(store ThreadStorage) []domain.Thread
	Recent(store ThreadStorage, n int) []domain.Thread
}

type ThreadStorage interface {
	List() []domain.Thread
	Append(data domain.ThreadCreationData) domain.Thread
}

type PostValidator interface {
	Validate(raw domain.PostSubmission) (domain.ValidatedPost, internal_errors.FieldErrors)
}

type Thread struct {
	validator PostValidator
	author    domain.Author
}

// NewThread builds the service. Every thread it creates is signed with author,
// as there is no identity system behind the form.
func NewThread(validator PostValidator, author domain.Author) *Thread {
	return &Thread{validator: validator, author: author}
}

// Submit validates raw and appends it to store.
// A rejected submission returns *errors.ValidationError and leaves store untouched.
func (s *Thread) Submit(store ThreadStorage, raw domain.PostSubmission) (domain.Thread, error) {
	post, fieldErrors := s.validator.Validate(raw)
	if len(fieldErrors) > 0 {
		submissionsTotal.WithLabelValues("rejected").Inc()
		for field := range fieldErrors {
			validationFailuresTotal.WithLabelValues(field).Inc()
		}
		logger.Log.Debug("submission rejected", "fields", fieldErrors)
		return domain.Thread{}, &internal_errors.ValidationError{Fields: fieldErrors}
	}

	thread := store.Append(domain.ThreadCreationData{
		Title:   post.Title,
		Content: post.Content,
		Author:  s.author,
	})
	submissionsTotal.WithLabelValues("created").Inc()
	logger.Log.Debug("thread created", "id", thread.Id)
	return thread, nil
}

func (s *Thread) List(store ThreadStorage) []domain.Thread {
	return store.List()
}

// Recent returns up to n threads, newest first.
func (s *Thread) Recent(store ThreadStorage, n int) []domain.Thread {
	threads := store.List()
	n = max(0, min(n, len(threads)))

	recent := make([]domain.Thread, 0, n)
	for i := len(threads) - 1; i >= len(threads)-n; i-- {
		recent = append(recent, threads[i])
	}
	return recent
}
