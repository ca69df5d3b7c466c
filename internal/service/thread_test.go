package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/threadboard/internal/storage/memory"
	"github.com/itchan-dev/threadboard/shared/domain"
	internal_errors "github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/validation"
)

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	threads      []domain.Thread
	appendCalled bool
	appendArg    domain.ThreadCreationData
}

func (m *MockThreadStorage) List() []domain.Thread {
	return m.threads
}

func (m *MockThreadStorage) Append(data domain.ThreadCreationData) domain.Thread {
	m.appendCalled = true
	m.appendArg = data
	thread := domain.Thread{Id: domain.ThreadId(len(m.threads) + 1), Title: data.Title, Content: data.Content, Author: data.Author}
	m.threads = append(m.threads, thread)
	return thread
}

// MockPostValidator mocks the PostValidator interface.
type MockPostValidator struct {
	validateFunc func(raw domain.PostSubmission) (domain.ValidatedPost, internal_errors.FieldErrors)
}

func (m *MockPostValidator) Validate(raw domain.PostSubmission) (domain.ValidatedPost, internal_errors.FieldErrors) {
	if m.validateFunc != nil {
		return m.validateFunc(raw)
	}
	return domain.ValidatedPost{Title: raw.Title, Content: raw.Content}, nil // Default valid
}

// --- Tests ---

func TestThreadSubmit(t *testing.T) {
	t.Run("valid submission is appended with placeholder author", func(t *testing.T) {
		storage := &MockThreadStorage{}
		validator := &MockPostValidator{
			validateFunc: func(raw domain.PostSubmission) (domain.ValidatedPost, internal_errors.FieldErrors) {
				assert.Equal(t, "  Hello ", raw.Title)
				return domain.ValidatedPost{Title: "Hello", Content: "World"}, nil
			},
		}
		service := NewThread(validator, "Anonymous")

		thread, err := service.Submit(storage, domain.PostSubmission{Title: "  Hello ", Content: "World"})

		require.NoError(t, err)
		assert.True(t, storage.appendCalled)
		assert.Equal(t, domain.ThreadCreationData{Title: "Hello", Content: "World", Author: "Anonymous"}, storage.appendArg)
		assert.Equal(t, domain.ThreadId(1), thread.Id)
	})

	t.Run("rejected submission never reaches storage", func(t *testing.T) {
		storage := &MockThreadStorage{}
		fieldErrors := internal_errors.FieldErrors{"title": "Title is required"}
		validator := &MockPostValidator{
			validateFunc: func(raw domain.PostSubmission) (domain.ValidatedPost, internal_errors.FieldErrors) {
				return domain.ValidatedPost{}, fieldErrors
			},
		}
		service := NewThread(validator, "Anonymous")

		_, err := service.Submit(storage, domain.PostSubmission{Content: "World"})

		require.Error(t, err)
		var validationErr *internal_errors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, fieldErrors, validationErr.Fields)
		assert.False(t, storage.appendCalled, "Append should not be called")
	})
}

// End-to-end over the real validator and store.
func TestThreadSubmitScenarios(t *testing.T) {
	newStore := func() *memory.ThreadStore {
		now := func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
		return memory.NewThreadStore(now,
			domain.Thread{Title: "Thread Title 1", Content: "first", Author: "Author1", CommentCount: 10, ViewCount: 100},
			domain.Thread{Title: "Thread Title 2", Content: "second", Author: "Author2", CommentCount: 20, ViewCount: 200},
		)
	}
	service := NewThread(validation.NewPostValidator(), "Anonymous")

	t.Run("valid submission becomes thread 3", func(t *testing.T) {
		store := newStore()

		thread, err := service.Submit(store, domain.PostSubmission{Title: "Hello", Content: "World"})

		require.NoError(t, err)
		assert.Equal(t, domain.ThreadId(3), thread.Id)
		assert.Equal(t, "Hello", thread.Title)
		assert.Equal(t, "World", thread.Content)
		assert.Equal(t, 0, thread.CommentCount)
		assert.Equal(t, 0, thread.ViewCount)

		threads := service.List(store)
		require.Len(t, threads, 3)
		assert.Equal(t, domain.ThreadId(3), threads[2].Id)
	})

	t.Run("empty title leaves list unchanged", func(t *testing.T) {
		store := newStore()

		_, err := service.Submit(store, domain.PostSubmission{Title: "", Content: "World"})

		var validationErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, internal_errors.FieldErrors{"title": "Title is required"}, validationErr.Fields)
		assert.Len(t, service.List(store), 2)
	})

	t.Run("whitespace fields report both errors", func(t *testing.T) {
		store := newStore()

		_, err := service.Submit(store, domain.PostSubmission{Title: "  ", Content: "  "})

		var validationErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, internal_errors.FieldErrors{
			"title":   "Title is required",
			"content": "Content is required",
		}, validationErr.Fields)
		assert.Len(t, service.List(store), 2)
	})
}

func TestThreadRecent(t *testing.T) {
	storage := &MockThreadStorage{}
	for _, title := range []string{"a", "b", "c"} {
		storage.Append(domain.ThreadCreationData{Title: title})
	}
	service := NewThread(&MockPostValidator{}, "Anonymous")

	titles := func(threads []domain.Thread) []string {
		out := make([]string, 0, len(threads))
		for _, t := range threads {
			out = append(out, t.Title)
		}
		return out
	}

	assert.Equal(t, []string{"c", "b"}, titles(service.Recent(storage, 2)))
	assert.Equal(t, []string{"c", "b", "a"}, titles(service.Recent(storage, 10)))
	assert.Empty(t, service.Recent(storage, 0))
	assert.Empty(t, service.Recent(storage, -1))
}
