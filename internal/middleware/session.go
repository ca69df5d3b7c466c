package middleware

import (
	"context"
	"net/http"

	"github.com/itchan-dev/threadboard/internal/storage/memory"
	"github.com/itchan-dev/threadboard/shared/logger"
)

const sessionCookieName = "session_id"

type sessionContextKey struct{}

// SessionStores resolves the session cookie to its thread store, starting a
// new session when the cookie is missing or refers to an expired one.
func SessionStores(sessions *memory.Sessions, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var store *memory.ThreadStore
			if cookie, err := r.Cookie(sessionCookieName); err == nil {
				store, _ = sessions.Get(cookie.Value)
			}

			if store == nil {
				var id string
				id, store = sessions.Create()
				logger.Log.Debug("session started", "path", r.URL.Path)
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookies,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ViewSessionStores attaches the caller's store for read-only routes.
// Clients without a live session see a seeded preview and no session is created.
func ViewSessionStores(sessions *memory.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var store *memory.ThreadStore
			if cookie, err := r.Cookie(sessionCookieName); err == nil {
				store, _ = sessions.Get(cookie.Value)
			}
			if store == nil {
				store = sessions.Preview()
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetThreadStore returns the store attached by SessionStores, or nil.
func GetThreadStore(r *http.Request) *memory.ThreadStore {
	store, _ := r.Context().Value(sessionContextKey{}).(*memory.ThreadStore)
	return store
}
