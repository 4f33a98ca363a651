package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/nailaham15/nailah-s-portfolio/internal/httpx"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	// CSRFFieldName is the hidden form field carrying the token for non-htmx posts.
	CSRFFieldName = "csrf_token"
)

// CSRF issues a double-submit cookie and verifies that unsafe requests echo it
// in the X-CSRF-Token header or the csrf_token form field.
func CSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(csrfCookieName); err == nil && len(c.Value) == 32 {
				token = c.Value
			}
			if token == "" {
				token = newCSRFToken()
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(24 * time.Hour),
				})
				if !isSafeMethod(r.Method) {
					// a fresh token cannot have been echoed back
					httpx.WriteError(r.Context(), w, httpx.NewError("invalid_csrf_token", "invalid CSRF token", http.StatusForbidden))
					return
				}
			}

			if !isSafeMethod(r.Method) {
				sent := r.Header.Get(csrfHeaderName)
				if sent == "" {
					sent = r.PostFormValue(CSRFFieldName)
				}
				if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
					httpx.WriteError(r.Context(), w, httpx.NewError("invalid_csrf_token", "invalid CSRF token", http.StatusForbidden))
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxKeyCSRFToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
