package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyHTMX      ctxKey = "htmx"
	ctxKeyLang      ctxKey = "lang"
	ctxKeyCSRFToken ctxKey = "csrf_token"
)

// WithLang stores the resolved language.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}

// LangFromContext returns the resolved language or fallback.
func LangFromContext(ctx context.Context, fallback string) string {
	if v, ok := ctx.Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	return fallback
}

// CSRFToken returns the token issued for this request, for hidden form fields.
func CSRFToken(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyCSRFToken).(string)
	return v
}
