package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject holds the verified token subject (provider user id).
	CtxKeySubject ctxKey = "subject"

	// CtxKeyEmail holds the token's email claim when present.
	CtxKeyEmail ctxKey = "email"
)

// SubjectFromContext returns the verified token subject, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(CtxKeySubject).(string)
	return sub, ok && sub != ""
}

// EmailFromContext returns the token's email claim, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(CtxKeyEmail).(string)
	return email, ok && email != ""
}
