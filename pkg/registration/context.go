package registration

import "context"

type attemptIDKey struct{}

// ContextWithAttemptID returns a copy of ctx carrying id. Register tags its
// log records with it instead of generating a fresh one, which lets callers
// reuse an existing request ID.
func ContextWithAttemptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptIDKey{}, id)
}

// AttemptIDFromContext returns the attempt ID stored in ctx, if any.
func AttemptIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(attemptIDKey{}).(string)
	return id, ok && id != ""
}
