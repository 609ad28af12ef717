package sessionkit

import "context"

type navigationPathContextKey struct{}

// WithNavigationPath attaches the path the user is currently on to ctx.
// Notifications emitted by flows running under that context carry it as
// metadata, so the UI can anchor an error to the page that triggered it.
// The guard middleware sets this automatically for guarded requests.
func WithNavigationPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, navigationPathContextKey{}, path)
}

func navigationPathFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	path, _ := ctx.Value(navigationPathContextKey{}).(string)
	return path
}
