package pulseauth

import "context"

type clientLabelContextKey struct{}

// WithClientLabel attaches a caller-chosen client identity to ctx, carried
// into audit events. Two browser tabs sharing one storage diverge until each
// restores; labeling them makes the audit trail attributable.
func WithClientLabel(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, clientLabelContextKey{}, label)
}

func clientLabelFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	label, _ := ctx.Value(clientLabelContextKey{}).(string)
	return label
}
