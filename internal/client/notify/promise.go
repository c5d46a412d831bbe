package notify

import "context"

// PromiseMessages configures Track. A nil Error uses the error's own text.
type PromiseMessages struct {
	Loading string
	Success string
	Error   func(err error) string
}

// Track shows a loading notification while fn runs and replaces it with a
// success or error notification when fn returns.
func Track[T any](ctx context.Context, n *Notifier, msgs PromiseMessages, fn func(ctx context.Context) (T, error)) (T, error) {
	id := n.Loading(msgs.Loading)

	v, err := fn(ctx)
	if err != nil {
		msg := err.Error()
		if msgs.Error != nil {
			msg = msgs.Error(err)
		}
		n.Error(msg, WithID(id))
		return v, err
	}

	n.Success(msgs.Success, WithID(id))
	return v, nil
}
