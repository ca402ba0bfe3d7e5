package core

import "context"

// Notifier delivers out-of-band messages to users
type Notifier interface {
	SendVerification(ctx context.Context, email, username, token string) error
}
