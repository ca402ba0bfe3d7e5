package notifier

import (
	"context"
	"net/url"

	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// LogNotifier writes verification links to the log instead of sending email
type LogNotifier struct {
	baseURL string
	logger  coreport.Logger
}

// NewLogNotifier creates a notifier. baseURL is the public address of the API.
func NewLogNotifier(baseURL string, logger coreport.Logger) *LogNotifier {
	return &LogNotifier{
		baseURL: baseURL,
		logger:  logger.With(map[string]any{"component": "notifier"}),
	}
}

// SendVerification logs the link the user would receive
func (n *LogNotifier) SendVerification(ctx context.Context, email, username, token string) error {
	link := n.baseURL + "/api/auth/verify-email?token=" + url.QueryEscape(token)

	fields := map[string]any{
		"email":    email,
		"username": username,
		"link":     link,
	}
	if requestID := coreport.RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	n.logger.Info("Verification email", fields)
	return nil
}
