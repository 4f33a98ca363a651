package contact

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/requestctx"
)

// LogNotifier writes accepted submissions to the request logger. The message
// body is not logged, only its length.
type LogNotifier struct {
	// Logger overrides the request-scoped logger when set.
	Logger *zap.Logger
}

func (n LogNotifier) Notify(ctx context.Context, sub Submission) error {
	logger := n.Logger
	if logger == nil {
		logger = requestctx.Logger(ctx)
	}
	logger.Info("contact submission received",
		zap.String("reference", sub.Reference),
		zap.String("name", sub.Form.Name),
		zap.String("email", sub.Form.Email),
		zap.Int("messageLength", utf8.RuneCountInString(sub.Form.Message)),
		zap.Time("receivedAt", sub.ReceivedAt),
	)
	return nil
}

func shortMessage(n int) string {
	return fmt.Sprintf(msgShortMessage, n)
}
