package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vitae/internal/delivery/context"
	"vitae/internal/domain/entity"
	"vitae/internal/domain/service"

	"github.com/google/uuid"
)

// publishAccountEvent sends an event after the change it describes has been committed.
// Publishing is best-effort: a failure is logged and never undoes the change.
func publishAccountEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, user *entity.User, eventType entity.AccountEventType, fields ...string) {
	if publisher == nil {
		return
	}

	event := &entity.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     user.ID,
		Username:   user.Username,
		Fields:     fields,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishAccountEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.String("username", user.Username),
			slog.Any("error", err),
		)
	}
}
