package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions reads leave-decision events and materializes a
// notification row per event. Messages are committed only after the row
// is stored; malformed payloads are committed and skipped.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	service notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decision")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn("skipping malformed leave decision event",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			if commitErr := reader.CommitMessages(ctx, msg); commitErr != nil {
				log.Error("commit malformed message failed", zap.Error(commitErr))
			}
			continue
		}

		if err := service.RecordLeaveDecision(ctx, event); err != nil {
			// Left uncommitted so the event is retried on the next fetch.
			log.Error("record leave decision failed",
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}
