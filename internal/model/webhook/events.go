package webhook

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"max.ks1230/public24-bot/internal/logger"
)

type intentEvent struct {
	Intent    string `json:"intent"`
	Status    string `json:"status"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// produceEvent publishes a fulfillment record for analytics. Failures are
// logged, never surfaced to the caller.
func (s *Service) produceEvent(intent string, elapsed time.Duration, fulfillErr error) {
	if s.events == nil {
		return
	}

	status := "ok"
	if fulfillErr != nil {
		status = "error"
	}
	payload, err := json.Marshal(intentEvent{
		Intent:    intent,
		Status:    status,
		ElapsedMs: elapsed.Milliseconds(),
	})
	if err != nil {
		return
	}

	if err = s.events.ProduceMessage(payload); err != nil {
		logger.Error("failed to produce intent event", zap.Error(err))
	}
}
