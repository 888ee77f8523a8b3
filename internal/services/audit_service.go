package services

import (
	"go.uber.org/zap"

	"pocketledger/internal/events"
)

// auditLog writes every ledger event to the structured log.
type auditLog struct {
	log *zap.SugaredLogger
}

// NewAuditLog creates an events.Publisher that records each event as an
// info-level log entry. Logging never fails the operation that emitted it.
func NewAuditLog(log *zap.SugaredLogger) events.Publisher {
	return &auditLog{log: log}
}

// Publish logs event with its payload flattened into key-value pairs.
func (a *auditLog) Publish(event events.Event) {
	fields := make([]any, 0, 2+2*len(event.Data))
	fields = append(fields, "event", string(event.Type))
	for k, v := range event.Data {
		fields = append(fields, k, v)
	}
	a.log.Infow("ledger event", fields...)
}
