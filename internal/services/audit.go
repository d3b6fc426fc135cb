package services

import (
	"context"
	"log/slog"

	"github.com/ayasuda/vehicle-catalog/internal/metrics"
	"github.com/ayasuda/vehicle-catalog/internal/models"
	repo "github.com/ayasuda/vehicle-catalog/internal/repository"
	"github.com/ayasuda/vehicle-catalog/internal/worker"
)

// auditor enqueues audit rows on the worker pool. Writes are advisory: they
// never block or fail the request that triggered them.
type auditor struct {
	log repo.AuditLogs
	wp  *worker.Pool
}

func (a auditor) record(entityType, entityID, action string, details map[string]any) {
	if a.log == nil || a.wp == nil {
		return
	}
	id := entityID
	metrics.AuditQueueDepth.Inc()
	a.wp.Submit(func() {
		defer metrics.AuditQueueDepth.Dec()
		err := a.log.Create(context.Background(), models.AuditLog{
			EntityType: entityType,
			EntityID:   &id,
			Action:     action,
			Details:    details,
		})
		if err != nil {
			slog.Warn("audit write failed", "entity", entityType, "action", action, "err", err)
		}
	})
}
