package repository

import (
	"context"
	"time"

	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository queues outbound jobs in the same transaction as the
// write that triggers them; a separate worker drains the table.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
		VALUES ($1, $2, $3, $4, 'pending', $5)`,
		uuid.New(), kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err, infra.ClassifyPgErr(err))
	}
	return nil
}
