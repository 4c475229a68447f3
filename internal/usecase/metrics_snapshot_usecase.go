package usecase

import (
	"context"
	"orders_dashboard/internal/domain/entities"
	"orders_dashboard/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSnapshotLimit = 20
	MaxSnapshotLimit     = 100
)

// ISnapshotUseCase archives computed metrics and lists past captures.

type ISnapshotUseCase interface {
	Capture(ctx context.Context) (entities.MetricsSnapshot, error)
	ListRecent(ctx context.Context, limit int) ([]entities.MetricsSnapshot, error)
}

type SnapshotUseCase struct {
	metrics IMetricsUseCase
	repo    interfaces.IMetricsSnapshotRepository
	now     func() time.Time
}

var _ ISnapshotUseCase = (*SnapshotUseCase)(nil)

func NewSnapshotUseCase(metrics IMetricsUseCase, repo interfaces.IMetricsSnapshotRepository) *SnapshotUseCase {
	return &SnapshotUseCase{metrics: metrics, repo: repo, now: time.Now}
}

// Capture computes fresh metrics and stores them. Nothing is written when the
// metrics query fails.
func (u *SnapshotUseCase) Capture(ctx context.Context) (entities.MetricsSnapshot, error) {
	if u.repo == nil {
		return entities.MetricsSnapshot{}, ErrSnapshotsNotConfigured
	}

	m, err := u.metrics.GetMetrics(ctx)
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}

	s := entities.MetricsSnapshot{
		ID:         uuid.NewString(),
		CapturedAt: u.now().UTC(),
		Metrics:    m,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}
	return created, nil
}

// ListRecent returns up to limit snapshots, newest first. A zero limit means
// DefaultSnapshotLimit.
func (u *SnapshotUseCase) ListRecent(ctx context.Context, limit int) ([]entities.MetricsSnapshot, error) {
	if u.repo == nil {
		return nil, ErrSnapshotsNotConfigured
	}
	if limit == 0 {
		limit = DefaultSnapshotLimit
	}
	if limit < 0 || limit > MaxSnapshotLimit {
		return nil, ErrInvalidSnapshotLimit
	}

	out, err := u.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.MetricsSnapshot{}
	}
	return out, nil
}
