package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval       = 5 * time.Second
	poolWaitWarnDurationDelta = 50 * time.Millisecond
)

type poolMonitor struct {
	stats    func() sql.DBStats
	logger   *slog.Logger
	interval time.Duration
}

func newPoolMonitor(db *sql.DB, logger *slog.Logger) *poolMonitor {
	return &poolMonitor{
		stats:    db.Stats,
		logger:   logger,
		interval: poolMonitorInterval,
	}
}

// run logs connection waits seen since the previous tick until ctx ends.
func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			if level, attrs, ok := poolWait(prev, cur); ok {
				m.logger.LogAttrs(ctx, level, "[Postgres] Pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two snapshots. Waits worth a warning are at least
// poolWaitWarnDurationDelta in total; smaller ones are debug noise.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waits),
		slog.Duration("waitDurationDelta", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnDurationDelta {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
