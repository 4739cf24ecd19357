package workers

import (
	"context"
	"time"

	"shadowme_backend/internal/logger"
	"shadowme_backend/internal/repositories"
)

// MaintenanceWorker runs the periodic database sweeps: closing opportunities
// whose end date has passed and dropping expired refresh tokens.
type MaintenanceWorker struct {
	opportunityRepo repositories.OpportunityRepository
	userRepo        repositories.UserRepository
	interval        time.Duration
}

func NewMaintenanceWorker(
	opportunityRepo repositories.OpportunityRepository,
	userRepo repositories.UserRepository,
	interval time.Duration,
) *MaintenanceWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &MaintenanceWorker{
		opportunityRepo: opportunityRepo,
		userRepo:        userRepo,
		interval:        interval,
	}
}

// Start launches the sweep loop until ctx is cancelled.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *MaintenanceWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("maintenance worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *MaintenanceWorker) sweep(ctx context.Context) {
	now := time.Now()

	closed, err := w.opportunityRepo.CloseExpired(ctx, now)
	if err != nil {
		logger.WorkerLog("maintenance", "close expired opportunities", err)
	} else if closed > 0 {
		logger.Info("closed expired opportunities", "count", closed)
	}

	dropped, err := w.userRepo.CleanExpiredRefreshTokens(ctx, now)
	if err != nil {
		logger.WorkerLog("maintenance", "clean expired refresh tokens", err)
	} else if dropped > 0 {
		logger.Info("cleaned expired refresh tokens", "count", dropped)
	}
}
