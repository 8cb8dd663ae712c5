package jobs

import (
	"context"
	"time"

	"onboarding-backend/internal/logger"
)

// RepairUnmaterializedRequests sweeps approved requests whose company was
// never created and finishes materializing them. Safe to run at any time
// because materialization is idempotent.
func (jr *JobRunner) RepairUnmaterializedRequests() {
	jr.runWithRecovery("RepairUnmaterializedRequests", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		repaired, err := jr.review.RepairSweep(ctx)
		if err != nil {
			logger.Error("Repair sweep failed", "error", err)
			return
		}
		if repaired > 0 {
			logger.Info("Repaired unmaterialized requests", "count", repaired)
		}
	})
}
