package jobs

import (
	"context"
	"log"
	"time"

	"komoralink.backend/internal/domain/repositories"
)

// OTPCleanupJob sweeps expired verification codes out of the journal
type OTPCleanupJob struct {
	repo     repositories.OTPRepository
	interval time.Duration
	stop     chan struct{}
}

func NewOTPCleanupJob(repo repositories.OTPRepository) *OTPCleanupJob {
	return &OTPCleanupJob{
		repo:     repo,
		interval: 10 * time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *OTPCleanupJob) Start(ctx context.Context) {
	log.Println("🕐 Starting OTP cleanup job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ OTP cleanup job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ OTP cleanup job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *OTPCleanupJob) Stop() {
	close(j.stop)
}

func (j *OTPCleanupJob) sweep(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Error sweeping expired verification codes: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("✅ Swept %d expired verification codes", deleted)
	}
}
