package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"komoralink.backend/internal/domain/entities"
)

type otpCleanupRepoStub struct {
	deleted    int64
	deleteErr  error
	sweepCalls int
	lastBefore time.Time
}

func (s *otpCleanupRepoStub) Create(context.Context, *entities.OTPCode) error { return nil }

func (s *otpCleanupRepoStub) GetLatestActive(context.Context, string, time.Time) (*entities.OTPCode, error) {
	return nil, errors.New("not implemented")
}

func (s *otpCleanupRepoStub) MarkConsumed(context.Context, uuid.UUID) error { return nil }

func (s *otpCleanupRepoStub) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.sweepCalls++
	s.lastBefore = before
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	return s.deleted, nil
}

func TestSweep_DeletesExpiredCodes(t *testing.T) {
	repo := &otpCleanupRepoStub{deleted: 3}
	job := &OTPCleanupJob{repo: repo, interval: time.Millisecond, stop: make(chan struct{})}

	job.sweep(context.Background())
	require.Equal(t, 1, repo.sweepCalls)
	require.WithinDuration(t, time.Now(), repo.lastBefore, time.Second)
}

func TestSweep_DeleteError(t *testing.T) {
	repo := &otpCleanupRepoStub{deleteErr: errors.New("db down")}
	job := &OTPCleanupJob{repo: repo, interval: time.Millisecond, stop: make(chan struct{})}

	job.sweep(context.Background())
	require.Equal(t, 1, repo.sweepCalls)
}

func TestStartStop_StopsByContext(t *testing.T) {
	repo := &otpCleanupRepoStub{}
	job := &OTPCleanupJob{repo: repo, interval: time.Millisecond, stop: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	repo := &otpCleanupRepoStub{}
	job := &OTPCleanupJob{repo: repo, interval: time.Millisecond, stop: make(chan struct{})}

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
