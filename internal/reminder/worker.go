package reminder

import (
	"context"
	"time"

	"gymdesk/internal/email"
	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
	"gymdesk/internal/subscription"

	"github.com/google/uuid"
)

// Worker periodically finds subscriptions ending within the expiring
// window and queues one reminder email per member per day.
type Worker struct {
	subs     subscription.Repository
	email    *email.Service
	interval time.Duration
	now      func() time.Time

	lastSent map[uuid.UUID]string
}

func New(subs subscription.Repository, emailService *email.Service, interval time.Duration) *Worker {
	return &Worker{
		subs:     subs,
		email:    emailService,
		interval: interval,
		now:      time.Now,
		lastSent: make(map[uuid.UUID]string),
	}
}

func (w *Worker) Start(ctx context.Context) {
	logger.Info("Expiry reminder worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry reminder worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

func (w *Worker) RunOnce(ctx context.Context) {
	today := subscription.DateOnly(w.now())
	todayKey := today.Format("2006-01-02")

	subs, err := w.subs.ListExpiringWithin(ctx, today, subscription.ExpiringWindowDays)
	if err != nil {
		logger.Errorf("Failed to list expiring subscriptions: %v", err)
		return
	}

	for _, sub := range subs {
		if sub.MemberEmail == nil {
			continue
		}
		if w.lastSent[sub.MemberID] == todayKey {
			continue
		}

		remaining := subscription.RemainingDays(sub.EndDate, today)
		if err := w.email.SendExpiryReminder(ctx, *sub.MemberEmail, sub.MemberName, sub.PlanName, sub.EndDate, remaining); err != nil {
			logger.Errorf("Failed to queue expiry reminder for member %s: %v", sub.MemberID, err)
			continue
		}

		w.lastSent[sub.MemberID] = todayKey
		metrics.RecordExpiryReminder()
	}
}
