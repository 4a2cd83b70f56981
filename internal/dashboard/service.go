package dashboard

import (
	"context"
	"time"

	"gymdesk/internal/subscription"
)

const (
	revenueSeriesDays   = 7
	recentActivityLimit = 5
)

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	Revenue(ctx context.Context) ([]RevenuePoint, error)
	RecentActivity(ctx context.Context) ([]Activity, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	today := subscription.DateOnly(s.now())

	activeMembers, err := s.repo.CountActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	expiringSoon, err := s.repo.CountExpiringSubscriptions(ctx, today, today.AddDate(0, 0, subscription.ExpiringWindowDays))
	if err != nil {
		return nil, err
	}

	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthlyRevenue, err := s.repo.SumPaymentsSince(ctx, firstOfMonth)
	if err != nil {
		return nil, err
	}

	return &Stats{
		ActiveMembers:  activeMembers,
		ExpiringSoon:   expiringSoon,
		MonthlyRevenue: monthlyRevenue,
	}, nil
}

// Revenue buckets payments by exact date over the trailing seven
// calendar days, today inclusive. Days without payments stay at zero.
func (s *service) Revenue(ctx context.Context) ([]RevenuePoint, error) {
	today := subscription.DateOnly(s.now())
	start := today.AddDate(0, 0, -(revenueSeriesDays - 1))

	series := make([]RevenuePoint, 0, revenueSeriesDays)
	index := make(map[string]int, revenueSeriesDays)
	for i := 0; i < revenueSeriesDays; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		index[key] = len(series)
		series = append(series, RevenuePoint{
			Name: day.Format("Mon"),
			Date: key,
		})
	}

	payments, err := s.repo.PaymentsSince(ctx, start)
	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		if i, ok := index[p.Date.Format("2006-01-02")]; ok {
			series[i].Revenue += p.Amount
		}
	}

	return series, nil
}

func (s *service) RecentActivity(ctx context.Context) ([]Activity, error) {
	return s.repo.RecentCheckIns(ctx, recentActivityLimit)
}
