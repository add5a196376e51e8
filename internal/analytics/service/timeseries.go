package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopsight/shopsight/internal/analytics/domain"
)

const defaultWindowDays = 30

var windowDays = map[string]int{
	"7d":   7,
	"30d":  30,
	"90d":  90,
	"365d": 365,
}

// SalesTimeSeries buckets sale events into calendar days over the requested
// lookback window. Days without events are omitted; buckets are returned in
// chronological order.
func (s *Service) SalesTimeSeries(ctx context.Context, req domain.TimeSeriesRequest) ([]domain.TimeSeriesPoint, error) {
	days, ok := windowDays[strings.TrimSpace(req.Period)]
	if !ok {
		days = defaultWindowDays
	}

	now := s.clock.Now().UTC()
	from := now.AddDate(0, 0, -days)

	events, err := s.sales.ListBetween(ctx, s.db, from, now)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]decimal.Decimal)
	for _, ev := range events {
		key := ev.OccurredAt.UTC().Format(time.DateOnly)
		buckets[key] = buckets[key].Add(ev.Amount)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]domain.TimeSeriesPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, domain.TimeSeriesPoint{
			Date:  key,
			Value: buckets[key].InexactFloat64(),
		})
	}
	return points, nil
}
