package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leadtrack-backend/internal/models"
	"leadtrack-backend/internal/repositories"
	"leadtrack-backend/internal/timeutil"
)

// DashboardRepo is the aggregation surface the dashboard service consumes.
type DashboardRepo interface {
	TotalCount(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	SumPaymentRequired(ctx context.Context) (float64, error)
	SumPaid(ctx context.Context) (float64, error)
	SumRemaining(ctx context.Context) (float64, error)
	DailyCounts(ctx context.Context, from, to time.Time) (map[string]int64, error)
	StatusCounts(ctx context.Context) ([]repositories.BucketCount, error)
	SourceCounts(ctx context.Context) ([]repositories.BucketCount, error)
}

// DashboardService computes the fixed menu of dashboard reports. Every call
// recomputes date boundaries, so long-running processes never serve stale
// midnight windows.
type DashboardService struct {
	Repo DashboardRepo

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewDashboardService(repo DashboardRepo) *DashboardService {
	return &DashboardService{Repo: repo, now: time.Now}
}

func (s *DashboardService) TotalCount(ctx context.Context) (int64, error) {
	return s.Repo.TotalCount(ctx)
}

// ConversionRatio returns won/total as a percentage formatted to two decimal
// places, "0.00" when there are no leads at all.
func (s *DashboardService) ConversionRatio(ctx context.Context) (string, error) {
	total, err := s.Repo.TotalCount(ctx)
	if err != nil {
		return "", err
	}
	if total == 0 {
		return "0.00", nil
	}
	won, err := s.Repo.CountByStatus(ctx, "won")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", float64(won)/float64(total)*100), nil
}

func (s *DashboardService) TodaysLeads(ctx context.Context) (int64, error) {
	now := s.now()
	return s.Repo.CountCreatedBetween(ctx, timeutil.StartOfDay(now), timeutil.EndOfDay(now))
}

func (s *DashboardService) MonthLeads(ctx context.Context) (int64, error) {
	now := s.now()
	return s.Repo.CountCreatedBetween(ctx, timeutil.StartOfMonth(now), timeutil.EndOfMonth(now))
}

func (s *DashboardService) TotalPaymentRequired(ctx context.Context) (float64, error) {
	return s.Repo.SumPaymentRequired(ctx)
}

func (s *DashboardService) TotalPaid(ctx context.Context) (float64, error) {
	return s.Repo.SumPaid(ctx)
}

func (s *DashboardService) RemainingAmount(ctx context.Context) (float64, error) {
	return s.Repo.SumRemaining(ctx)
}

// LeadsLast30Days returns exactly 30 day buckets ending today, oldest first,
// with zero counts for days without leads.
func (s *DashboardService) LeadsLast30Days(ctx context.Context) (*models.ChartData, error) {
	now := s.now()
	start := timeutil.StartOfDay(now.AddDate(0, 0, -29))
	end := timeutil.EndOfDay(now)

	counts, err := s.Repo.DailyCounts(ctx, start, end)
	if err != nil {
		return nil, err
	}

	chart := &models.ChartData{
		Labels: make([]string, 0, 30),
		Counts: make([]int64, 0, 30),
	}
	for i := 0; i < 30; i++ {
		day := start.AddDate(0, 0, i)
		chart.Labels = append(chart.Labels, day.Format(timeutil.LabelLayout))
		chart.Counts = append(chart.Counts, counts[day.Format(timeutil.DateLayout)])
	}
	return chart, nil
}

// LeadsByStatus counts leads per observed status value; new statuses appear
// without any fixed enumeration.
func (s *DashboardService) LeadsByStatus(ctx context.Context) (*models.ChartData, error) {
	buckets, err := s.Repo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	chart := &models.ChartData{Labels: []string{}, Counts: []int64{}}
	for _, b := range buckets {
		chart.Labels = append(chart.Labels, b.Label)
		chart.Counts = append(chart.Counts, b.Count)
	}
	return chart, nil
}

// LeadsBySource counts leads per normalized source bucket.
func (s *DashboardService) LeadsBySource(ctx context.Context) (*models.ChartData, error) {
	buckets, err := s.Repo.SourceCounts(ctx)
	if err != nil {
		return nil, err
	}

	merged := map[string]int64{}
	order := []string{}
	for _, b := range buckets {
		label := normalizeSource(b.Label)
		if _, seen := merged[label]; !seen {
			order = append(order, label)
		}
		merged[label] += b.Count
	}

	chart := &models.ChartData{Labels: []string{}, Counts: []int64{}}
	for _, label := range order {
		chart.Labels = append(chart.Labels, label)
		chart.Counts = append(chart.Counts, merged[label])
	}
	return chart, nil
}

// normalizeSource buckets raw source values: URLs collapse into "website",
// absent values into "Unknown", anything else passes through literally.
func normalizeSource(source string) string {
	switch {
	case source == "":
		return "Unknown"
	case strings.HasPrefix(source, "http"), strings.HasPrefix(source, "www"):
		return "website"
	default:
		return source
	}
}
