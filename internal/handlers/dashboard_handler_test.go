package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadtrack-backend/internal/repositories"
	"leadtrack-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	total int64
	won   int64
}

func (s *stubDashboardRepo) TotalCount(ctx context.Context) (int64, error) { return s.total, nil }

func (s *stubDashboardRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.won, nil
}

func (s *stubDashboardRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

func (s *stubDashboardRepo) SumPaymentRequired(ctx context.Context) (float64, error) {
	return 1500.5, nil
}

func (s *stubDashboardRepo) SumPaid(ctx context.Context) (float64, error) { return 0, nil }

func (s *stubDashboardRepo) SumRemaining(ctx context.Context) (float64, error) { return 0, nil }

func (s *stubDashboardRepo) DailyCounts(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (s *stubDashboardRepo) StatusCounts(ctx context.Context) ([]repositories.BucketCount, error) {
	return []repositories.BucketCount{{Label: "new", Count: 3}}, nil
}

func (s *stubDashboardRepo) SourceCounts(ctx context.Context) ([]repositories.BucketCount, error) {
	return nil, nil
}

func TestTotalCountEndpoint(t *testing.T) {
	h := NewDashboardHandler(services.NewDashboardService(&stubDashboardRepo{total: 42}))

	rec := httptest.NewRecorder()
	h.TotalCount(rec, httptest.NewRequest("GET", "/api/total-count", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":42}`, rec.Body.String())
}

func TestConversionRatioEndpoint(t *testing.T) {
	h := NewDashboardHandler(services.NewDashboardService(&stubDashboardRepo{total: 4, won: 1}))

	rec := httptest.NewRecorder()
	h.ConversionRatio(rec, httptest.NewRequest("GET", "/api/conversion-ratio", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ratio":"25.00"}`, rec.Body.String())
}

func TestTotalPaymentRequiredEndpoint(t *testing.T) {
	h := NewDashboardHandler(services.NewDashboardService(&stubDashboardRepo{}))

	rec := httptest.NewRecorder()
	h.TotalPaymentRequired(rec, httptest.NewRequest("GET", "/api/total-payment-required", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":1500.5}`, rec.Body.String())
}

func TestLeadsStatusCountEndpoint(t *testing.T) {
	h := NewDashboardHandler(services.NewDashboardService(&stubDashboardRepo{}))

	rec := httptest.NewRecorder()
	h.LeadsStatusCount(rec, httptest.NewRequest("GET", "/api/leads-status-count", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"labels":["new"],"counts":[3]}`, rec.Body.String())
}
