package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayes-dashboard/domain"
)

type MockCache struct {
	Data         map[string]string
	GetCalls     int
	SetCalls     int
	LastTTL      time.Duration
	ForceFail    bool
	ForceGetFail bool
}

func newMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool, error) {
	m.GetCalls++
	if m.ForceGetFail {
		return "", false, errors.New("cache unreachable")
	}
	val, ok := m.Data[key]
	return val, ok, nil
}

func (m *MockCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.SetCalls++
	m.LastTTL = ttl
	if m.ForceFail {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}

func TestPlotService_ChartCaches(t *testing.T) {
	cache := newMockCache()
	svc := NewPlotService(cache, time.Minute)
	ctx := context.Background()

	first, err := svc.Chart(ctx, domain.BetaRequest{A: 2, B: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.SetCalls)
	assert.Equal(t, time.Minute, cache.LastTTL)

	second, err := svc.Chart(ctx, domain.BetaRequest{A: 2, B: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.SetCalls, "second call should be served from cache")
	assert.Equal(t, first.Title, second.Title)
	assert.InDeltaSlice(t, []float64(first.Y), []float64(second.Y), 1e-12)
}

func TestPlotService_CacheFailureDoesNotFail(t *testing.T) {
	cache := newMockCache()
	cache.ForceFail = true
	svc := NewPlotService(cache, 0)

	spec, err := svc.Chart(context.Background(), domain.GammaRequest{A: 2, B: 1})
	require.NoError(t, err)
	assert.Len(t, spec.Y, SamplePoints)
}

func TestPlotService_InvalidSkipsCache(t *testing.T) {
	cache := newMockCache()
	svc := NewPlotService(cache, 0)

	_, err := svc.Chart(context.Background(), domain.BinomialRequest{N: 10, P: 1.5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Zero(t, cache.GetCalls)
	assert.Zero(t, cache.SetCalls)
}

func TestPlotService_StoreAndLoad(t *testing.T) {
	svc := NewPlotService(newMockCache(), 0)
	ctx := context.Background()

	spec, err := PlotBinomial(5, 0.5)
	require.NoError(t, err)

	stored, err := svc.Store(ctx, spec)
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	loaded, err := svc.Load(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)
}

func TestPlotService_StoreKeepsUnboundedValues(t *testing.T) {
	svc := NewPlotService(newMockCache(), 0)
	ctx := context.Background()

	spec, err := PlotBeta(0.5, 0.5)
	require.NoError(t, err)

	stored, err := svc.Store(ctx, spec)
	require.NoError(t, err)
	loaded, err := svc.Load(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, isNonFinite(loaded.Y[0]))
	assert.InDelta(t, spec.Y[500], loaded.Y[500], 1e-12)
}

func TestPlotService_LoadUnknown(t *testing.T) {
	svc := NewPlotService(newMockCache(), 0)

	_, err := svc.Load(context.Background(), "2c1e3f5a-8a7f-4a43-9d0e-2b3c4d5e6f70")
	assert.True(t, errors.Is(err, domain.ErrChartNotFound))

	_, err = svc.Load(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, domain.ErrChartNotFound))
}

func TestPlotService_StoreFails(t *testing.T) {
	cache := newMockCache()
	cache.ForceFail = true
	svc := NewPlotService(cache, 0)

	_, err := svc.Store(context.Background(), domain.ChartSpec{Title: "t"})
	assert.Error(t, err)
}

func TestPlotService_StoreReusesID(t *testing.T) {
	cache := newMockCache()
	svc := NewPlotService(cache, 0)
	ctx := context.Background()

	spec, err := PlotBeta(2, 3)
	require.NoError(t, err)

	first, err := svc.Store(ctx, spec)
	require.NoError(t, err)
	second, err := svc.Store(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, cache.Data, 1)

	other, err := PlotBeta(3, 2)
	require.NoError(t, err)
	third, err := svc.Store(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestPlotService_LoadBackendFailure(t *testing.T) {
	cache := newMockCache()
	cache.ForceGetFail = true
	svc := NewPlotService(cache, 0)

	_, err := svc.Load(context.Background(), "2c1e3f5a-8a7f-4a43-9d0e-2b3c4d5e6f70")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrChartNotFound))
}

func TestPlotService_ChartLookupFailureStillPlots(t *testing.T) {
	cache := newMockCache()
	cache.ForceGetFail = true
	svc := NewPlotService(cache, 0)

	spec, err := svc.Chart(context.Background(), domain.BinomialRequest{N: 3, P: 0.5})
	require.NoError(t, err)
	assert.Len(t, spec.Y, 4)
}

func isNonFinite(v float64) bool {
	return !finite(v)
}
