package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"bayes-dashboard/domain"
	"bayes-dashboard/repository"
)

// chartNamespace scopes the name-based ids of stored charts.
var chartNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("bayes-dashboard/charts"))

type PlotService struct {
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewPlotService creates a PlotService that caches charts for ttl.
func NewPlotService(cache repository.CacheRepository, ttl time.Duration) *PlotService {
	return &PlotService{cache: cache, ttl: ttl}
}

// Chart returns the chart for req, computing it on a cache miss. Cache
// errors are logged and do not fail the request.
func (s *PlotService) Chart(ctx context.Context, req domain.Request) (domain.ChartSpec, error) {
	if err := Validate(req); err != nil {
		return domain.ChartSpec{}, err
	}

	key := cacheKey(req)
	raw, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("key", key).Msg("chart cache lookup failed")
	case ok:
		var spec domain.ChartSpec
		if err := json.Unmarshal([]byte(raw), &spec); err == nil {
			return spec, nil
		}
		log.Warn().Str("key", key).Msg("discarding undecodable cached chart")
	}

	spec, err := Plot(req)
	if err != nil {
		return domain.ChartSpec{}, err
	}

	if raw, err := json.Marshal(spec); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode chart for cache")
	} else if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache chart")
	}
	return spec, nil
}

// Store saves spec so it can be rendered later. The id is derived from the
// chart's content, so storing the same chart twice reuses one entry.
func (s *PlotService) Store(ctx context.Context, spec domain.ChartSpec) (domain.ChartSpec, error) {
	spec.ID = ""
	content, err := json.Marshal(spec)
	if err != nil {
		return domain.ChartSpec{}, errors.Wrap(err, "encode chart")
	}
	spec.ID = uuid.NewSHA1(chartNamespace, content).String()

	raw, err := json.Marshal(spec)
	if err != nil {
		return domain.ChartSpec{}, errors.Wrap(err, "encode chart")
	}
	if err := s.cache.Set(ctx, storeKey(spec.ID), string(raw), s.ttl); err != nil {
		return domain.ChartSpec{}, errors.Wrap(err, "store chart")
	}
	return spec, nil
}

// Load fetches a chart saved by Store.
func (s *PlotService) Load(ctx context.Context, id string) (domain.ChartSpec, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ChartSpec{}, errors.Wrapf(domain.ErrChartNotFound, "malformed id %q", id)
	}
	raw, ok, err := s.cache.Get(ctx, storeKey(id))
	if err != nil {
		return domain.ChartSpec{}, errors.Wrapf(err, "load chart %s", id)
	}
	if !ok {
		return domain.ChartSpec{}, errors.Wrapf(domain.ErrChartNotFound, "id %s", id)
	}
	var spec domain.ChartSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return domain.ChartSpec{}, errors.Wrapf(err, "decode chart %s", id)
	}
	return spec, nil
}

func cacheKey(req domain.Request) string {
	return fmt.Sprintf("chart:%s:%+v", req.Family(), req)
}

func storeKey(id string) string {
	return "plot:" + id
}
