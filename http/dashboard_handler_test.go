package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayes-dashboard/domain"
	"bayes-dashboard/repository"
)

func TestDashboardIndex_Empty(t *testing.T) {
	h := newTestRouter(t, 0)

	w := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Bayesian Statistics Dashboard")
	assert.Contains(t, body, "lambda:")
	assert.Contains(t, body, `<option value="Other"`)
	assert.NotContains(t, body, "/api/v1/plots/")
}

func TestDashboardIndex_WithCharts(t *testing.T) {
	h := newTestRouter(t, 0)

	q := url.Values{
		"prior":       {"Beta"},
		"likelihood":  {"Bernoulli"},
		"a":           {"2"},
		"b":           {"2"},
		"x":           {"0.5"},
		"sample_size": {"10"},
	}
	w := do(t, h, http.MethodGet, "/dashboard/?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<option value="Beta" selected>`)
	assert.Contains(t, body, `<option value="Bernoulli" selected>`)
	assert.Contains(t, body, "Posterior Beta(7, 7) density")
	assert.Contains(t, body, "/api/v1/plots/")
}

func TestDashboardIndex_ShowsParameterError(t *testing.T) {
	h := newTestRouter(t, 0)

	w := do(t, h, http.MethodGet, "/?prior=Gamma&a=2&b=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b must be a positive number")
}

func TestDashboardState(t *testing.T) {
	h := newTestRouter(t, 0)

	w := do(t, h, http.MethodPost, "/api/v1/dashboard/state",
		`{"prior":"Gamma","likelihood":"Exponential","a":2,"b":1,"x":2,"sample_size":5}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view domain.DashboardView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, []domain.Likelihood{domain.LikelihoodPoisson, domain.LikelihoodExponential}, view.State.LikelihoodOptions)
	assert.False(t, view.State.ShowLikelihood)
	require.NotNil(t, view.Prior.Chart)
	require.NotNil(t, view.Posterior.Chart)
	assert.Equal(t, "Posterior Gamma(7, 11) density", view.Posterior.Chart.Title)
}

func TestFormFromQuery(t *testing.T) {
	form := formFromQuery(url.Values{"prior": {"Beta"}, "a": {"1.5"}, "b": {""}, "m": {"x"}})
	assert.Equal(t, domain.PriorBeta, form.Prior)
	require.NotNil(t, form.A)
	assert.Equal(t, 1.5, *form.A)
	assert.Nil(t, form.B)
	assert.Nil(t, form.M)
}

func TestDashboardIndex_ReloadReusesStoredCharts(t *testing.T) {
	cache := repository.NewMemoryCache()
	h := newTestRouterWithCache(t, 0, cache)
	target := "/?prior=Beta&likelihood=Bernoulli&a=2&b=2&x=0.5&sample_size=10"

	w := do(t, h, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, w.Code)
	entries := cache.Len()
	assert.NotZero(t, entries)

	w = do(t, h, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entries, cache.Len())
}

func TestDashboardIndex_RateLimited(t *testing.T) {
	h := newTestRouter(t, 1)

	w := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
