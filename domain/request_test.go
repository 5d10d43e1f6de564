package domain

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestParseFamily(t *testing.T) {
	fam, err := ParseFamily(" Beta ")
	require.NoError(t, err)
	assert.Equal(t, FamilyBeta, fam)

	_, err = ParseFamily("cauchy")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestWireRequest_ToRequest(t *testing.T) {
	cases := []struct {
		name string
		wire WireRequest
		want Request
	}{
		{"beta", WireRequest{Family: "beta", A: f(2), B: f(3)}, BetaRequest{A: 2, B: 3}},
		{"gamma", WireRequest{Family: "gamma", A: f(2), B: f(0.5)}, GammaRequest{A: 2, B: 0.5}},
		{"binomial", WireRequest{Family: "binomial", N: f(10), P: f(0.3)}, BinomialRequest{N: 10, P: 0.3}},
		{"bernoulli", WireRequest{Family: "bernoulli", SampleSize: f(20), SampleMean: f(0.4)}, BernoulliLikelihoodRequest{SampleSize: 20, SampleMean: 0.4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.wire.ToRequest()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wire, ToWire(got))
		})
	}
}

func TestWireRequest_ToRequestRejects(t *testing.T) {
	cases := []struct {
		name string
		wire WireRequest
	}{
		{"unknown family", WireRequest{Family: "normal", A: f(1), B: f(1)}},
		{"missing b", WireRequest{Family: "beta", A: f(1)}},
		{"beta params on binomial", WireRequest{Family: "binomial", A: f(1), B: f(1)}},
		{"fractional n", WireRequest{Family: "binomial", N: f(2.5), P: f(0.5)}},
		{"infinite n", WireRequest{Family: "binomial", N: f(math.Inf(1)), P: f(0.5)}},
		{"fractional sample size", WireRequest{Family: "bernoulli", SampleSize: f(9.9), SampleMean: f(0.5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.wire.ToRequest()
			assert.True(t, errors.Is(err, ErrInvalidParameter), "%v", err)
		})
	}
}

func TestWireRequest_Query(t *testing.T) {
	wire := WireRequest{Family: "binomial", N: f(10), P: f(0.25)}
	q := wire.Query()
	assert.Equal(t, "10", q.Get("n"))
	assert.Equal(t, "0.25", q.Get("p"))
	assert.False(t, q.Has("a"))

	back, err := WireRequestFromQuery("binomial", q)
	require.NoError(t, err)
	assert.Equal(t, wire, back)
}

func TestWireRequestFromQuery_BadNumber(t *testing.T) {
	_, err := WireRequestFromQuery("beta", url.Values{"a": {"two"}})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestValues_JSON(t *testing.T) {
	raw, err := json.Marshal(ChartSpec{Y: Values{math.Inf(1), 0.5, math.NaN(), 2}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"y":[null,0.5,null,2]`)

	var spec ChartSpec
	require.NoError(t, json.Unmarshal(raw, &spec))
	require.Len(t, spec.Y, 4)
	assert.True(t, math.IsNaN(spec.Y[0]))
	assert.Equal(t, 0.5, spec.Y[1])
	assert.True(t, math.IsNaN(spec.Y[2]))
	assert.Equal(t, 2.0, spec.Y[3])
}
