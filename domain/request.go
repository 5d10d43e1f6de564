package domain

import (
	"math"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// maxExactInt is the largest integer a float64 represents exactly.
const maxExactInt = 1 << 53

// WireRequest is the loosely typed form of a Request as it arrives over
// JSON or a query string. Counts are carried as numbers and checked for
// integrality on conversion.
type WireRequest struct {
	Family     string   `json:"family"`
	A          *float64 `json:"a,omitempty"`
	B          *float64 `json:"b,omitempty"`
	N          *float64 `json:"n,omitempty"`
	P          *float64 `json:"p,omitempty"`
	SampleSize *float64 `json:"sample_size,omitempty"`
	SampleMean *float64 `json:"sample_mean,omitempty"`
}

// ToRequest converts the wire form into a typed Request. It rejects unknown
// families, missing parameters and non-integral counts. Range checks are
// left to the plotting functions.
func (w WireRequest) ToRequest() (Request, error) {
	family, err := ParseFamily(w.Family)
	if err != nil {
		return nil, err
	}

	switch family {
	case FamilyBeta, FamilyGamma:
		a, err := required("a", w.A)
		if err != nil {
			return nil, err
		}
		b, err := required("b", w.B)
		if err != nil {
			return nil, err
		}
		if family == FamilyBeta {
			return BetaRequest{A: a, B: b}, nil
		}
		return GammaRequest{A: a, B: b}, nil

	case FamilyBinomial:
		n, err := requiredCount("n", w.N)
		if err != nil {
			return nil, err
		}
		p, err := required("p", w.P)
		if err != nil {
			return nil, err
		}
		return BinomialRequest{N: n, P: p}, nil

	default:
		size, err := requiredCount("sample_size", w.SampleSize)
		if err != nil {
			return nil, err
		}
		mean, err := required("sample_mean", w.SampleMean)
		if err != nil {
			return nil, err
		}
		return BernoulliLikelihoodRequest{SampleSize: size, SampleMean: mean}, nil
	}
}

// Query encodes the parameters that are set as url query values.
func (w WireRequest) Query() url.Values {
	q := url.Values{}
	add := func(key string, v *float64) {
		if v != nil {
			q.Set(key, strconv.FormatFloat(*v, 'g', -1, 64))
		}
	}
	add("a", w.A)
	add("b", w.B)
	add("n", w.N)
	add("p", w.P)
	add("sample_size", w.SampleSize)
	add("sample_mean", w.SampleMean)
	return q
}

// WireRequestFromQuery reads the parameters of family from query values.
// Absent keys stay nil; malformed numbers are rejected.
func WireRequestFromQuery(family string, q url.Values) (WireRequest, error) {
	w := WireRequest{Family: family}
	fields := []struct {
		key string
		dst **float64
	}{
		{"a", &w.A},
		{"b", &w.B},
		{"n", &w.N},
		{"p", &w.P},
		{"sample_size", &w.SampleSize},
		{"sample_mean", &w.SampleMean},
	}
	for _, f := range fields {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return WireRequest{}, errors.Wrapf(ErrInvalidParameter, "%s is not a number: %q", f.key, raw)
		}
		*f.dst = &v
	}
	return w, nil
}

// ToWire is the inverse of ToRequest.
func ToWire(r Request) WireRequest {
	f := func(v float64) *float64 { return &v }
	w := WireRequest{Family: string(r.Family())}
	switch r := r.(type) {
	case BetaRequest:
		w.A, w.B = f(r.A), f(r.B)
	case GammaRequest:
		w.A, w.B = f(r.A), f(r.B)
	case BinomialRequest:
		w.N, w.P = f(float64(r.N)), f(r.P)
	case BernoulliLikelihoodRequest:
		w.SampleSize, w.SampleMean = f(float64(r.SampleSize)), f(r.SampleMean)
	}
	return w
}

func required(name string, v *float64) (float64, error) {
	if v == nil {
		return 0, errors.Wrapf(ErrInvalidParameter, "missing parameter %s", name)
	}
	return *v, nil
}

func requiredCount(name string, v *float64) (int, error) {
	f, err := required(name, v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.Trunc(f) != f || math.Abs(f) > maxExactInt {
		return 0, errors.Wrapf(ErrInvalidParameter, "%s must be an integer, got %v", name, f)
	}
	return int(f), nil
}
