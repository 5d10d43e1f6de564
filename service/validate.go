package service

import (
	"math"

	"github.com/pkg/errors"

	"bayes-dashboard/domain"
)

// Validate checks that req's parameters lie in its family's support.
func Validate(req domain.Request) error {
	switch r := req.(type) {
	case domain.BetaRequest:
		return validateShapes("a", r.A, "b", r.B)
	case domain.GammaRequest:
		if err := validateShapes("a", r.A, "b", r.B); err != nil {
			return err
		}
		_, _, err := gammaWindow(r.A, r.B)
		return err
	case domain.BinomialRequest:
		if err := requireCount("n", r.N, 0, MaxTrials); err != nil {
			return err
		}
		return requireProbability("p", r.P)
	case domain.BernoulliLikelihoodRequest:
		if err := requireCount("sample_size", r.SampleSize, 1, MaxSampleSize); err != nil {
			return err
		}
		return requireProbability("sample_mean", r.SampleMean)
	case nil:
		return errors.Wrap(domain.ErrInvalidParameter, "empty request")
	}
	return errors.Wrapf(domain.ErrInvalidParameter, "unsupported request %T", req)
}

func validateShapes(aName string, a float64, bName string, b float64) error {
	if err := requirePositive(aName, a); err != nil {
		return err
	}
	return requirePositive(bName, b)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requirePositive(name string, v float64) error {
	if !finite(v) || v <= 0 {
		return errors.Wrapf(domain.ErrInvalidParameter, "%s must be a positive number, got %v", name, v)
	}
	return nil
}

func requireNonNegative(name string, v float64) error {
	if !finite(v) || v < 0 {
		return errors.Wrapf(domain.ErrInvalidParameter, "%s must be a non-negative number, got %v", name, v)
	}
	return nil
}

func requireProbability(name string, v float64) error {
	if !finite(v) || v < 0 || v > 1 {
		return errors.Wrapf(domain.ErrInvalidParameter, "%s must lie in [0, 1], got %v", name, v)
	}
	return nil
}

func requireCount(name string, v, min, max int) error {
	if v < min || v > max {
		return errors.Wrapf(domain.ErrInvalidParameter, "%s must be an integer in [%d, %d], got %d", name, min, max, v)
	}
	return nil
}

// countOf converts an integral float to int, as counts arrive from forms as
// plain numbers.
func countOf(name string, v float64, min, max int) (int, error) {
	if !finite(v) || math.Trunc(v) != v {
		return 0, errors.Wrapf(domain.ErrInvalidParameter, "%s must be an integer, got %v", name, v)
	}
	if v < float64(min) || v > float64(max) {
		return 0, errors.Wrapf(domain.ErrInvalidParameter, "%s must be an integer in [%d, %d], got %v", name, min, max, v)
	}
	return int(v), nil
}

// gammaWindow is the x range drawn for a gamma density: GammaWindow/b on
// either side of the mode, clipped at zero. Extreme parameters overflow it
// or collapse it to a point, and those are rejected.
func gammaWindow(a, b float64) (lo, hi float64, err error) {
	mode := 0.0
	if a > 1 {
		mode = (a - 1) / b
	}
	lo = math.Max(0, mode-GammaWindow/b)
	hi = mode + GammaWindow/b
	if !finite(lo) || !finite(hi) || hi <= lo {
		return 0, 0, errors.Wrapf(domain.ErrInvalidParameter,
			"gamma(%v, %v) has no finite plotting window", a, b)
	}
	return lo, hi, nil
}
