package service

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"bayes-dashboard/domain"
)

// Plot draws the chart for any supported request.
func Plot(req domain.Request) (domain.ChartSpec, error) {
	switch r := req.(type) {
	case domain.BetaRequest:
		return PlotBeta(r.A, r.B)
	case domain.GammaRequest:
		return PlotGamma(r.A, r.B)
	case domain.BinomialRequest:
		return PlotBinomial(r.N, r.P)
	case domain.BernoulliLikelihoodRequest:
		return PlotBernoulliLikelihood(r.SampleSize, r.SampleMean)
	}
	return domain.ChartSpec{}, Validate(req)
}

// PlotBeta draws the Beta(a, b) density over [0, 1].
func PlotBeta(a, b float64) (domain.ChartSpec, error) {
	if err := Validate(domain.BetaRequest{A: a, B: b}); err != nil {
		return domain.ChartSpec{}, err
	}

	theta := floats.Span(make([]float64, SamplePoints), 0, 1)
	density := make(domain.Values, len(theta))
	if a == 1 && b == 1 {
		for i := range density {
			density[i] = 1
		}
	} else {
		dist := distuv.Beta{Alpha: a, Beta: b}
		for i, x := range theta {
			density[i] = dist.Prob(x)
		}
	}

	name := fmt.Sprintf("Beta(%s, %s)", formatParam(a), formatParam(b))
	return densityChart(name, theta, density), nil
}

// PlotGamma draws the Gamma density with shape a and rate b over a window
// of GammaWindow/b on either side of the mode, clipped at zero. Tail mass
// outside the window is not shown.
func PlotGamma(a, b float64) (domain.ChartSpec, error) {
	if err := Validate(domain.GammaRequest{A: a, B: b}); err != nil {
		return domain.ChartSpec{}, err
	}

	lo, hi, err := gammaWindow(a, b)
	if err != nil {
		return domain.ChartSpec{}, err
	}

	xs := floats.Span(make([]float64, SamplePoints), lo, hi)
	density := make(domain.Values, len(xs))
	dist := distuv.Gamma{Alpha: a, Beta: b}
	for i, x := range xs {
		density[i] = dist.Prob(x)
	}

	name := fmt.Sprintf("Gamma(%s, %s)", formatParam(a), formatParam(b))
	return densityChart(name, xs, density), nil
}

// PlotBinomial draws P(X = x) for x = 0..n as markers.
func PlotBinomial(n int, p float64) (domain.ChartSpec, error) {
	if err := Validate(domain.BinomialRequest{N: n, P: p}); err != nil {
		return domain.ChartSpec{}, err
	}

	xs := make([]float64, n+1)
	mass := make(domain.Values, n+1)
	for i := range xs {
		xs[i] = float64(i)
	}
	switch p {
	case 0:
		mass[0] = 1
	case 1:
		mass[n] = 1
	default:
		dist := distuv.Binomial{N: float64(n), P: p}
		for i, x := range xs {
			mass[i] = dist.Prob(x)
		}
	}

	name := fmt.Sprintf("Binomial(%d, %s)", n, formatParam(p))
	return domain.ChartSpec{
		Title:  name + " mass",
		XLabel: "successes (x)",
		YLabel: "probability",
		Name:   name,
		Mode:   domain.ModeMarkers,
		X:      xs,
		Y:      mass,
		Color:  DensityColor,
		Width:  MarkerSize,
	}, nil
}

// PlotBernoulliLikelihood draws L(p) = p^k (1-p)^(n-k) with k = mean*n over
// p in [0, 1]. The curve is not normalized, so for large samples it
// underflows to zero away from the sample mean.
func PlotBernoulliLikelihood(sampleSize int, sampleMean float64) (domain.ChartSpec, error) {
	req := domain.BernoulliLikelihoodRequest{SampleSize: sampleSize, SampleMean: sampleMean}
	if err := Validate(req); err != nil {
		return domain.ChartSpec{}, err
	}

	n := float64(sampleSize)
	successes := sampleMean * n
	ps := floats.Span(make([]float64, SamplePoints), 0, 1)
	likelihood := make(domain.Values, len(ps))
	for i, p := range ps {
		likelihood[i] = math.Pow(p, successes) * math.Pow(1-p, n-successes)
	}

	return domain.ChartSpec{
		Title:  fmt.Sprintf("Bernoulli likelihood (n = %d, mean = %s)", sampleSize, formatParam(sampleMean)),
		XLabel: "p (probability of success)",
		YLabel: "likelihood",
		Name:   "likelihood",
		Mode:   domain.ModeLines,
		X:      ps,
		Y:      likelihood,
		Color:  LikelihoodColor,
		Width:  LineWidth,
	}, nil
}

func densityChart(name string, xs []float64, ys domain.Values) domain.ChartSpec {
	return domain.ChartSpec{
		Title:  name + " density",
		XLabel: "x",
		YLabel: "density",
		Name:   name,
		Mode:   domain.ModeLines,
		X:      xs,
		Y:      ys,
		Color:  DensityColor,
		Width:  LineWidth,
	}
}
