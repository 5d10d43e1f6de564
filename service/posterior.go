package service

import (
	"github.com/pkg/errors"

	"bayes-dashboard/domain"
)

// Posterior applies a conjugate update of prior with the observed sample.
// Supported pairs are Beta with Bernoulli or Binomial data and Gamma with
// Poisson or Exponential data.
func Posterior(prior domain.Request, sample domain.Sample) (domain.Request, error) {
	if err := Validate(prior); err != nil {
		return nil, err
	}
	size, err := countOf("sample_size", sample.Size, 1, MaxSampleSize)
	if err != nil {
		return nil, err
	}
	n := float64(size)

	switch p := prior.(type) {
	case domain.BetaRequest:
		switch sample.Likelihood {
		case domain.LikelihoodBernoulli:
			if err := requireProbability("sample_mean", sample.Mean); err != nil {
				return nil, err
			}
			return domain.BetaRequest{
				A: p.A + n*sample.Mean,
				B: p.B + n*(1-sample.Mean),
			}, nil

		case domain.LikelihoodBinomial:
			trials, err := countOf("m", sample.Trials, 1, MaxTrials)
			if err != nil {
				return nil, err
			}
			if err := requireProbability("sample_mean", sample.Mean); err != nil {
				return nil, err
			}
			total := n * float64(trials)
			return domain.BetaRequest{
				A: p.A + total*sample.Mean,
				B: p.B + total*(1-sample.Mean),
			}, nil
		}

	case domain.GammaRequest:
		switch sample.Likelihood {
		case domain.LikelihoodPoisson:
			if err := requireNonNegative("sample_mean", sample.Mean); err != nil {
				return nil, err
			}
			return domain.GammaRequest{A: p.A + n*sample.Mean, B: p.B + n}, nil

		case domain.LikelihoodExponential:
			if err := requirePositive("sample_mean", sample.Mean); err != nil {
				return nil, err
			}
			return domain.GammaRequest{A: p.A + n, B: p.B + n*sample.Mean}, nil
		}
	}

	return nil, errors.Wrapf(domain.ErrInvalidParameter,
		"%s likelihood is not conjugate to a %s prior", sample.Likelihood, prior.Family())
}
