package service

import (
	"slices"

	"bayes-dashboard/domain"
)

var priorOptions = []domain.Prior{domain.PriorBeta, domain.PriorGamma}

// LikelihoodOptions lists the likelihoods offered for a prior.
func LikelihoodOptions(prior domain.Prior) []domain.Likelihood {
	switch prior {
	case domain.PriorBeta:
		return []domain.Likelihood{domain.LikelihoodBernoulli, domain.LikelihoodBinomial}
	case domain.PriorGamma:
		return []domain.Likelihood{domain.LikelihoodPoisson, domain.LikelihoodExponential}
	}
	return []domain.Likelihood{domain.LikelihoodOther}
}

// NextState derives the dashboard from the current form. It decides which
// inputs are visible and which charts can be drawn, but plots nothing.
func NextState(form domain.FormState) domain.UIState {
	state := domain.UIState{
		Priors:            slices.Clone(priorOptions),
		LikelihoodOptions: LikelihoodOptions(form.Prior),
	}

	conjugatePrior := form.Prior == domain.PriorBeta || form.Prior == domain.PriorGamma
	if conjugatePrior {
		state.Prior = form.Prior
		state.PriorLabelA = "a:"
		state.PriorLabelB = "b:"
		state.ShowB = true
	} else {
		state.PriorLabelA = "lambda:"
	}

	if slices.Contains(state.LikelihoodOptions, form.Likelihood) {
		state.Likelihood = form.Likelihood
	}

	if conjugatePrior && form.A != nil && form.B != nil {
		family := domain.FamilyBeta
		if form.Prior == domain.PriorGamma {
			family = domain.FamilyGamma
		}
		state.PriorRequest = &domain.WireRequest{Family: string(family), A: form.A, B: form.B}
	}

	switch state.Likelihood {
	case domain.LikelihoodBernoulli:
		state.ShowLikelihood = true
		if form.SampleSize != nil && form.X != nil {
			state.LikelihoodRequest = &domain.WireRequest{
				Family:     string(domain.FamilyBernoulli),
				SampleSize: form.SampleSize,
				SampleMean: form.X,
			}
		}
	case domain.LikelihoodBinomial:
		state.ShowLikelihood = true
		if form.M != nil && form.X != nil {
			state.LikelihoodRequest = &domain.WireRequest{
				Family: string(domain.FamilyBinomial),
				N:      form.M,
				P:      form.X,
			}
		}
	}

	if state.PriorRequest != nil && state.Likelihood != "" && state.Likelihood != domain.LikelihoodOther &&
		form.SampleSize != nil && form.X != nil {
		sample := &domain.Sample{
			Likelihood: state.Likelihood,
			Size:       *form.SampleSize,
			Mean:       *form.X,
		}
		if state.Likelihood == domain.LikelihoodBinomial {
			if form.M == nil {
				return state
			}
			sample.Trials = *form.M
		}
		state.Sample = sample
	}

	return state
}
