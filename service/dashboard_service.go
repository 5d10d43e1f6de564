package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"bayes-dashboard/domain"
)

type DashboardService struct {
	plots *PlotService
}

func NewDashboardService(plots *PlotService) *DashboardService {
	return &DashboardService{plots: plots}
}

// View derives the UI state from form and draws every chart it allows.
// Charts are stored so the page can reference them by id. A bad parameter
// only fails its own panel.
func (s *DashboardService) View(ctx context.Context, form domain.FormState) domain.DashboardView {
	state := NextState(form)
	view := domain.DashboardView{State: state}

	var prior domain.Request
	if state.PriorRequest != nil {
		req, err := state.PriorRequest.ToRequest()
		if err == nil {
			prior = req
		}
		view.Prior = s.panel(ctx, req, err, "")
	}

	if state.ShowLikelihood && state.LikelihoodRequest != nil {
		req, err := state.LikelihoodRequest.ToRequest()
		view.Likelihood = s.panel(ctx, req, err, "")
	}

	if prior != nil && state.Sample != nil && Validate(prior) == nil {
		req, err := Posterior(prior, *state.Sample)
		view.Posterior = s.panel(ctx, req, err, "Posterior ")
	}

	return view
}

func (s *DashboardService) panel(ctx context.Context, req domain.Request, err error, titlePrefix string) domain.Panel {
	if err != nil {
		return domain.Panel{Error: err.Error()}
	}
	spec, err := s.plots.Chart(ctx, req)
	if err != nil {
		return domain.Panel{Error: err.Error()}
	}
	spec.Title = titlePrefix + spec.Title
	stored, err := s.plots.Store(ctx, spec)
	if err != nil {
		log.Error().Err(err).Str("family", string(req.Family())).Msg("failed to store dashboard chart")
		return domain.Panel{Error: "chart could not be saved"}
	}
	return domain.Panel{Chart: &stored}
}
