package http

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bayes-dashboard/domain"
	"bayes-dashboard/render"
	"bayes-dashboard/service"
)

type PlotHandler struct {
	service  *service.PlotService
	renderer render.Renderer
}

func NewPlotHandler(service *service.PlotService, renderer render.Renderer) *PlotHandler {
	return &PlotHandler{service: service, renderer: renderer}
}

// Chart answers POST /api/v1/charts with the ChartSpec as JSON.
func (h *PlotHandler) Chart(w http.ResponseWriter, r *http.Request) {
	spec, ok := h.chartFromBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, spec)
}

// StorePlot answers POST /api/v1/plots. The chart is kept so that
// /api/v1/plots/{id}.{format} can render it.
func (h *PlotHandler) StorePlot(w http.ResponseWriter, r *http.Request) {
	spec, ok := h.chartFromBody(w, r)
	if !ok {
		return
	}
	stored, err := h.service.Store(r.Context(), spec)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, stored)
}

// RenderPlot answers GET /api/v1/plots/{id}.{format}.
func (h *PlotHandler) RenderPlot(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	spec, err := h.service.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeImage(w, r, spec, format)
}

// RenderChart answers GET /api/v1/charts/{family}.{format} with parameters
// in the query string.
func (h *PlotHandler) RenderChart(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	wire, err := domain.WireRequestFromQuery(chi.URLParam(r, "family"), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := wire.ToRequest()
	if err != nil {
		writeError(w, r, err)
		return
	}
	spec, err := h.service.Chart(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeImage(w, r, spec, format)
}

func (h *PlotHandler) chartFromBody(w http.ResponseWriter, r *http.Request) (domain.ChartSpec, bool) {
	var wire domain.WireRequest
	if !decodeJSON(w, r, &wire) {
		return domain.ChartSpec{}, false
	}
	req, err := wire.ToRequest()
	if err != nil {
		writeError(w, r, err)
		return domain.ChartSpec{}, false
	}
	spec, err := h.service.Chart(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return domain.ChartSpec{}, false
	}
	return spec, true
}

func (h *PlotHandler) writeImage(w http.ResponseWriter, r *http.Request, spec domain.ChartSpec, format render.Format) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, spec, format); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "private, max-age=300")
	_, _ = buf.WriteTo(w)
}
