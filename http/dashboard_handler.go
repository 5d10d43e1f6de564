package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"bayes-dashboard/domain"
	"bayes-dashboard/service"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"num": func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'g', -1, 64)
	},
}).ParseFS(templateFS, "templates/dashboard.html"))

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardPage struct {
	Form domain.FormState
	View domain.DashboardView
}

// Index renders the HTML dashboard for the form in the query string.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	form := formFromQuery(r.URL.Query())
	page := dashboardPage{Form: form, View: h.service.View(r.Context(), form)}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		log.Error().Err(err).Msg("rendering dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// State answers POST /api/v1/dashboard/state with the view for a JSON form.
func (h *DashboardHandler) State(w http.ResponseWriter, r *http.Request) {
	var form domain.FormState
	if !decodeJSON(w, r, &form) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.View(r.Context(), form))
}

// formFromQuery reads the dashboard form. Blank or malformed numbers are
// treated as not entered.
func formFromQuery(q url.Values) domain.FormState {
	number := func(key string) *float64 {
		v, err := strconv.ParseFloat(q.Get(key), 64)
		if err != nil {
			return nil
		}
		return &v
	}
	return domain.FormState{
		Prior:      domain.Prior(q.Get("prior")),
		Likelihood: domain.Likelihood(q.Get("likelihood")),
		A:          number("a"),
		B:          number("b"),
		M:          number("m"),
		X:          number("x"),
		SampleSize: number("sample_size"),
	}
}
