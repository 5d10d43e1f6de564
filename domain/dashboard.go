package domain

type Prior string

const (
	PriorBeta  Prior = "Beta"
	PriorGamma Prior = "Gamma"
)

type Likelihood string

const (
	LikelihoodBernoulli   Likelihood = "Bernoulli"
	LikelihoodBinomial    Likelihood = "Binomial"
	LikelihoodPoisson     Likelihood = "Poisson"
	LikelihoodExponential Likelihood = "Exponential"
	LikelihoodOther       Likelihood = "Other"
)

// FormState is what the dashboard form currently holds. Nil numbers were
// left blank.
type FormState struct {
	Prior      Prior      `json:"prior"`
	Likelihood Likelihood `json:"likelihood"`
	A          *float64   `json:"a,omitempty"`
	B          *float64   `json:"b,omitempty"`
	// M is the number of trials of a binomial observation.
	M *float64 `json:"m,omitempty"`
	// X is the sample mean (a proportion for Bernoulli and Binomial data).
	X          *float64 `json:"x,omitempty"`
	SampleSize *float64 `json:"sample_size,omitempty"`
}

// Sample summarizes observed data for a conjugate update.
type Sample struct {
	Likelihood Likelihood `json:"likelihood"`
	Size       float64    `json:"size"`
	Mean       float64    `json:"mean"`
	Trials     float64    `json:"trials,omitempty"`
}

// UIState is the dashboard state derived from a FormState.
type UIState struct {
	Priors            []Prior      `json:"priors"`
	LikelihoodOptions []Likelihood `json:"likelihood_options"`
	Prior             Prior        `json:"prior"`
	Likelihood        Likelihood   `json:"likelihood"`
	PriorLabelA       string       `json:"prior_label_a"`
	PriorLabelB       string       `json:"prior_label_b"`
	ShowB             bool         `json:"show_b"`
	ShowLikelihood    bool         `json:"show_likelihood"`

	PriorRequest      *WireRequest `json:"prior_request,omitempty"`
	LikelihoodRequest *WireRequest `json:"likelihood_request,omitempty"`
	Sample            *Sample      `json:"sample,omitempty"`
}

// Panel is one chart slot of the dashboard. At most one of Chart and Error
// is set; both empty means there was nothing to draw.
type Panel struct {
	Chart *ChartSpec `json:"chart,omitempty"`
	Error string     `json:"error,omitempty"`
}

type DashboardView struct {
	State      UIState `json:"state"`
	Prior      Panel   `json:"prior"`
	Likelihood Panel   `json:"likelihood"`
	Posterior  Panel   `json:"posterior"`
}
