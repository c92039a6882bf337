package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appsnapshots "github.com/grahamrowe82/munger-snap/internal/application/snapshots"
	domain "github.com/grahamrowe82/munger-snap/internal/domain/thesis"
	"github.com/grahamrowe82/munger-snap/internal/middleware"
)

type Router struct {
	svc            *appsnapshots.Service
	maxThesisChars int
}

// errBadJSON is returned by handlers when the request body does not
// decode; wrap maps it to a 400.
var errBadJSON = errors.New("invalid JSON body")

func NewRouter(svc *appsnapshots.Service, allowedOrigins []string, maxThesisChars int) http.Handler {
	r := &Router{svc: svc, maxThesisChars: maxThesisChars}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"keyword_tables": middleware.CheckerFunc(func(ctx context.Context) error {
			return domain.ValidateTables()
		}),
	}))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/snap", r.wrap(r.handleSnap))
		rt.Post("/snap/form", r.wrap(r.handleSnapForm))
		rt.Get("/report", r.wrap(r.handleReport))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, middleware.ErrEmptyThesis),
				errors.Is(err, middleware.ErrThesisTooLong),
				errors.Is(err, errBadJSON):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

// cleanInputs applies the shared sanitize/validate path and returns a
// ready command. Rejections are counted before being surfaced.
func (r *Router) cleanInputs(thesis, pe, fcfYield string) (appsnapshots.AnalyzeCommand, error) {
	cmd := appsnapshots.AnalyzeCommand{
		Thesis:   middleware.SanitizeString(thesis),
		PE:       middleware.SanitizeNumericField(pe),
		FCFYield: middleware.SanitizeNumericField(fcfYield),
	}
	if err := middleware.ValidateThesis(cmd.Thesis, r.maxThesisChars); err != nil {
		middleware.IncrementAnalysesRejected()
		return appsnapshots.AnalyzeCommand{}, err
	}
	return cmd, nil
}

// POST /v1/snap
// Body: {"thesis": "...", "pe": "18", "fcf_yield": "7%"}
func (r *Router) handleSnap(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Thesis   string `json:"thesis"`
		PE       string `json:"pe"`
		FCFYield string `json:"fcf_yield"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return errBadJSON
	}

	cmd, err := r.cleanInputs(body.Thesis, body.PE, body.FCFYield)
	if err != nil {
		return err
	}

	result, err := r.svc.Analyze(req.Context(), cmd)
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(result)
}

// POST /v1/snap/form
// Form fields: thesis, pe, fcf_yield. Responds with the rendered
// report as text/plain for copy/export.
func (r *Router) handleSnapForm(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseForm(); err != nil {
		return errBadJSON
	}

	cmd, err := r.cleanInputs(
		req.PostFormValue("thesis"),
		req.PostFormValue("pe"),
		req.PostFormValue("fcf_yield"),
	)
	if err != nil {
		return err
	}

	result, err := r.svc.Analyze(req.Context(), cmd)
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err = w.Write([]byte(result.Snapshot.RenderedReport + "\n"))
	return err
}

// GET /v1/report?thesis=...&pe=...&fcf_yield=...
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()

	cmd, err := r.cleanInputs(q.Get("thesis"), q.Get("pe"), q.Get("fcf_yield"))
	if err != nil {
		return err
	}

	result, err := r.svc.Analyze(req.Context(), cmd)
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err = w.Write([]byte(result.Snapshot.RenderedReport + "\n"))
	return err
}
