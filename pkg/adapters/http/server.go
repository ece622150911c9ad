package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/explain"
	"github.com/aretw0/bitlab/pkg/logic"
	"github.com/aretw0/bitlab/pkg/numclass"
	"github.com/aretw0/bitlab/pkg/radix"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// maxBodyBytes caps request bodies; every payload is a handful of short strings.
const maxBodyBytes = 64 << 10

// Lab is the subset of *bitlab.Lab served over HTTP.
type Lab interface {
	Evaluate(ctx context.Context, kind domain.GateKind, a, b bool) bool
	EvaluateViaBasis(ctx context.Context, kind domain.GateKind, basis domain.Basis, a, b bool) (bool, error)
	TruthTable(kind domain.GateKind) []domain.TruthRow
	Construct(ctx context.Context, kind domain.GateKind, basis domain.Basis, a, b bool) (*bitlab.ConstructionView, error)
	ConstructionDiagram(kind domain.GateKind, basis domain.Basis, a, b bool) string
	Convert(ctx context.Context, digits string, from, to domain.Base) (string, error)
	Classify(ctx context.Context, text string) (numclass.Classification, error)
	Explain(ctx context.Context, topic string) (*bitlab.Explanation, error)
}

var _ Lab = (*bitlab.Lab)(nil)

// Server holds the HTTP handlers for a Lab.
type Server struct {
	lab     Lab
	api     *openapi3.T
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// LoadOpenAPI parses and validates the embedded OpenAPI document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

// NewHandler creates a new HTTP handler for the lab.
// It fails when the embedded OpenAPI document does not validate.
func NewHandler(lab Lab, opts ...Option) (http.Handler, error) {
	api, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}

	s := &Server{
		lab:    lab,
		api:    api,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openAPIYAML)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/gates", s.ListGates)
	r.Post("/gates/evaluate", s.EvaluateGate)
	r.Get("/gates/{kind}/table", s.TruthTable)
	r.Get("/gates/{kind}/construction/{basis}", s.Construction)
	r.Post("/convert", s.Convert)
	r.Post("/classify", s.Classify)
	r.Post("/explain", s.Explain)
	r.Get("/explain/topics", s.SuggestedTopics)

	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>bitlab API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.api.Info != nil {
		apiVersion = s.api.Info.Version
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "bitlab-http",
		"version":     strings.TrimSpace(bitlab.Version),
		"api_version": apiVersion,
	})
}

// GateInfo describes one gate kind and the bases it can be built from.
type GateInfo struct {
	Kind          domain.GateKind       `json:"kind"`
	Arity         int                   `json:"arity"`
	Constructions map[domain.Basis]bool `json:"constructions"`
}

// ListGates handles the GET /gates request.
func (s *Server) ListGates(w http.ResponseWriter, r *http.Request) {
	gates := make([]GateInfo, 0, len(domain.GateKinds))
	for _, kind := range domain.GateKinds {
		info := GateInfo{Kind: kind, Arity: kind.Arity(), Constructions: map[domain.Basis]bool{}}
		for _, basis := range domain.Bases {
			info.Constructions[basis] = logic.Available(kind, basis)
		}
		gates = append(gates, info)
	}
	s.writeJSON(w, http.StatusOK, gates)
}

// EvaluateRequest is the body of POST /gates/evaluate.
type EvaluateRequest struct {
	Kind  string `json:"kind"`
	A     bool   `json:"a"`
	B     bool   `json:"b"`
	Basis string `json:"basis,omitempty"`
}

// EvaluateResponse carries the direct output and, when a basis was requested
// and a construction exists, the output computed through it.
type EvaluateResponse struct {
	Kind      domain.GateKind `json:"kind"`
	Output    bool            `json:"output"`
	ViaBasis  *bool           `json:"via_basis,omitempty"`
	Available bool            `json:"available"`
}

// EvaluateGate handles the POST /gates/evaluate request.
func (s *Server) EvaluateGate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if !s.decode(w, r, &body) {
		return
	}
	kind, err := domain.ParseGateKind(body.Kind)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := EvaluateResponse{
		Kind:      kind,
		Output:    s.lab.Evaluate(r.Context(), kind, body.A, body.B),
		Available: true,
	}
	if body.Basis != "" {
		basis, err := domain.ParseBasis(body.Basis)
		if err != nil {
			s.writeError(w, err)
			return
		}
		out, err := s.lab.EvaluateViaBasis(r.Context(), kind, basis, body.A, body.B)
		switch {
		case errors.Is(err, domain.ErrConstructionUnavailable):
			resp.Available = false
		case err != nil:
			s.writeError(w, err)
			return
		default:
			resp.ViaBasis = &out
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// TruthTableResponse is the body of GET /gates/{kind}/table.
type TruthTableResponse struct {
	Kind domain.GateKind   `json:"kind"`
	Rows []domain.TruthRow `json:"rows"`
}

// TruthTable handles the GET /gates/{kind}/table request.
func (s *Server) TruthTable(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseGateKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, TruthTableResponse{Kind: kind, Rows: s.lab.TruthTable(kind)})
}

// Construction handles the GET /gates/{kind}/construction/{basis} request.
// Unavailable pairs answer 404 with the placeholder diagram alongside the error.
func (s *Server) Construction(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseGateKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	basis, err := domain.ParseBasis(chi.URLParam(r, "basis"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	a, err := queryBit(r, "a")
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := queryBit(r, "b")
	if err != nil {
		s.writeError(w, err)
		return
	}

	view, err := s.lab.Construct(r.Context(), kind, basis, a, b)
	if err != nil {
		if errors.Is(err, domain.ErrConstructionUnavailable) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   domain.DisplayMessage(err),
				"diagram": s.lab.ConstructionDiagram(kind, basis, a, b),
			})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

// Radix accepts a base as a JSON number (16) or string ("hex").
type Radix domain.Base

func (b *Radix) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	base, err := radix.ParseBase(raw)
	if err != nil {
		return err
	}
	*b = Radix(base)
	return nil
}

// ConvertRequest is the body of POST /convert.
type ConvertRequest struct {
	Digits string `json:"digits"`
	From   Radix  `json:"from"`
	To     Radix  `json:"to"`
}

// Convert handles the POST /convert request.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	var body ConvertRequest
	if !s.decode(w, r, &body) {
		return
	}
	out, err := s.lab.Convert(r.Context(), body.Digits, domain.Base(body.From), domain.Base(body.To))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"output": out})
}

// ClassifyResponse is the body of a successful POST /classify.
type ClassifyResponse struct {
	Input      string                   `json:"input"`
	Value      *float64                 `json:"value"`
	Categories []domain.Category        `json:"categories"`
	Members    map[domain.Category]bool `json:"members"`
}

// Classify handles the POST /classify request.
func (s *Server) Classify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	c, err := s.lab.Classify(r.Context(), body.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cats := c.Categories()
	if cats == nil {
		cats = []domain.Category{}
	}
	s.writeJSON(w, http.StatusOK, ClassifyResponse{
		Input:      c.Input,
		Value:      c.Value,
		Categories: cats,
		Members:    c.Members,
	})
}

// Explain handles the POST /explain request.
func (s *Server) Explain(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topic string `json:"topic"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	exp, err := s.lab.Explain(r.Context(), body.Topic)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, exp)
}

// SuggestedTopics handles the GET /explain/topics request.
func (s *Server) SuggestedTopics(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, explain.SuggestedTopics)
}

// -- Helpers --

func queryBit(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	bit, err := domain.ParseBit(v)
	if err != nil {
		return false, &requestError{fmt.Sprintf("query parameter %q must be 0 or 1", name)}
	}
	return bit, nil
}

// requestError marks malformed requests.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

// StatusCode maps library errors onto HTTP statuses.
func StatusCode(err error) int {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr),
		errors.Is(err, domain.ErrUnknownGate),
		errors.Is(err, domain.ErrUnknownBasis),
		errors.Is(err, domain.ErrInvalidBit),
		errors.Is(err, domain.ErrUnsupportedBase),
		errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, domain.ErrInvalidTopic):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConstructionUnavailable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDigits),
		errors.Is(err, domain.ErrPrecisionExceeded),
		errors.Is(err, domain.ErrUnclassifiable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExplanationFetch):
		return http.StatusBadGateway
	case errors.Is(err, bitlab.ErrExplainerUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
		msg := "Invalid request body"
		if errors.Is(err, domain.ErrUnsupportedBase) {
			msg = err.Error()
		}
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "status", status, "err", err)
	} else {
		s.logger.Debug("Request rejected", "status", status, "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": domain.DisplayMessage(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "err", err)
	}
}
