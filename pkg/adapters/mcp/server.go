package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/logic"
	"github.com/aretw0/bitlab/pkg/radix"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GatesResourceURI exposes the gate catalogue as a read-only resource.
const GatesResourceURI = "bitlab://gates"

// Server wraps a Lab and exposes it as an MCP Server.
type Server struct {
	lab       *bitlab.Lab
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(lab *bitlab.Lab, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		lab:       lab,
		logger:    logger,
		mcpServer: server.NewMCPServer("bitlab-mcp", strings.TrimSpace(bitlab.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EvaluateArgs are the arguments of evaluate_gate.
type EvaluateArgs struct {
	Kind  string `json:"kind"`
	A     bool   `json:"a"`
	B     bool   `json:"b"`
	Basis string `json:"basis,omitempty"`
}

// EvaluateResult is the output of evaluate_gate.
type EvaluateResult struct {
	Kind      domain.GateKind `json:"kind" jsonschema_description:"Canonical gate name"`
	Output    bool            `json:"output" jsonschema_description:"Direct gate output"`
	ViaBasis  *bool           `json:"via_basis,omitempty" jsonschema_description:"Output computed through the requested basis construction"`
	Available bool            `json:"available" jsonschema_description:"False when the requested basis has no construction for this gate"`
}

// ConstructArgs are the arguments of construct_gate.
type ConstructArgs struct {
	Kind  string `json:"kind"`
	Basis string `json:"basis"`
	A     bool   `json:"a"`
	B     bool   `json:"b"`
}

// ConstructResult is the output of construct_gate.
type ConstructResult struct {
	Kind      domain.GateKind `json:"kind"`
	Basis     domain.Basis    `json:"basis"`
	GateCount int             `json:"gate_count" jsonschema_description:"Number of basis gates in the circuit"`
	Wires     map[string]bool `json:"wires" jsonschema_description:"Signal on every wire (A, B, g1, g2, ...)"`
	Output    bool            `json:"output"`
	Direct    bool            `json:"direct" jsonschema_description:"Direct evaluation, always equal to output"`
	Diagram   string          `json:"diagram" jsonschema_description:"Mermaid flowchart of the circuit"`
}

// KindArgs names a single gate.
type KindArgs struct {
	Kind string `json:"kind"`
}

// TruthTableResult is the output of truth_table.
type TruthTableResult struct {
	Kind domain.GateKind   `json:"kind"`
	Rows []domain.TruthRow `json:"rows"`
}

// ConvertArgs are the arguments of convert_base.
type ConvertArgs struct {
	Digits string `json:"digits"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// ConvertResult is the output of convert_base.
type ConvertResult struct {
	Output string `json:"output"`
}

// ClassifyArgs are the arguments of classify_number.
type ClassifyArgs struct {
	Text string `json:"text"`
}

// ClassifyResult is the output of classify_number.
type ClassifyResult struct {
	Input      string            `json:"input"`
	Categories []domain.Category `json:"categories" jsonschema_description:"Matched categories in display order"`
}

// ExplainArgs are the arguments of explain_concept.
type ExplainArgs struct {
	Topic string `json:"topic"`
}

func (s *Server) registerTools() {
	gateNames := make([]string, len(domain.GateKinds))
	for i, k := range domain.GateKinds {
		gateNames[i] = string(k)
	}

	s.mcpServer.AddTool(mcp.NewTool("evaluate_gate",
		mcp.WithDescription("Evaluate a logic gate. With a basis, also compute it through its NAND or NOR construction."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Gate kind"), mcp.Enum(gateNames...)),
		mcp.WithBoolean("a", mcp.Description("Input A")),
		mcp.WithBoolean("b", mcp.Description("Input B (ignored by NOT and BUFFER)")),
		mcp.WithString("basis", mcp.Description("Universal basis"), mcp.Enum("NAND", "NOR")),
		mcp.WithOutputSchema[EvaluateResult](),
	), mcp.NewStructuredToolHandler(s.handleEvaluate))

	s.mcpServer.AddTool(mcp.NewTool("construct_gate",
		mcp.WithDescription("Build a gate from NAND or NOR gates only and trace every wire for the given inputs."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Gate kind"), mcp.Enum(gateNames...)),
		mcp.WithString("basis", mcp.Required(), mcp.Description("Universal basis"), mcp.Enum("NAND", "NOR")),
		mcp.WithBoolean("a", mcp.Description("Input A")),
		mcp.WithBoolean("b", mcp.Description("Input B")),
		mcp.WithOutputSchema[ConstructResult](),
	), mcp.NewStructuredToolHandler(s.handleConstruct))

	s.mcpServer.AddTool(mcp.NewTool("truth_table",
		mcp.WithDescription("Truth table of a gate in A-major order."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Gate kind"), mcp.Enum(gateNames...)),
		mcp.WithOutputSchema[TruthTableResult](),
	), mcp.NewStructuredToolHandler(s.handleTruthTable))

	s.mcpServer.AddTool(mcp.NewTool("convert_base",
		mcp.WithDescription("Convert an unsigned integer between binary, octal, decimal and hexadecimal."),
		mcp.WithString("digits", mcp.Required(), mcp.Description("Digits in the source base")),
		mcp.WithString("from", mcp.Required(), mcp.Description("Source base: 2, 8, 10, 16 or bin, oct, dec, hex")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Target base: 2, 8, 10, 16 or bin, oct, dec, hex")),
		mcp.WithOutputSchema[ConvertResult](),
	), mcp.NewStructuredToolHandler(s.handleConvert))

	s.mcpServer.AddTool(mcp.NewTool("classify_number",
		mcp.WithDescription("Classify a number (7, -3, 1/2, 3.14, π, √2, 3+2i) into Natural, Prime, Composite, Whole, Integer, Rational, Irrational, Real and Complex."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The number as typed")),
		mcp.WithOutputSchema[ClassifyResult](),
	), mcp.NewStructuredToolHandler(s.handleClassify))

	if s.lab.CanExplain() {
		s.mcpServer.AddTool(mcp.NewTool("explain_concept",
			mcp.WithDescription("Ask the tutor model for a beginner-friendly explanation of a computer science topic."),
			mcp.WithString("topic", mcp.Required(), mcp.Description("Topic or question")),
			mcp.WithOutputSchema[bitlab.Explanation](),
		), mcp.NewStructuredToolHandler(s.handleExplain))
	}
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args EvaluateArgs) (EvaluateResult, error) {
	kind, err := domain.ParseGateKind(args.Kind)
	if err != nil {
		return EvaluateResult{}, err
	}
	res := EvaluateResult{
		Kind:      kind,
		Output:    s.lab.Evaluate(ctx, kind, args.A, args.B),
		Available: true,
	}
	if args.Basis == "" {
		return res, nil
	}

	basis, err := domain.ParseBasis(args.Basis)
	if err != nil {
		return EvaluateResult{}, err
	}
	out, err := s.lab.EvaluateViaBasis(ctx, kind, basis, args.A, args.B)
	switch {
	case errors.Is(err, domain.ErrConstructionUnavailable):
		res.Available = false
	case err != nil:
		return EvaluateResult{}, err
	default:
		res.ViaBasis = &out
	}
	return res, nil
}

func (s *Server) handleConstruct(ctx context.Context, request mcp.CallToolRequest, args ConstructArgs) (ConstructResult, error) {
	kind, err := domain.ParseGateKind(args.Kind)
	if err != nil {
		return ConstructResult{}, err
	}
	basis, err := domain.ParseBasis(args.Basis)
	if err != nil {
		return ConstructResult{}, err
	}
	view, err := s.lab.Construct(ctx, kind, basis, args.A, args.B)
	if err != nil {
		return ConstructResult{}, errors.New(domain.DisplayMessage(err))
	}

	wires := make(map[string]bool, len(view.Trace))
	for i, v := range view.Trace {
		wires[logic.Wire(i).Name()] = v
	}
	return ConstructResult{
		Kind:      kind,
		Basis:     basis,
		GateCount: view.Circuit.GateCount(),
		Wires:     wires,
		Output:    view.Output,
		Direct:    view.Direct,
		Diagram:   view.Diagram,
	}, nil
}

func (s *Server) handleTruthTable(ctx context.Context, request mcp.CallToolRequest, args KindArgs) (TruthTableResult, error) {
	kind, err := domain.ParseGateKind(args.Kind)
	if err != nil {
		return TruthTableResult{}, err
	}
	return TruthTableResult{Kind: kind, Rows: s.lab.TruthTable(kind)}, nil
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args ConvertArgs) (ConvertResult, error) {
	from, err := radix.ParseBase(args.From)
	if err != nil {
		return ConvertResult{}, err
	}
	to, err := radix.ParseBase(args.To)
	if err != nil {
		return ConvertResult{}, err
	}
	out, err := s.lab.Convert(ctx, args.Digits, from, to)
	if err != nil {
		return ConvertResult{}, errors.New(domain.DisplayMessage(err))
	}
	return ConvertResult{Output: out}, nil
}

func (s *Server) handleClassify(ctx context.Context, request mcp.CallToolRequest, args ClassifyArgs) (ClassifyResult, error) {
	c, err := s.lab.Classify(ctx, args.Text)
	if err != nil {
		return ClassifyResult{}, errors.New(domain.DisplayMessage(err))
	}
	cats := c.Categories()
	if cats == nil {
		cats = []domain.Category{}
	}
	return ClassifyResult{Input: c.Input, Categories: cats}, nil
}

func (s *Server) handleExplain(ctx context.Context, request mcp.CallToolRequest, args ExplainArgs) (bitlab.Explanation, error) {
	exp, err := s.lab.Explain(ctx, args.Topic)
	if err != nil {
		s.logger.Warn("MCP explain failed", "topic", args.Topic, "err", err)
		return bitlab.Explanation{}, errors.New(domain.DisplayMessage(err))
	}
	return *exp, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(GatesResourceURI, "Gate catalogue and universal-gate constructions",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := catalogueJSON()
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GatesResourceURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})
}

func catalogueJSON() (string, error) {
	catalogue := struct {
		Kinds         []domain.GateKind `json:"kinds"`
		Constructions []logic.Pair      `json:"constructions"`
	}{
		Kinds:         domain.GateKinds,
		Constructions: logic.Constructions(),
	}
	b, err := json.Marshal(catalogue)
	if err != nil {
		return "", fmt.Errorf("failed to encode gate catalogue: %w", err)
	}
	return string(b), nil
}
