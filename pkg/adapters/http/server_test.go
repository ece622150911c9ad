package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/internal/logging"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...bitlab.Option) http.Handler {
	t.Helper()
	opts = append(opts, bitlab.WithLogger(logging.NewNop()))
	h, err := NewHandler(bitlab.New(opts...), WithLogger(logging.NewNop()))
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var decoded map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") && strings.HasPrefix(w.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bitlab.Version, doc.Info.Version)
	assert.NotNil(t, doc.Paths.Find("/gates/evaluate"))
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler(t)

	w, body := do(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	_, body = do(t, h, "GET", "/info", "")
	assert.Equal(t, "bitlab-http", body["app"])
	assert.Equal(t, bitlab.Version, body["version"])

	w, _ = do(t, h, "GET", "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}

func TestEvaluateGate(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name      string
		body      string
		status    int
		output    bool
		viaBasis  any
		available bool
	}{
		{"Direct", `{"kind":"xor","a":true,"b":false}`, http.StatusOK, true, nil, true},
		{"Via NAND", `{"kind":"XOR","a":true,"b":true,"basis":"nand"}`, http.StatusOK, false, false, true},
		{"Unavailable pair", `{"kind":"XOR","a":true,"b":false,"basis":"NOR"}`, http.StatusOK, true, nil, false},
		{"Unary ignores B", `{"kind":"NOT","a":false,"b":true,"basis":"NOR"}`, http.StatusOK, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, h, "POST", "/gates/evaluate", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.output, body["output"])
			assert.Equal(t, tt.available, body["available"])
			assert.Equal(t, tt.viaBasis, body["via_basis"])
		})
	}

	t.Run("Unknown gate", func(t *testing.T) {
		w, body := do(t, h, "POST", "/gates/evaluate", `{"kind":"MUX"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body["error"], "unknown gate kind")
	})

	t.Run("Malformed body", func(t *testing.T) {
		w, body := do(t, h, "POST", "/gates/evaluate", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", body["error"])
	})
}

func TestListGatesAndTable(t *testing.T) {
	h := newTestHandler(t)

	w, _ := do(t, h, "GET", "/gates", "")
	require.Equal(t, http.StatusOK, w.Code)
	var gates []GateInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gates))
	require.Len(t, gates, len(domain.GateKinds))
	for _, g := range gates {
		if g.Kind == domain.GateXNOR {
			assert.False(t, g.Constructions[domain.BasisNAND])
			assert.True(t, g.Constructions[domain.BasisNOR])
		}
	}

	w, _ = do(t, h, "GET", "/gates/nand/table", "")
	require.Equal(t, http.StatusOK, w.Code)
	var table TruthTableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))
	assert.Equal(t, domain.GateNAND, table.Kind)
	assert.Equal(t, []domain.TruthRow{
		{A: false, B: false, Output: true},
		{A: false, B: true, Output: true},
		{A: true, B: false, Output: true},
		{A: true, B: true, Output: false},
	}, table.Rows)

	w, _ = do(t, h, "GET", "/gates/mux/table", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConstruction(t *testing.T) {
	h := newTestHandler(t)

	w, body := do(t, h, "GET", "/gates/or/construction/nand?a=0&b=1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["output"])
	assert.Equal(t, true, body["direct"])
	assert.Contains(t, body["diagram"], "graph LR")

	w, body = do(t, h, "GET", "/gates/xor/construction/nor", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Construction not available yet (coming soon).", body["error"])
	assert.Contains(t, body["diagram"], "coming soon")

	w, _ = do(t, h, "GET", "/gates/or/construction/and", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, q := range []string{"a=maybe", "a=true", "b=F", "b=2"} {
		w, body = do(t, h, "GET", "/gates/or/construction/nand?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Contains(t, body["error"], "must be 0 or 1", q)
	}
}

func TestConvert(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"Numeric bases", `{"digits":"255","from":10,"to":16}`, http.StatusOK, "FF"},
		{"Named bases", `{"digits":"ff","from":"hex","to":"bin"}`, http.StatusOK, "11111111"},
		{"Empty digits", `{"digits":"","from":2,"to":8}`, http.StatusOK, ""},
		{"Invalid digits", `{"digits":"2","from":2,"to":10}`, http.StatusUnprocessableEntity, ""},
		{"Too large", `{"digits":"1ffffffffffffffff","from":16,"to":10}`, http.StatusUnprocessableEntity, ""},
		{"Unsupported base", `{"digits":"1","from":3,"to":10}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, h, "POST", "/convert", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.want, body["output"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestClassify(t *testing.T) {
	h := newTestHandler(t)

	w, _ := do(t, h, "POST", "/classify", `{"text":"7"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []domain.Category{
		domain.Natural, domain.Prime, domain.Whole, domain.Integer,
		domain.Rational, domain.Real, domain.Complex,
	}, resp.Categories)
	require.NotNil(t, resp.Value)
	assert.Equal(t, 7.0, *resp.Value)

	w, body := do(t, h, "POST", "/classify", `{"text":"hello"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, body["error"], "Please enter a valid number")
}

func TestExplain(t *testing.T) {
	t.Run("Not configured", func(t *testing.T) {
		w, _ := do(t, newTestHandler(t), "POST", "/explain", `{"topic":"RAM"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		fake := ports.ExplainerFunc(func(ctx context.Context, topic string) (string, error) {
			return "Use `" + topic + "`", nil
		})
		w, body := do(t, newTestHandler(t, bitlab.WithExplainer(fake)), "POST", "/explain", `{"topic":"RAM"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Use `RAM`", body["markdown"])
		assert.Equal(t, `Use <code class="inline-code">RAM</code>`, body["html"])
	})

	t.Run("Empty topic", func(t *testing.T) {
		fake := ports.ExplainerFunc(func(ctx context.Context, topic string) (string, error) { return "x", nil })
		w, _ := do(t, newTestHandler(t, bitlab.WithExplainer(fake)), "POST", "/explain", `{"topic":"  "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Provider failure", func(t *testing.T) {
		fake := ports.ExplainerFunc(func(ctx context.Context, topic string) (string, error) {
			return "", errors.New("quota exceeded")
		})
		w, body := do(t, newTestHandler(t, bitlab.WithExplainer(fake)), "POST", "/explain", `{"topic":"RAM"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Failed to get explanation: quota exceeded", body["error"])
	})

	t.Run("Suggested topics", func(t *testing.T) {
		w, _ := do(t, newTestHandler(t), "GET", "/explain/topics", "")
		require.Equal(t, http.StatusOK, w.Code)
		var topics []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &topics))
		assert.NotEmpty(t, topics)
	})
}

func TestMetricsMount(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bitlab_up 1\n"))
	})
	h, err := NewHandler(bitlab.New(), WithMetricsHandler(metrics))
	require.NoError(t, err)

	w, _ := do(t, h, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bitlab_up 1\n", w.Body.String())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(&domain.ConstructionUnavailableError{Kind: domain.GateXOR, Basis: domain.BasisNOR}))
	assert.Equal(t, http.StatusBadRequest, StatusCode(domain.ErrInvalidBit))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}
