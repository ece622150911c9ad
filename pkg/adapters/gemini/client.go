// Package gemini implements ports.Explainer on top of Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/bitlab/pkg/domain"
	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned when the client is built without a credential.
var ErrMissingAPIKey = errors.New("gemini API key is required")

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("gemini returned no text")

// SystemInstruction is the tutor persona sent with every request.
func SystemInstruction(topic string) string {
	return "You are an expert computer science tutor. Explain the following concept clearly and concisely, " +
		"as if for a university student learning about it for the first time. Use markdown for formatting, " +
		"including code blocks for examples if applicable. The topic is: " + topic + "."
}

// Client generates explanations with a Gemini model.
type Client struct {
	client  *genai.Client
	model   string
	baseURL string
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithModel selects the model. Defaults to domain.DefaultModel.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at a different endpoint (proxies, tests).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Gemini-backed explainer.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		model:  domain.DefaultModel,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.client = client
	return c, nil
}

// Explain asks the model to explain topic and returns its markdown answer.
func (c *Client) Explain(ctx context.Context, topic string) (string, error) {
	c.logger.Debug("requesting explanation", "model", c.model, "topic", topic)

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(topic),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemInstruction(topic), genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}
