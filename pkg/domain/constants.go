package domain

// Field constants shared by the JSON, MCP and config surfaces.
const (
	// DefaultModel is the generative-text model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// KeyAPIKey is the environment variable the explainer reads its credential from.
	KeyAPIKey = "API_KEY"
)
