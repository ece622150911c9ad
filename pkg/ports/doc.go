/*
Package ports defines the driven ports (interfaces) for bitlab.

These interfaces decouple the widgets from external implementations, allowing the
concept explainer to work with any generative-text provider and any cache backend.

# Key Interfaces

  - Explainer: Turns a topic into markdown-flavoured explanation text (e.g., Gemini).
  - ExplanationCache: Keeps recent explanations keyed by topic (e.g., Memory or Redis).
*/
package ports
