/*
Package explain answers free-text "explain this concept" requests.

A Service forwards a topic to a ports.Explainer (a generative-text provider), optionally
consults a ports.ExplanationCache first, and converts provider failures into
*domain.ExplanationFetchError values that carry a display-safe message.

RenderHTML turns the returned text into HTML for the small markdown subset the widget
supports: fenced code blocks, inline code, bold and line breaks. Nothing else is
interpreted.
*/
package explain
