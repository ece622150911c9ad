package explain

import (
	"html"
	"regexp"
	"strings"
)

var (
	fencePattern  = regexp.MustCompile("```([\\s\\S]*?)```")
	inlinePattern = regexp.MustCompile("`([^`]+)`")
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// RenderHTML converts the supported markdown subset to HTML.
// Rules apply in order: fenced code, inline code, bold, then every newline
// becomes <br />. The source is HTML-escaped first so provider text cannot inject markup.
func RenderHTML(md string) string {
	out := html.EscapeString(md)
	out = fencePattern.ReplaceAllString(out, `<pre class="code-block"><code>$1</code></pre>`)
	out = inlinePattern.ReplaceAllString(out, `<code class="inline-code">$1</code>`)
	out = boldPattern.ReplaceAllString(out, `<strong>$1</strong>`)
	return strings.ReplaceAll(out, "\n", "<br />")
}
