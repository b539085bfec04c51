package content

import "github.com/microcosm-cc/bluemonday"

// Rich is inline copy that may carry a small set of formatting tags.
type Rich string

// inlinePolicy keeps emphasis and classed spans and strips everything else.
var inlinePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "em", "b", "i", "br", "span")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")
	return p
}()

// Sanitize returns the value with disallowed markup removed.
func (r Rich) Sanitize() Rich {
	return Rich(inlinePolicy.Sanitize(string(r)))
}

// String returns the raw markup.
func (r Rich) String() string { return string(r) }
