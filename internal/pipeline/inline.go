package pipeline

import (
	"crypto/md5" // #nosec G501 -- content addressing, not a security boundary
	"encoding/hex"
	"regexp"
	"strings"
)

// Formatter rewrites a single text fragment.
type Formatter interface {
	Format(text string) string
}

// inlineRule replaces every non-greedy open...close span with the result of
// transform applied to the span's inner text.
type inlineRule struct {
	name      string
	open      string
	close     string
	pattern   *regexp.Regexp
	transform func(inner string) string
}

func newInlineRule(name, openDelim, closeDelim string, transform func(string) string) inlineRule {
	return inlineRule{
		name:      name,
		open:      openDelim,
		close:     closeDelim,
		pattern:   regexp.MustCompile(regexp.QuoteMeta(openDelim) + `(.+?)` + regexp.QuoteMeta(closeDelim)),
		transform: transform,
	}
}

func (r inlineRule) apply(text string) string {
	return r.pattern.ReplaceAllStringFunc(text, func(span string) string {
		return r.transform(span[len(r.open) : len(span)-len(r.close)])
	})
}

// Precompiled rules, applied in order. Later rules see the output of earlier ones.
var defaultRules = []inlineRule{
	newInlineRule("bold", "**", "**", wrapTag("b")),
	newInlineRule("emphasis", "__", "__", wrapTag("em")),
	newInlineRule("md5", "[[", "]]", md5Hex),
	newInlineRule("strip-c", "((", "))", stripC),
}

// InlineFormatter applies the inline rewrite rules to text fragments.
type InlineFormatter struct {
	rules []inlineRule
}

// NewInlineFormatter returns a formatter with all inline rules enabled.
func NewInlineFormatter() *InlineFormatter {
	return &InlineFormatter{rules: defaultRules}
}

// Format applies bold, emphasis, [[md5]] and ((strip-c)) rewrites in that order.
func (f *InlineFormatter) Format(text string) string {
	for _, r := range f.rules {
		text = r.apply(text)
	}
	return text
}

// ruleNames lists the active rules in application order.
func (f *InlineFormatter) ruleNames() []string {
	names := make([]string, len(f.rules))
	for i, r := range f.rules {
		names[i] = r.name
	}
	return names
}

func wrapTag(tag string) func(string) string {
	return func(inner string) string {
		return "<" + tag + ">" + inner + "</" + tag + ">"
	}
}

// md5Hex returns the lowercase hex MD5 digest of the UTF-8 bytes of s.
func md5Hex(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

var cStripper = strings.NewReplacer("c", "", "C", "")

// stripC removes every 'c' and 'C' from s.
func stripC(s string) string {
	return cStripper.Replace(s)
}
