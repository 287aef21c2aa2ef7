package ast

import (
	"regexp"
	"strings"
)

// Template is a fragment of pseudo-Go source with two placeholder kinds:
// <v>, <v0>, <v1>, ... for fresh local variables (each distinct
// placeholder name maps to one fresh identifier, claimed from the Env),
// and <tN> for the generated text of the N-th child, substituted with
// its indentation preserved across multi-line children.
type Template struct {
	Body string
}

var freshVarPattern = regexp.MustCompile(`<v\d*>`)
var childPattern = regexp.MustCompile(`([ \t]*)<t(\d+)>`)

// Render substitutes this template's placeholders against env and the
// given children's generated text, and returns the result with blank
// lines removed.
func (t Template) Render(env *Env, children ...string) string {
	code := removeEmptyLines(t.Body)

	names := map[string]string{}
	for _, m := range freshVarPattern.FindAllString(code, -1) {
		if _, ok := names[m]; !ok {
			names[m] = env.FreshVar()
		}
	}
	for placeholder, name := range names {
		code = strings.ReplaceAll(code, placeholder, name)
	}

	code = childPattern.ReplaceAllStringFunc(code, func(match string) string {
		sub := childPattern.FindStringSubmatch(match)
		indent, idx := sub[1], sub[2]
		return indent + prefixLines(children[atoi(idx)], indent)
	})
	return code
}

func removeEmptyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// prefixLines indents every line of s (after its first, which is assumed
// already positioned) by prefix, so a multi-line child substituted at
// column N keeps its internal structure.
func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
