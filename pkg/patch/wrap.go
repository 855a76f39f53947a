package patch

import (
	"regexp"
	"strings"
)

// WrapStrategy records which edit wrapped the root JSX.
type WrapStrategy string

const (
	// WrapNone means no strategy applied; the file shape is unsupported.
	WrapNone WrapStrategy = ""
	// WrapAlready means the provider tag is already present.
	WrapAlready WrapStrategy = "already-wrapped"
	// WrapReturnParen is the general case: a parenthesized return expression.
	WrapReturnParen WrapStrategy = "return-paren"
	// WrapChildren wraps the {children} expression of a layout component.
	WrapChildren WrapStrategy = "children"
	// WrapBareReturn wraps a single-expression return without parentheses.
	WrapBareReturn WrapStrategy = "bare-return"
)

var (
	returnParenPattern  = regexp.MustCompile(`return\s*\(`)
	childrenPropPattern = regexp.MustCompile(`\{\s*children\s*[},]|props\.children`)
	childrenExprPattern = regexp.MustCompile(`\{\s*children\s*\}`)
	bareReturnPattern   = regexp.MustCompile(`return\s+(<[A-Za-z][^;]*>)\s*;`)
)

// wrapJSX wraps the root JSX expression of content in provider tags and
// reports which strategy did it. The content is returned unchanged when the
// provider tag is already present or when no strategy matches.
func wrapJSX(content string, provider string) (string, WrapStrategy) {
	if hasProviderTag(content, provider) {
		return content, WrapAlready
	}

	if out, ok := wrapParenReturn(content, provider); ok {
		return out, WrapReturnParen
	}

	// Fallbacks for shapes the general case misses, keyed on whether the
	// file looks like a layout component receiving children.
	if childrenPropPattern.MatchString(content) {
		// The last {children} occurrence is the one rendered in the JSX
		// body; earlier ones are parameter destructurings.
		if loc := lastMatch(childrenExprPattern, content); loc != nil {
			out := content[:loc[0]] +
				"<" + provider + ">" + content[loc[0]:loc[1]] + "</" + provider + ">" +
				content[loc[1]:]
			return out, WrapChildren
		}
		return content, WrapNone
	}

	if loc := bareReturnPattern.FindStringSubmatchIndex(content); loc != nil {
		expr := content[loc[2]:loc[3]]
		out := content[:loc[2]] +
			"<" + provider + ">" + expr + "</" + provider + ">" +
			content[loc[3]:]
		return out, WrapBareReturn
	}

	return content, WrapNone
}

// wrapParenReturn finds the first `return (` whose expression opens a JSX
// element, scans to the matching close parenthesis by depth, and wraps the
// enclosed expression. The scan is purely textual: parentheses inside
// strings or comments will unbalance it, in which case no edit is made.
func wrapParenReturn(content string, provider string) (string, bool) {
	for _, loc := range returnParenPattern.FindAllStringIndex(content, -1) {
		open := loc[1] - 1

		inner := content[loc[1]:]
		if next := firstNonSpace(inner); next != '<' {
			continue
		}

		end, ok := matchingParen(content, open)
		if !ok {
			return "", false
		}

		expr := content[open+1 : end]
		trimmed := strings.TrimRight(expr, " \t\n")
		trailing := expr[len(trimmed):]

		out := content[:open+1] +
			"<" + provider + ">" + trimmed + "</" + provider + ">" + trailing +
			content[end:]
		return out, true
	}
	return "", false
}

// matchingParen returns the index of the parenthesis closing the one at
// open.
func matchingParen(content string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(content); i++ {
		switch content[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// hasProviderTag reports whether content contains an opening tag for the
// provider itself. The tag name must end at a non-identifier character so
// that components merely sharing the prefix (e.g. <ToastProviderBoundary>)
// do not count.
func hasProviderTag(content, provider string) bool {
	tag := "<" + provider
	idx := 0
	for {
		i := strings.Index(content[idx:], tag)
		if i < 0 {
			return false
		}
		end := idx + i + len(tag)
		if end == len(content) || !isIdentChar(content[end]) {
			return true
		}
		idx = idx + i + 1
	}
}

func lastMatch(pattern *regexp.Regexp, content string) []int {
	locs := pattern.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}
	return locs[len(locs)-1]
}

func firstNonSpace(s string) byte {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return s[i]
		}
	}
	return 0
}
