package patch

import (
	"context"
	"path"
	"regexp"
	"strings"
)

var (
	importSourcePattern = regexp.MustCompile(`(?m)^\s*import\s+[^;'"]*?from\s*['"]([^'"]+)['"]|require\(\s*['"]([^'"]+)['"]\s*\)`)
	importClausePattern = regexp.MustCompile(`(?m)^\s*import\s+\{[^}]*\}\s*from`)
	directivePattern    = regexp.MustCompile(`^\s*['"]use [a-z ]+['"];?\s*$`)
)

// extractImportSources returns the module specifiers of all import and
// require statements in the file.
func extractImportSources(content []byte) []string {
	matches := importSourcePattern.FindAllSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	sources := make([]string, 0, len(matches))
	for _, match := range matches {
		for _, group := range match[1:] {
			if len(group) > 0 {
				sources = append(sources, string(group))
			}
		}
	}
	return sources
}

// ImportsProvider reports whether content imports the named provider from
// any module.
func ImportsProvider(content []byte, provider string) bool {
	return hasProviderImport(content, provider, "")
}

// hasProviderImport reports whether the file already imports the provider,
// either from the exact module specifier or from any module whose basename
// is the provider, or through a named import clause naming the component.
func hasProviderImport(content []byte, provider, importPath string) bool {
	for _, source := range extractImportSources(content) {
		if source == importPath || path.Base(source) == provider {
			return true
		}
	}
	for _, clause := range importClausePattern.FindAll(content, -1) {
		if containsWord(string(clause), provider) {
			return true
		}
	}
	return false
}

// insertImport splices line into content after the last top-level import.
// The insertion point comes from a TSX parse; when parsing fails a line
// scan stands in. A file with no imports gets the line at the top, after a
// leading directive such as "use client" if one is present.
func insertImport(ctx context.Context, content []byte, line string) []byte {
	if end, ok := lastImportEnd(ctx, content); ok {
		return splice(content, end, "\n"+line)
	}
	if end, ok := lastImportLineEnd(content); ok {
		return splice(content, end, "\n"+line)
	}
	at := afterLeadingDirective(content)
	return splice(content, at, line+"\n")
}

// lastImportEnd finds the end byte of the last top-level import statement.
func lastImportEnd(ctx context.Context, content []byte) (int, bool) {
	tree, err := parseTSX(ctx, content)
	if err != nil {
		return 0, false
	}
	defer tree.Close()

	root := tree.RootNode()
	end := -1
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "import_statement" {
			continue
		}
		if e := int(child.EndByte()); e > end {
			end = e
		}
	}
	if end < 0 {
		return 0, false
	}
	return end, true
}

// lastImportLineEnd is the textual fallback: the end offset of the last
// line that starts with an import keyword.
func lastImportLineEnd(content []byte) (int, bool) {
	text := string(content)
	offset := 0
	end := -1
	for len(text) > 0 {
		line := text
		next := len(text)
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i]
			next = i + 1
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "import{") {
			end = offset + len(line)
		}
		offset += next
		text = text[next:]
	}
	if end < 0 {
		return 0, false
	}
	return end, true
}

func afterLeadingDirective(content []byte) int {
	text := string(content)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		if directivePattern.MatchString(text[:i]) {
			return i + 1
		}
	}
	return 0
}

func splice(content []byte, at int, insert string) []byte {
	out := make([]byte, 0, len(content)+len(insert))
	out = append(out, content[:at]...)
	out = append(out, insert...)
	out = append(out, content[at:]...)
	return out
}

func containsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isIdentChar(text[start-1])
		afterOK := end == len(text) || !isIdentChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
