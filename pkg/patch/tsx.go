package patch

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

var (
	tsxLang *sitter.Language
	tsxOnce sync.Once
)

// tsxLanguage returns the TSX grammar. TSX is a superset of the JSX and
// plain JS sources the patcher sees, so one grammar covers all root files.
func tsxLanguage() *sitter.Language {
	tsxOnce.Do(func() {
		tsxLang = tsx.GetLanguage()
	})
	return tsxLang
}

// parseTSX parses source and returns the tree. Callers must Close it.
// Parsers are not safe for concurrent use, so each call builds its own.
func parseTSX(ctx context.Context, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsxLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("patch: parse: %w", err)
	}
	return tree, nil
}
