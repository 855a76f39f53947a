package stack

import "github.com/Zaynmiraj/nim-react-toastify/pkg/domain"

func init() {
	Register(NewReactDefinition())
}

// NewReactDefinition is the fallback for plain React projects (Vite, CRA,
// custom bundlers). It carries no rules and matches anything the
// specialized definitions did not claim.
func NewReactDefinition() *Definition {
	return &Definition{
		Stack:    domain.StackReact,
		Priority: PriorityFallback,
		// App.* first: entry files (main.*, index.*) usually hold a render
		// call rather than a patchable return expression.
		RootCandidates: []string{
			"src/App.tsx",
			"src/App.jsx",
			"src/App.js",
			"src/main.tsx",
			"src/main.jsx",
			"src/main.js",
			"src/index.tsx",
			"src/index.jsx",
			"src/index.js",
			"index.js",
		},
		Template:      domain.TemplateWeb,
		ComponentsDir: "src/components",
	}
}
