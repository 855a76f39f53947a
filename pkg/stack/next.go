package stack

import "github.com/Zaynmiraj/nim-react-toastify/pkg/domain"

func init() {
	Register(NewNextDefinition())
}

// NewNextDefinition describes Next.js projects, both the app router and the
// legacy pages router.
func NewNextDefinition() *Definition {
	return &Definition{
		Stack:        domain.StackNext,
		Priority:     PrioritySpecialized,
		Dependencies: []string{"next"},
		Markers: []string{
			"next.config.{js,mjs,ts}",
			"app/layout.{tsx,jsx,js}",
			"src/app/layout.{tsx,jsx,js}",
			"pages/_app.{tsx,jsx,js}",
		},
		RootCandidates: []string{
			"app/layout.tsx",
			"app/layout.jsx",
			"app/layout.js",
			"src/app/layout.tsx",
			"src/app/layout.jsx",
			"src/app/layout.js",
			"pages/_app.tsx",
			"pages/_app.jsx",
			"pages/_app.js",
			"src/pages/_app.tsx",
			"src/pages/_app.jsx",
			"src/pages/_app.js",
		},
		Template:      domain.TemplateWeb,
		ComponentsDir: "src/components",
	}
}
