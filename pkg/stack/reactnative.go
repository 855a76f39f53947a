package stack

import "github.com/Zaynmiraj/nim-react-toastify/pkg/domain"

func init() {
	Register(NewReactNativeDefinition())
}

// NewReactNativeDefinition describes React Native projects, including Expo
// (with or without expo-router).
func NewReactNativeDefinition() *Definition {
	return &Definition{
		Stack:        domain.StackReactNative,
		Priority:     PriorityGeneric,
		Dependencies: []string{"react-native", "expo"},
		// app.json alone is not a marker: web projects carry one too, and
		// real RN/Expo apps are caught by the dependency check anyway.
		Markers: []string{
			"metro.config.{js,cjs}",
			"App.{tsx,jsx,js}",
		},
		RootCandidates: []string{
			"app/_layout.tsx",
			"app/_layout.jsx",
			"app/_layout.js",
			"App.tsx",
			"App.jsx",
			"App.js",
			"src/App.tsx",
			"src/App.jsx",
			"src/App.js",
			"index.js",
		},
		Template:      domain.TemplateNative,
		ComponentsDir: "components",
	}
}
