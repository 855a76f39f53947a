package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapJSX_ParenReturn(t *testing.T) {
	t.Parallel()

	content := `function App() {
  return (
    <div className="app">
      <Header />
    </div>
  );
}
`
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapReturnParen, strategy)
	assert.Contains(t, out, "return (<ToastProvider>")
	assert.Contains(t, out, "</ToastProvider>\n  );")
	assert.Contains(t, out, "<Header />")
}

func TestWrapJSX_BalancesNestedParens(t *testing.T) {
	t.Parallel()

	content := `function App() {
  return (
    <button onClick={() => track("click", payload(1))}>Go</button>
  );
}
`
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapReturnParen, strategy)

	// The close tag must land after the matching parenthesis of the return
	// expression, not after one of the nested callback parens.
	closeAt := strings.Index(out, "</ToastProvider>")
	buttonEnd := strings.Index(out, "</button>")
	if closeAt < buttonEnd {
		t.Errorf("close tag at %d, before </button> at %d", closeAt, buttonEnd)
	}
}

func TestWrapJSX_SkipsNonJSXReturns(t *testing.T) {
	t.Parallel()

	content := `function useValue() {
  return (a + b);
}

function App() {
  return (
    <App />
  );
}
`
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapReturnParen, strategy)
	assert.Contains(t, out, "return (a + b);", "non-JSX return must be untouched")
	assert.Contains(t, out, "return (<ToastProvider>")
}

func TestWrapJSX_AlreadyWrapped(t *testing.T) {
	t.Parallel()

	content := `function App() {
  return (
    <ToastProvider>
      <div />
    </ToastProvider>
  );
}
`
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapAlready, strategy)
	assert.Equal(t, content, out)
}

func TestWrapJSX_PrefixedComponentIsNotTheProvider(t *testing.T) {
	t.Parallel()

	content := `function App() {
  return (
    <ToastProviderBoundary>
      <div />
    </ToastProviderBoundary>
  );
}
`
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapReturnParen, strategy,
		"a component sharing the provider's prefix must not count as already wrapped")
	assert.Contains(t, out, "return (<ToastProvider>")
	assert.Contains(t, out, "<ToastProviderBoundary>")
}

func TestHasProviderTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"plain open tag", `return (<ToastProvider>{x}</ToastProvider>);`, true},
		{"tag with attributes", `<ToastProvider max={3}>`, true},
		{"self-closing tag", `<ToastProvider/>`, true},
		{"tag at end of content", `<ToastProvider`, true},
		{"prefixed component", `<ToastProviderBoundary>`, false},
		{"no tag at all", `import { ToastProvider } from "./x";`, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := hasProviderTag(tt.content, "ToastProvider"); got != tt.want {
				t.Errorf("hasProviderTag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapJSX_ChildrenFallback(t *testing.T) {
	t.Parallel()

	content := `export default function RootLayout({ children }) {
  return <html lang="en"><body>{children}</body></html>;
}
`
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapChildren, strategy)
	assert.Contains(t, out, "<body><ToastProvider>{children}</ToastProvider></body>")
	assert.Contains(t, out, "RootLayout({ children })", "parameter destructuring must be untouched")
}

func TestWrapJSX_BareReturnFallback(t *testing.T) {
	t.Parallel()

	content := `function App() {
  return <App name="demo" />;
}
`
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapBareReturn, strategy)
	assert.Contains(t, out, `return <ToastProvider><App name="demo" /></ToastProvider>;`)
}

func TestWrapJSX_UnsupportedShape(t *testing.T) {
	t.Parallel()

	content := "export const answer = 42;\n"
	out, strategy := wrapJSX(content, "ToastProvider")
	assert.Equal(t, WrapNone, strategy)
	assert.Equal(t, content, out)
}
