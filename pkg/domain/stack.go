// Package domain defines the core types shared by the scaffolding pipeline.
package domain

// Stack identifies the frontend stack of a project.
type Stack string

// Supported stacks. Detection falls through to StackReact when nothing
// more specific matches.
const (
	StackNext        Stack = "next"
	StackReactNative Stack = "react-native"
	StackReact       Stack = "react"
)

// TemplateKind selects which provider template a stack receives.
type TemplateKind string

const (
	TemplateWeb    TemplateKind = "web"
	TemplateNative TemplateKind = "native"
)

// DefaultProvider is the component name injected into root files when the
// project config does not override it.
const DefaultProvider = "ToastProvider"
