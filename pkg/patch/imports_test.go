package patch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImportSources(t *testing.T) {
	t.Parallel()

	content := []byte(`import React from "react";
import { useState } from 'react';
import App from "./App";
const styles = require("./styles");
`)

	got := extractImportSources(content)
	assert.Equal(t, []string{"react", "react", "./App", "./styles"}, got)
}

func TestHasProviderImport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "exact module specifier",
			content: `import { ToastProvider } from "../components/ToastProvider";`,
			want:    true,
		},
		{
			name:    "basename match with different prefix",
			content: `import { ToastProvider } from "@/components/ToastProvider";`,
			want:    true,
		},
		{
			name:    "named clause from another module",
			content: `import { ToastProvider } from "some-toast-library";`,
			want:    true,
		},
		{
			name:    "no provider import",
			content: `import React from "react";`,
			want:    false,
		},
		{
			name:    "identifier sharing a prefix does not count",
			content: `import { ToastProviderProps } from "./types";`,
			want:    false,
		},
		{
			name:    "empty file",
			content: ``,
			want:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hasProviderImport([]byte(tt.content), "ToastProvider", "../components/ToastProvider")
			if got != tt.want {
				t.Errorf("hasProviderImport = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertImport(t *testing.T) {
	t.Parallel()

	const line = `import { ToastProvider } from "./components/ToastProvider";`

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "after last import",
			content: `import React from "react";
import App from "./App";

const root = 1;
`,
			want: `import React from "react";
import App from "./App";
import { ToastProvider } from "./components/ToastProvider";

const root = 1;
`,
		},
		{
			name: "after multiline import",
			content: `import {
  StrictMode,
} from "react";

const root = 1;
`,
			want: `import {
  StrictMode,
} from "react";
import { ToastProvider } from "./components/ToastProvider";

const root = 1;
`,
		},
		{
			name:    "no imports",
			content: "const root = 1;\n",
			want:    line + "\nconst root = 1;\n",
		},
		{
			name:    "no imports after use client directive",
			content: "\"use client\";\nexport default function Page() {}\n",
			want:    "\"use client\";\n" + line + "\nexport default function Page() {}\n",
		},
		{
			name:    "empty file",
			content: "",
			want:    line + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := insertImport(context.Background(), []byte(tt.content), line)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
