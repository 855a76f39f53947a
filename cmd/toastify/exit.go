package main

import (
	"errors"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/locate"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/scaffold"
)

// Process exit codes. Everything else fails with 1.
const (
	exitOK              = 0
	exitFailure         = 1
	exitNoRootFile      = 2
	exitTemplateMissing = 3
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, locate.ErrNoRootFile):
		return exitNoRootFile
	case errors.Is(err, scaffold.ErrTemplateMissing):
		return exitTemplateMissing
	default:
		return exitFailure
	}
}
