package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/config"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/locate"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/manifest"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/stack"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected stack and root file without changing anything",
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}

	m, err := manifest.Load(projectDir)
	if err != nil {
		return err
	}
	name := m.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(out, "%s%s", labelStyle.Render("project: "), name)
	if m.Version != "" {
		fmt.Fprintf(out, "@%s", m.Version)
	}
	fmt.Fprintln(out)

	def, err := stack.NewDetector(nil).Detect(projectDir, m)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s%s\n", labelStyle.Render("stack:   "), def.Stack)

	rootRel, err := locate.RootFile(projectDir, def, cfg.Root)
	switch {
	case errors.Is(err, locate.ErrNoRootFile):
		fmt.Fprintf(out, "%s%s\n", labelStyle.Render("root:    "), errorStyle.Render("not found"))
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "%s%s\n", labelStyle.Render("root:    "), rootRel)
	}
	return nil
}
