package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/chromatone/internal/palette"
	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
	"github.com/alexisbeaulieu97/chromatone/internal/tui"
)

var previewCmdRunner = runPreview

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := schemeFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse enumerated configurations interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSchemeFlags(opts); err != nil {
				return err
			}
			return previewCmdRunner(cmd, root, opts)
		},
	}

	registerSchemeFlags(cmd, &opts)

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts schemeFlags) error {
	colors, err := palette.ParseFile(opts.palettePath)
	if err != nil {
		return err
	}

	rng := newRand(opts.seed)
	enumerator := scheme.NewEnumerator(scheme.Options{
		MaxConfigurations:     opts.maxConfigs,
		MaxCandidatesPerToken: opts.maxCandidates,
		Rand:                  rng,
	})
	cache := scheme.NewCache(enumerator.Enumerate)

	browser := tui.NewBrowser(colors, scheme.Mode(opts.mode), cache, rng)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(cmd.OutOrStdout(), browser.View())
		return nil
	}

	_, err = tea.NewProgram(browser, tea.WithAltScreen()).Run()
	return err
}
