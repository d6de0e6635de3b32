package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromatone/internal/logger"
	"github.com/alexisbeaulieu97/chromatone/internal/palette"
	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
)

var validateCmdRunner = runValidate

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := schemeFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a palette supports at least one scheme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSchemeFlags(opts); err != nil {
				return err
			}
			return validateCmdRunner(cmd, root, opts)
		},
	}

	registerSchemeFlags(cmd, &opts)

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootFlags, opts schemeFlags) error {
	log, err := logger.New(logger.Options{Level: logLevel(root), HumanReadable: true})
	if err != nil {
		return err
	}
	log = log.ForComponent("validate")

	colors, err := palette.ParseFile(opts.palettePath)
	if err != nil {
		return err
	}
	log.WithFields(map[string]any{"colors": len(colors), "mode": opts.mode}).Debug("palette loaded")

	enumerator := newEnumerator(opts)
	check, err := enumerator.ValidatePalette(colors, scheme.Mode(opts.mode))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !check.Valid {
		fmt.Fprintf(out, "palette does not support a %s-mode scheme\n", opts.mode)
		return fmt.Errorf("no valid configuration for mode %s", opts.mode)
	}

	fmt.Fprintf(out, "palette supports %s mode: %d configuration(s)\n", opts.mode, check.ConfigCount)
	return nil
}
