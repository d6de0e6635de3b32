package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromatone/internal/logger"
	"github.com/alexisbeaulieu97/chromatone/internal/palette"
	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
)

type deriveOptions struct {
	schemeFlags
	jsonOutput bool
}

var deriveCmdRunner = runDerive

func newDeriveCmd(root *rootFlags) *cobra.Command {
	opts := deriveOptions{}

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Enumerate color scheme configurations for a palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSchemeFlags(opts.schemeFlags); err != nil {
				return err
			}
			return deriveCmdRunner(cmd, root, opts)
		},
	}

	registerSchemeFlags(cmd, &opts.schemeFlags)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output configurations as JSON")

	return cmd
}

func runDerive(cmd *cobra.Command, root *rootFlags, opts deriveOptions) error {
	log, err := logger.New(logger.Options{Level: logLevel(root), HumanReadable: true})
	if err != nil {
		return err
	}
	log = log.ForComponent("derive")

	colors, err := palette.ParseFile(opts.palettePath)
	if err != nil {
		return err
	}
	log.WithFields(map[string]any{"colors": len(colors), "mode": opts.mode}).Debug("palette loaded")

	enumerator := newEnumerator(opts.schemeFlags)
	mode := scheme.Mode(opts.mode)

	configs, err := enumerator.Enumerate(colors, mode)
	if err != nil {
		return err
	}

	classified := palette.Classify(colors)
	destructive := scheme.PickDestructive(classified.DestructiveCandidates, newRand(opts.seed))

	if opts.jsonOutput {
		return renderDeriveJSON(cmd, configs, destructive, mode)
	}
	return renderDeriveText(cmd, configs, destructive, mode)
}

func renderDeriveText(cmd *cobra.Command, configs []scheme.Configuration, destructive palette.Color, mode scheme.Mode) error {
	out := cmd.OutOrStdout()

	if len(configs) == 0 {
		fmt.Fprintf(out, "no %s-mode configuration satisfies the constraints for this palette\n", mode)
		return nil
	}

	fmt.Fprintf(out, "%d %s-mode configuration(s)\n", len(configs), mode)
	for i, cfg := range configs {
		fmt.Fprintf(out, "\n[%d] %s\n", i+1, cfg.ID)
		for _, token := range scheme.TokenOrder {
			c := cfg.Tokens[token]
			fmt.Fprintf(out, "  %-14s %s  %s\n", token, c.Hex(), c.Name)
		}
		fmt.Fprintf(out, "  %-14s %s  %s\n", scheme.TokenDestructive, destructive.Hex(), destructive.Name)
	}

	return nil
}

type deriveJSONPayload struct {
	Mode           scheme.Mode         `json:"mode"`
	Configurations []configJSONPayload `json:"configurations"`
	Destructive    tokenColorJSON      `json:"destructive"`
}

type configJSONPayload struct {
	ID     string                    `json:"id"`
	Tokens map[string]tokenColorJSON `json:"tokens"`
}

type tokenColorJSON struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

func renderDeriveJSON(cmd *cobra.Command, configs []scheme.Configuration, destructive palette.Color, mode scheme.Mode) error {
	payload := deriveJSONPayload{
		Mode:           mode,
		Configurations: make([]configJSONPayload, 0, len(configs)),
		Destructive:    tokenColorJSON{Name: destructive.Name, Hex: destructive.Hex()},
	}

	for _, cfg := range configs {
		entry := configJSONPayload{ID: cfg.ID, Tokens: make(map[string]tokenColorJSON, len(cfg.Tokens))}
		for token, c := range cfg.Tokens {
			entry.Tokens[string(token)] = tokenColorJSON{Name: c.Name, Hex: c.Hex()}
		}
		payload.Configurations = append(payload.Configurations, entry)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
