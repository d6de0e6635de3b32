package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
)

// schemeFlags are the search tunables shared by derive, validate and
// preview. A zero seed keeps the time-seeded default.
type schemeFlags struct {
	palettePath   string
	mode          string
	seed          int64
	maxConfigs    int
	maxCandidates int
}

func registerSchemeFlags(cmd *cobra.Command, flags *schemeFlags) {
	cmd.Flags().StringVarP(&flags.palettePath, "palette", "p", "", "Path to palette file (YAML or JSON)")
	cmd.MarkFlagRequired("palette") //nolint:errcheck

	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "dark", "Scheme mode (dark or light)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed for reproducible enumeration (0 uses the clock)")
	cmd.Flags().IntVar(&flags.maxConfigs, "max-configs", scheme.DefaultMaxConfigurations, "Maximum configurations to enumerate")
	cmd.Flags().IntVar(&flags.maxCandidates, "max-candidates", scheme.DefaultMaxCandidatesPerToken, "Maximum candidates explored per token")
}

func validateSchemeFlags(flags schemeFlags) error {
	if strings.TrimSpace(flags.palettePath) == "" {
		return fmt.Errorf("palette file is required")
	}

	abs, err := filepath.Abs(flags.palettePath)
	if err != nil {
		return fmt.Errorf("resolve palette path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("palette file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("palette path %s is a directory", abs)
	}

	if !scheme.Mode(flags.mode).Valid() {
		return fmt.Errorf("unknown mode %q, expected dark or light", flags.mode)
	}
	if flags.maxConfigs <= 0 {
		return fmt.Errorf("max-configs must be positive")
	}
	if flags.maxCandidates <= 0 {
		return fmt.Errorf("max-candidates must be positive")
	}

	return nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func newEnumerator(flags schemeFlags) *scheme.Enumerator {
	return scheme.NewEnumerator(scheme.Options{
		MaxConfigurations:     flags.maxConfigs,
		MaxCandidatesPerToken: flags.maxCandidates,
		Rand:                  newRand(flags.seed),
	})
}

func logLevel(root *rootFlags) string {
	if root.verbose {
		return "debug"
	}
	return "info"
}
