// cmd/gunamilan/match.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"guna-milan-workers/internal/common/logger"
	"guna-milan-workers/internal/gunamilan"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// ROOT
// =============================================================================

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gunamilan",
		Short:        "Vedic horoscope compatibility (Guna Milan) from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newMatchCmd())
	return root
}

// =============================================================================
// MATCH COMMAND
// =============================================================================

type matchOptions struct {
	male     string
	female   string
	lang     string
	pretty   bool
	logLevel string
}

func newMatchCmd() *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match --male FILE --female FILE",
		Short: "Compute the compatibility report for two persons",
		Long: `Reads one person per file (YAML, or JSON when the file ends in .json) with
birthDetails, astroDetails, planets and manglik, and prints the full report as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.male, "male", "", "person file for the first person")
	cmd.Flags().StringVar(&opts.female, "female", "", "person file for the second person")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "report language (en or hi)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level for diagnostics on stderr")
	_ = cmd.MarkFlagRequired("male")
	_ = cmd.MarkFlagRequired("female")

	return cmd
}

func runMatch(cmd *cobra.Command, opts *matchOptions) error {
	zapLog := logger.New(opts.logLevel, "console", "stderr")
	defer zapLog.Sync()

	male, err := readPerson(opts.male)
	if err != nil {
		return err
	}
	female, err := readPerson(opts.female)
	if err != nil {
		return err
	}

	result := gunamilan.Evaluate(male, female, opts.lang)
	logNotes(zapLog, "male", result.Male.Notes)
	logNotes(zapLog, "female", result.Female.Notes)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func readPerson(path string) (gunamilan.PersonInput, error) {
	var person gunamilan.PersonInput

	data, err := os.ReadFile(path)
	if err != nil {
		return person, fmt.Errorf("read person file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &person)
	} else {
		err = yaml.Unmarshal(data, &person)
	}
	if err != nil {
		return person, fmt.Errorf("parse %s: %w", path, err)
	}
	return person, nil
}

func logNotes(log *zap.Logger, who string, notes []gunamilan.Note) {
	for _, n := range notes {
		log.Warn("astro fact defaulted",
			zap.String("person", who),
			zap.String("field", n.Field),
			zap.String("raw", n.Raw),
			zap.String("applied", n.Applied),
		)
	}
}
