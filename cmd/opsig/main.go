package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mapleridge/opsig/internal/config"
	"github.com/mapleridge/opsig/internal/engine"
	"github.com/mapleridge/opsig/internal/engine/parser"
	"github.com/mapleridge/opsig/internal/logging"
	"github.com/mapleridge/opsig/internal/refdata"
)

// Exit codes let callers tell "fix your input" from "fix the reference
// data" from "manual confirmation needed".
const (
	exitFailure    = 1
	exitParse      = 2
	exitRefData    = 3
	exitUnresolved = 4
)

// errReported marks errors a subcommand has already written to the output
// stream; main only sets the exit code.
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:           "opsig",
	Short:         "Operation-signature resolver and macOS automation skills",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		cfg := config.Load()
		machine := cfg.Output.Format == "json" || cfg.Output.Format == "table"
		logging.Init(machine, logging.ParseLevel(cfg.Log.Level))
	},
}

func init() {
	config.Init()
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(notesCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(report(err))
	}
}

// report writes the error in the caller-selected form and picks the exit
// code for its condition class.
func report(err error) int {
	if errors.Is(err, errReported) {
		return exitFailure
	}

	code := exitFailure
	kind := "error"
	var (
		parseErr      *parser.ParseError
		refErr        *refdata.ReferenceDataError
		ambiguousErr  *engine.AmbiguousRuleContextError
		unresolvedErr *engine.UnresolvedOperationError
	)
	switch {
	case errors.As(err, &parseErr):
		code, kind = exitParse, "parse_error"
	case errors.As(err, &refErr):
		code, kind = exitRefData, "reference_data_error"
	case errors.As(err, &ambiguousErr):
		code, kind = exitUnresolved, "ambiguous_rule_context"
	case errors.As(err, &unresolvedErr):
		code, kind = exitUnresolved, "unresolved_operations"
	}

	if viper.GetString("format") == "json" {
		writeErrorEnvelope(kind, err, unresolvedErr)
		return code
	}

	fmt.Fprintf(os.Stderr, "opsig: %s: %v\n", kind, err)
	if unresolvedErr != nil {
		for _, r := range unresolvedErr.Unresolved {
			if r.Best != "" {
				fmt.Fprintf(os.Stderr, "  %s: closest match %q (score %.2f)\n", r.Input, r.Best, r.BestScore)
			}
		}
	}
	return code
}

func writeErrorEnvelope(kind string, err error, unresolved *engine.UnresolvedOperationError) {
	env := map[string]any{
		"success": false,
		"kind":    kind,
		"error":   err.Error(),
	}
	if unresolved != nil {
		type problem struct {
			Name      string  `json:"name"`
			Best      string  `json:"best,omitempty"`
			BestScore float64 `json:"best_score,omitempty"`
		}
		problems := make([]problem, len(unresolved.Unresolved))
		for i, r := range unresolved.Unresolved {
			problems[i] = problem{Name: r.Input, Best: r.Best, BestScore: r.BestScore}
		}
		env["unresolved"] = problems
	}
	_ = json.NewEncoder(os.Stdout).Encode(env)
}
