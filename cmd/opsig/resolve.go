package main

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mapleridge/opsig/internal/config"
	"github.com/mapleridge/opsig/internal/engine"
	"github.com/mapleridge/opsig/internal/engine/catalog"
	"github.com/mapleridge/opsig/internal/output"
	"github.com/mapleridge/opsig/internal/refdata"

	"github.com/mapleridge/opsig/internal/output/jsonout"

	// Register the remaining output formats.
	_ "github.com/mapleridge/opsig/internal/output/plain"
	_ "github.com/mapleridge/opsig/internal/output/table"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [combination]",
	Short: "Resolve an operation combination into ID signatures",
	Long: `Resolve a free-text combination of operation names into every valid
comma-separated ID signature. Slots are joined with +, alternatives within a
slot with /. With no argument, combinations are read line by line from stdin.

Examples:
  opsig resolve "上颌骨全切术+游离肌骨皮瓣修复术"
  opsig resolve --format table --out signatures.csv "游离皮瓣修复术"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.Load()

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		slog.Debug("catalog loaded", "names", cat.Len())

		eng := engine.New(cat, cfg.Engine.Threshold)

		w := os.Stdout
		if cfg.Output.Path != "" {
			f, err := os.Create(cfg.Output.Path)
			if err != nil {
				return errors.Wrap(err, "open output")
			}
			defer f.Close()
			w = f
		}

		var out output.Output
		if cfg.Output.Format == "json" && cfg.Output.Pretty {
			out = jsonout.New(w, true)
		} else {
			ctor, err := output.Get(cfg.Output.Format)
			if err != nil {
				return err
			}
			out = ctor(w)
		}
		defer out.Close()

		resolveOne := func(line string) error {
			res, err := eng.Resolve(line)
			if err != nil {
				return err
			}
			return out.Write(ctx, res)
		}

		if len(args) == 1 {
			return resolveOne(args[0])
		}

		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				continue
			}
			if err := resolveOne(line); err != nil {
				return err
			}
		}
		return errors.Wrap(sc.Err(), "read stdin")
	},
}

func init() {
	f := resolveCmd.Flags()
	f.String("catalog", "", "path to the catalog CSV (default: built-in catalog)")
	f.String("rules", "", "path to the multi-ID rules YAML")
	f.String("format", "plain", "output format: "+formatList())
	f.String("out", "", "write output to file instead of stdout")
	f.Bool("pretty", false, "pretty-print JSON output")
	f.Float64("threshold", 0.6, "minimum fuzzy-match similarity")

	_ = viper.BindPFlag("catalog_path", f.Lookup("catalog"))
	_ = viper.BindPFlag("rules_path", f.Lookup("rules"))
	_ = viper.BindPFlag("format", f.Lookup("format"))
	_ = viper.BindPFlag("out", f.Lookup("out"))
	_ = viper.BindPFlag("pretty", f.Lookup("pretty"))
	_ = viper.BindPFlag("threshold", f.Lookup("threshold"))
}

// loadCatalog builds the catalog from the configured files, or from the
// built-in reference data when no catalog path is set.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Reference.CatalogPath == "" {
		return catalog.New(catalog.DefaultEntries(), catalog.DefaultRules())
	}
	return refdata.Load(cfg.Reference.CatalogPath, cfg.Reference.RulesPath)
}

func formatList() string {
	s := ""
	for i, name := range output.Formats() {
		if i > 0 {
			s += ", "
		}
		s += name
	}
	return s
}
