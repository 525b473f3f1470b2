package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"statline/adapters/export"
	"statline/domain/core"
	"statline/domain/player"
	"statline/internal/analysis"
	"statline/internal/catalog"
	"statline/internal/config"
	"statline/internal/generator"
	"statline/internal/report"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the generation flags every subcommand shares.
type options struct {
	seed        int64
	count       int
	catalogFile string
	batchLimit  int
	exportDir   string
	strict      bool
}

func (o *options) config() (generator.Config, error) {
	cat, err := catalog.Load(o.catalogFile)
	if err != nil {
		return generator.Config{}, err
	}
	return generator.Config{Seed: o.seed, Count: o.count, Catalog: cat, Strict: o.strict}, nil
}

func (o *options) population() ([]player.Record, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return generator.GenerateWith(cfg)
}

func newRootCmd() *cobra.Command {
	opts := &options{seed: generator.DefaultSeed, count: generator.DefaultCount, batchLimit: 4, exportDir: "exports"}
	cfg, loadErr := config.Load()
	if loadErr == nil {
		opts.seed = cfg.Generation.Seed
		opts.count = cfg.Generation.Count
		opts.catalogFile = cfg.Generation.CatalogFile
		opts.batchLimit = cfg.Generation.BatchLimit
		opts.exportDir = cfg.Paths.ExportDir
	}

	rootCmd := &cobra.Command{
		Use:           "statline",
		Short:         "Generate and analyze deterministic synthetic baseball player populations",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags can override the environment, but a malformed environment is still an error.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadErr
		},
	}
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", opts.seed, "Random seed; the same seed always yields the same players")
	rootCmd.PersistentFlags().IntVar(&opts.count, "count", opts.count, "Number of players to generate")
	rootCmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", opts.catalogFile, "YAML catalog overlay (names, teams, positions)")
	rootCmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Validate every generated record")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newExportCmd(opts),
		newLeadersCmd(opts),
		newCompareCmd(opts),
		newBatchCmd(opts),
	)
	return rootCmd
}

func newGenerateCmd(opts *options) *cobra.Command {
	var out, expect string
	var compact, summary bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate players and print them as JSON",
		Long: `Generate a population and write it as a JSON array, to stdout or to --out.

Example: statline generate --seed 7 --count 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := opts.population()
			if err != nil {
				return err
			}
			if expect != "" {
				got, err := core.HashJSON(records)
				if err != nil {
					return err
				}
				if err := core.VerifyFingerprint(core.Hash(expect), got); err != nil {
					return err
				}
			}
			if summary {
				for i := range records {
					fmt.Fprintln(cmd.OutOrStdout(), report.PlayerSummary(&records[i]))
				}
				return nil
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := (export.JSON{Indent: !compact}).Export(w, records); err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "✅ Wrote %d players to %s\n", len(records), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&compact, "compact", false, "Emit compact JSON")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print one summary line per player instead of JSON")
	cmd.Flags().StringVar(&expect, "expect", "", "Fail unless the population has this fingerprint")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export players to csv, json or xlsx",
		Long: `Export a population to a file. The format comes from --format, or from the
extension of --out when --format is empty.

Without --out the file goes to EXPORT_DIR as players-seed<seed>.<format>.

Example: statline export --out exports/players.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				if format == "" {
					format = "csv"
				}
				out = filepath.Join(opts.exportDir, fmt.Sprintf("players-seed%d.%s", opts.seed, format))
			} else if format != "" && !strings.EqualFold(strings.TrimPrefix(filepath.Ext(out), "."), format) {
				out += "." + format
			}

			records, err := opts.population()
			if err != nil {
				return err
			}
			start := time.Now()
			if err := export.WriteFile(out, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d players to %s in %v\n", len(records), out, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: "+strings.Join(export.Formats, "|"))
	return cmd
}

func newLeadersCmd(opts *options) *cobra.Command {
	var limit int
	var markdown bool

	cmd := &cobra.Command{
		Use:   "leaders [category]",
		Short: "Rank players in a statistical category",
		Long: `Rank the population in a category such as HR, AVG, ERA, K or WAR.

Example: statline leaders ERA --limit 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "WAR"
			if len(args) == 1 {
				category = args[0]
			}
			records, err := opts.population()
			if err != nil {
				return err
			}
			board, err := analysis.Leaders(records, category, limit)
			if err != nil {
				return err
			}
			if markdown {
				fmt.Fprint(cmd.OutOrStdout(), report.LeaderboardMarkdown(board))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🏆 %s leaders\n", board.Metric.Label)
			for _, l := range board.Leaders {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d. %-22s %-4s %-3s %10.3f\n", l.Rank, l.Name, l.Team, l.Position, l.Value)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of leaders to show (0 for all)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print a markdown table")
	return cmd
}

func newCompareCmd(opts *options) *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "compare [player-id] [player-id]",
		Short: "Compare two players and assess a trade between them",
		Long: `Compare two players side by side and report the value differential of a swap.

Example: statline compare 1000 1001`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 2)
			for i, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid player id %q", arg)
				}
				ids[i] = id
			}
			records, err := opts.population()
			if err != nil {
				return err
			}
			cmp, err := analysis.CompareByID(records, ids[0], ids[1])
			if err != nil {
				return err
			}
			if html {
				_, err = cmd.OutOrStdout().Write(report.ComparisonHTML(cmp))
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.ComparisonMarkdown(cmp))
			return nil
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "Render the report as HTML")
	return cmd
}

func newBatchCmd(opts *options) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch [seed...]",
		Short: "Generate several populations concurrently and print their fingerprints",
		Long: `Generate one population per seed, at most --limit at a time, and print each
population's fingerprint. Identical seeds always print identical fingerprints.

Example: statline batch 1 2 3 42 --count 1000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := make([]int64, len(args))
			for i, arg := range args {
				seed, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid seed %q", arg)
				}
				seeds[i] = seed
			}
			base, err := opts.config()
			if err != nil {
				return err
			}

			results, err := generator.GenerateBatch(context.Background(), base, seeds, limit)
			if err != nil {
				return err
			}

			type row struct {
				Seed        int64  `json:"seed"`
				Count       int    `json:"count"`
				Fingerprint string `json:"fingerprint"`
			}
			rows := make([]row, len(seeds))
			for i, records := range results {
				fp, err := core.HashJSON(records)
				if err != nil {
					return err
				}
				rows[i] = row{Seed: seeds[i], Count: len(records), Fingerprint: fp.String()}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "seed %-12d %6d players  %s\n", r.Seed, r.Count, r.Fingerprint)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", opts.batchLimit, "Maximum populations generated at once")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}
