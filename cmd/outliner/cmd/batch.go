package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chocothunder5013/coredump-round1a/internal/batch"
)

// batchCmd processes many PDFs in parallel and writes one JSON file per input.
var batchCmd = &cobra.Command{
	Use:   "batch [files or directories...]",
	Short: "Extract outlines for many PDFs in parallel",
	Long: `Process multiple PDF documents in parallel and write one <name>.json
outline per <name>.pdf into the output directory.

Arguments may be individual PDF files, directories, or a mix of both.
Directories are scanned for *.pdf files; --recursive descends into
subdirectories.

Examples:
  outliner batch input/
  outliner batch input/ --output output/ --workers 8
  outliner batch a.pdf b.pdf reports/ --recursive --exclude "draft_*"
  outliner batch input/ --continue-on-error=false --timeout 30s`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runBatchCommand,
}

func runBatchCommand(cmd *cobra.Command, args []string) error {
	cfg := buildBatchConfig(cmd)

	result, err := batch.ProcessBatch(cmd.Context(), args, &cfg)
	if err != nil {
		return err
	}

	if err := result.WriteOutputs(cfg.OutputDir); err != nil {
		return err
	}

	if cfg.ShowStats {
		result.PrintStats(cfg.Quiet)
	}

	if !cfg.ContinueOnError {
		return result.FirstError()
	}
	return nil
}

// buildBatchConfig resolves the batch configuration from the config file,
// environment and CLI flags, in ascending precedence.
func buildBatchConfig(cmd *cobra.Command) batch.Config {
	cfg := GetConfig().ToBatchConfig()
	applyEngineFlags(&cfg.Engine, cmd)

	flags := cmd.Flags()
	if flags.Changed("title-fallback") {
		cfg.TitleFallback, _ = flags.GetString("title-fallback")
	}
	if flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("continue-on-error") {
		cfg.ContinueOnError, _ = flags.GetBool("continue-on-error")
	}

	cfg.Recursive, _ = flags.GetBool("recursive")
	if flags.Changed("include") {
		cfg.IncludePatterns, _ = flags.GetStringSlice("include")
	}
	cfg.ExcludePatterns, _ = flags.GetStringSlice("exclude")

	cfg.ShowProgress, _ = flags.GetBool("progress")
	cfg.Quiet, _ = flags.GetBool("quiet")
	cfg.ShowStats, _ = flags.GetBool("stats")

	return cfg
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("output", "o", "output", "output directory for JSON files")
	batchCmd.Flags().IntP("workers", "w", 0, "number of parallel workers (0 = CPU cores)")
	batchCmd.Flags().Duration("timeout", 0, "per-document timeout (0 = no limit)")
	batchCmd.Flags().Bool("continue-on-error", true, "continue processing after per-document failures")
	batchCmd.Flags().BoolP("recursive", "r", false, "recurse into subdirectories")
	batchCmd.Flags().StringSlice("include", []string{"*.pdf"}, "glob patterns of files to include")
	batchCmd.Flags().StringSlice("exclude", nil, "glob patterns of files to exclude")
	batchCmd.Flags().Bool("progress", true, "show a progress bar on stderr")
	batchCmd.Flags().Bool("quiet", false, "suppress informational output")
	batchCmd.Flags().Bool("stats", true, "print processing statistics")
	registerEngineFlags(batchCmd)
}
