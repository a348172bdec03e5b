package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chocothunder5013/coredump-round1a/internal/batch"
	"github.com/chocothunder5013/coredump-round1a/internal/extractor"
	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// extractCmd processes a single PDF and prints or writes its outline.
var extractCmd = &cobra.Command{
	Use:   "extract [file.pdf]",
	Short: "Extract the outline of a single PDF document",
	Long: `Extract the hierarchical outline of one PDF document and emit it as JSON:
{"title": ..., "outline": [{"level": "H1", "text": ..., "page": ...}, ...]}

Examples:
  outliner extract document.pdf
  outliner extract document.pdf -o document.json
  outliner extract document.pdf --max-depth 3 --title-fallback empty`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runExtractCommand,
}

func runExtractCommand(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	engineConfig := cfg.ToEngineConfig()
	applyEngineFlags(&engineConfig, cmd)

	titleFallback := cfg.Engine.TitleFallback
	if cmd.Flags().Changed("title-fallback") {
		titleFallback, _ = cmd.Flags().GetString("title-fallback")
	}

	engine, err := outline.NewEngine(engineConfig)
	if err != nil {
		return err
	}

	o, err := batch.ProcessDocument(cmd.Context(), extractor.New(), engine, args[0], titleFallback)
	if err != nil {
		return err
	}

	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile != "" {
		if err := batch.WriteOutline(outputFile, o); err != nil {
			return err
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Outline written to %s\n", outputFile)
		}
		return nil
	}

	data, err := batch.MarshalOutline(o)
	if err != nil {
		return err
	}
	_, _ = cmd.OutOrStdout().Write(data)
	return nil
}

// applyEngineFlags overlays CLI engine flags on the resolved configuration.
func applyEngineFlags(cfg *outline.Config, cmd *cobra.Command) {
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxHeadingDepth, _ = cmd.Flags().GetInt("max-depth")
	}
	if cmd.Flags().Changed("min-run-area") {
		cfg.MinRunArea, _ = cmd.Flags().GetFloat64("min-run-area")
	}
	if cmd.Flags().Changed("title-gate") {
		cfg.TitlePositionGate, _ = cmd.Flags().GetFloat64("title-gate")
	}
	if cmd.Flags().Changed("size-epsilon") {
		cfg.SizeEpsilon, _ = cmd.Flags().GetFloat64("size-epsilon")
	}
}

// registerEngineFlags declares the engine tuning flags shared by extract and
// batch.
func registerEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-depth", 0, "maximum heading depth (H1..Hn)")
	cmd.Flags().Float64("min-run-area", 0, "minimum run bounding-box area in square points")
	cmd.Flags().Float64("title-gate", 0, "title position gate as a fraction of page height (0.0-1.0)")
	cmd.Flags().Float64("size-epsilon", 0, "normalized size distance for style cluster merging")
	cmd.Flags().String("title-fallback", "", "title policy without a detected title: filename, first-heading, empty")
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().Bool("quiet", false, "suppress informational output")
	registerEngineFlags(extractCmd)
}
