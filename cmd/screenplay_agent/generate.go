package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/screenplay-agent/internal/config"
	"github.com/jonathan/screenplay-agent/internal/pipeline"
	"github.com/spf13/cobra"
)

var generateCommand = &cobra.Command{
	Use:   "generate [idea]",
	Short: "Generate a screenplay from a story idea",
	Long: `Runs the full generation pipeline: logline -> outline -> characters -> scenes -> dialogue -> title -> formatting -> images -> PDF export.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerateCmd,
}

var (
	genConfigPath string
	genAPIKey     string
	genTextModel  string
	genImageModel string
	genImagesDir  string
	genOutputDir  string
	genVerbose    bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GOOGLE_API_KEY env var)")
	generateCommand.Flags().StringVarP(&genTextModel, "model", "m", "", "Model for text generation stages")
	generateCommand.Flags().StringVar(&genImageModel, "image-model", "", "Model for character image generation")
	generateCommand.Flags().StringVar(&genImagesDir, "images-dir", "", "Directory for character reference images")
	generateCommand.Flags().StringVarP(&genOutputDir, "output-dir", "o", "", "Directory for the finished PDF")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Apply CLI overrides (command-line args take priority).
	// Only override if the flag was explicitly set.
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.TextModel = genTextModel
	}
	if cmd.Flags().Changed("image-model") {
		cfg.ImageModel = genImageModel
	}
	if cmd.Flags().Changed("images-dir") {
		cfg.ImagesDir = genImagesDir
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = genOutputDir
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	// Environment, then built-in defaults, fill the rest.
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY environment variable or --api-key flag is required")
	}

	idea := strings.TrimSpace(strings.Join(args, " "))
	if idea == "" {
		return fmt.Errorf("story idea must not be empty")
	}

	start := time.Now()
	result, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Idea:       idea,
		APIKey:     cfg.APIKey,
		TextModel:  cfg.TextModel,
		ImageModel: cfg.ImageModel,
		ImagesDir:  cfg.ImagesDir,
		OutputDir:  cfg.OutputDir,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Round(time.Second)

	st := result.State
	fmt.Println(renderSummary("Screenplay Generated", []summaryRow{
		{Label: "Title", Value: st.Title},
		{Label: "Genre", Value: st.Genre},
		{Label: "Logline", Value: st.Logline},
		{Label: "Characters", Value: strconv.Itoa(len(st.Characters))},
		{Label: "Scenes", Value: strconv.Itoa(len(st.Scenes))},
		{Label: "Episodes", Value: strconv.Itoa(st.EpisodeCount)},
		{Label: "Pages", Value: strconv.Itoa(st.TotalPages)},
		{Label: "PDF", Value: st.PDFPath},
		{Label: "Generation Time", Value: elapsed.String()},
	}))

	return nil
}
