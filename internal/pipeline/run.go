// Package pipeline provides the high-level orchestration for the screenplay generation process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/screenplay-agent/internal/export"
	"github.com/jonathan/screenplay-agent/internal/imagegen"
	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/observability"
	"github.com/jonathan/screenplay-agent/internal/stages"
	"github.com/jonathan/screenplay-agent/internal/state"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Idea       string
	APIKey     string
	TextModel  string
	ImageModel string
	ImagesDir  string
	OutputDir  string
	Verbose    bool
	OnProgress ProgressCallback

	// Test seams: when non-nil these replace the real client, image
	// endpoint, and PDF writer.
	Client         llm.Client
	ImageGenerator stages.ImageGenerator
	Exporter       stages.Exporter
}

// Result is the final pipeline state plus run metadata.
type Result struct {
	RunID uuid.UUID
	State state.State
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, stage, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Stage:   stage,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

// RunPipeline orchestrates the full screenplay generation pipeline. Generation
// stages degrade to fallbacks on failure; only export failures (and client
// construction) abort the run.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New()

	client := opts.Client
	if client == nil {
		var err error
		client, err = llm.NewGeminiClient(ctx, opts.TextModel, opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("creating LLM client: %w", err)
		}
		defer client.Close()
	}

	generator := opts.ImageGenerator
	if generator == nil {
		generator = imagegen.New(opts.ImageModel, opts.APIKey, opts.ImagesDir)
	}

	exporter := opts.Exporter
	if exporter == nil {
		exporter = export.NewPDFExporter(opts.OutputDir)
	}

	pipeline := []stages.Stage{
		stages.Logline{Client: client},
		stages.Outline{Client: client},
		stages.Character{Client: client},
		stages.Scene{Client: client},
		stages.Dialogue{Client: client},
		stages.Title{},
		stages.Format{},
		stages.Image{Generator: generator},
		stages.Export{Exporter: exporter},
	}

	st := state.State{Idea: opts.Idea}
	for i, stage := range pipeline {
		fmt.Printf("Step %d/%d: Running %s stage...\n", i+1, len(pipeline), stage.Name())

		update, err := stage.Run(ctx, st)
		if err != nil {
			return nil, fmt.Errorf("%s stage failed: %w", stage.Name(), err)
		}
		update.Apply(&st)

		if opts.Verbose {
			printVerbose(printer, stage.Name(), st)
		}
		emitProgress(&opts, runID, stage.Name(),
			fmt.Sprintf("Completed %s stage", stage.Name()), nil)
	}

	if opts.Verbose {
		printer.PrintExportResult(st.PDFPath, st.TotalPages)
	}

	return &Result{RunID: runID, State: st}, nil
}

// printVerbose shows the artifacts a stage just produced.
func printVerbose(printer *observability.Printer, stage string, st state.State) {
	switch stage {
	case "logline":
		printer.PrintLogline(st.Logline, st.Genre, st.Tone)
	case "outline":
		printer.PrintOutline(st.Outline)
	case "character":
		printer.PrintCharacters(st.Characters)
	case "scene":
		printer.PrintScenes(st.Scenes, st.EpisodeCount)
	}
}
