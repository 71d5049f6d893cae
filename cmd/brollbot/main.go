package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dakotahermes/brollbot22/broll"
	"github.com/dakotahermes/brollbot22/internal/models"
	"github.com/dakotahermes/brollbot22/shared/ai"
	"github.com/dakotahermes/brollbot22/shared/cache"
	"github.com/dakotahermes/brollbot22/shared/config"
)

func main() {
	var (
		script      = flag.String("script", "", "Ad script text (or use -script-file)")
		scriptFile  = flag.String("script-file", "", "Path to a file containing the ad script")
		tone        = flag.String("tone", string(models.ToneHook), toneUsage())
		format      = flag.String("format", string(models.FormatUGC), formatUsage())
		duration    = flag.Int("duration", 0, "Clip duration in seconds (1-30, default from config)")
		aspectRatio = flag.String("aspect-ratio", "", "Aspect ratio, e.g. 9:16 (default from config)")
		outFormat   = flag.String("out", "json", "Output format: json or csv")
		outFile     = flag.String("o", "", "Output file (default stdout)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	text, err := readScript(*script, *scriptFile)
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}

	in, err := models.NewScriptInputWithBounds(text, models.Tone(*tone), models.Format(*format),
		cfg.Script.MinLength, cfg.Script.MaxLength)
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := ai.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	parser := broll.NewParser(client, cache.New(cfg.Cache.TTL()), cfg.AI.DecomposeTimeout())
	assessor := broll.NewAssessor(client, cfg.AI.FeasibilityTimeout())
	synthesizer := broll.NewSynthesizer(assessor, cfg.Output.ConfidenceThreshold)
	pipeline := broll.NewPipeline(parser, synthesizer)

	opts := broll.SynthesisOptions{Duration: *duration, AspectRatio: *aspectRatio}
	if opts.Duration == 0 {
		opts.Duration = cfg.Output.DefaultDuration
	}
	if opts.AspectRatio == "" {
		opts.AspectRatio = cfg.Output.DefaultAspectRatio
	}
	if opts.Duration < models.MinPromptDuration || opts.Duration > models.MaxPromptDuration {
		log.Fatalf("Duration must be %d-%d seconds", models.MinPromptDuration, models.MaxPromptDuration)
	}

	result, err := pipeline.Run(ctx, in, opts)
	if err != nil {
		log.Fatalf("%s", broll.FailureMessage(err))
	}

	fmt.Fprintln(os.Stderr, result.Message)

	out := io.Writer(os.Stdout)
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	switch *outFormat {
	case "csv":
		err = broll.WriteCSV(out, result.Prompts)
	case "json":
		err = broll.WriteJSON(out, result.Prompts)
	default:
		log.Fatalf("Unknown output format %q (want json or csv)", *outFormat)
	}
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func readScript(inline, path string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path == "" {
		return "", fmt.Errorf("provide -script or -script-file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func toneUsage() string {
	values := make([]string, 0, len(models.Tones()))
	for _, t := range models.Tones() {
		values = append(values, string(t))
	}
	return "Target tone: " + strings.Join(values, ", ")
}

func formatUsage() string {
	values := make([]string, 0, len(models.Formats()))
	for _, f := range models.Formats() {
		values = append(values, string(f))
	}
	return "Ad format: " + strings.Join(values, ", ")
}
