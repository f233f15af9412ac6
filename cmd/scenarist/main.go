// Command scenarist generates structured test scenarios from a
// requirements file using an OpenRouter-backed generative model.
//
// Usage:
//
//	scenarist [flags] <requirements-file>
//
// YAML files are loaded as an already-normalized requirement set; any
// other supported extension goes through document ingestion. Set
// OPENROUTER_API_KEY (optionally via .env) for real generation, or pass
// -mock to run against canned drafts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"scenarist/internal/audit"
	"scenarist/internal/core"
	"scenarist/internal/llm"
	"scenarist/pkg/schema"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scenarist: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	numScenarios := flag.Int("n", 0, "number of scenarios to generate (0 = configured default)")
	detailLevel := flag.String("detail", "", "detail level: low, medium, high")
	priorityFocus := flag.String("priority", "", "keep only scenarios of this priority")
	customFocus := flag.String("focus", "", "comma-separated focus keywords to tag")
	backend := flag.String("backend", "direct", "generation backend: direct or genkit")
	useMock := flag.Bool("mock", false, "use the mock generator instead of a real model")
	auditDir := flag.String("audit-dir", "", "save the result to this audit directory")
	outPath := flag.String("o", "", "write the result JSON to this file instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: scenarist [flags] <requirements-file>")
	}
	inputPath := flag.Arg(0)

	// Absent .env files are fine; only malformed ones matter and those
	// surface on the variables they were meant to set.
	_ = godotenv.Load()

	cfg, err := core.LoadConfig()
	if err != nil {
		return err
	}
	log := core.NewLogger(cfg.LogLevel)

	generator, err := buildGenerator(cfg, log, *backend, *useMock)
	if err != nil {
		return err
	}

	orch := core.NewOrchestrator(generator, cfg, log)
	opts := core.GenerateOptions{
		NumScenarios:  *numScenarios,
		DetailLevel:   schema.DetailLevel(*detailLevel),
		PriorityFocus: *priorityFocus,
		CustomFocus:   splitFocus(*customFocus),
	}

	ctx := context.Background()
	result, err := generate(ctx, orch, inputPath, opts)
	if err != nil {
		return err
	}

	if *auditDir != "" {
		name, err := audit.NewStore(*auditDir).Save(result)
		if err != nil {
			return fmt.Errorf("save audit record: %w", err)
		}
		log.Info("audit record saved", "record", name, "dir", *auditDir)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if *outPath != "" {
		return os.WriteFile(*outPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}

// buildGenerator wires the selected generation backend.
func buildGenerator(cfg *core.Config, log core.Logger, backend string, useMock bool) (core.Generator, error) {
	if useMock {
		return llm.NewMockGenerator(), nil
	}

	client, err := llm.NewClient(&llm.Config{
		APIKey: cfg.OpenRouterAPIKey,
		Model:  cfg.DefaultModel,
		Logger: log,
	})
	if err != nil {
		return nil, err
	}

	switch backend {
	case "direct":
		return client, nil
	case "genkit":
		return llm.NewGenkitGenerator(context.Background(), client)
	default:
		return nil, fmt.Errorf("unknown backend %q (want direct or genkit)", backend)
	}
}

// generate picks the entry point by file extension: YAML loads directly,
// everything else goes through document ingestion.
func generate(ctx context.Context, orch *core.Orchestrator, path string, opts core.GenerateOptions) (*schema.GenerationResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return orch.FromDocument(ctx, path, opts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read requirements file: %w", err)
	}

	var set schema.RequirementSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse requirements file: %w", err)
	}
	if err := schema.ValidateRequirementSet(&set); err != nil {
		return nil, fmt.Errorf("invalid requirements file: %w", err)
	}

	return orch.FromRequirements(ctx, &set, opts)
}

// splitFocus parses the -focus flag into trimmed, non-empty phrases.
func splitFocus(raw string) []string {
	if raw == "" {
		return nil
	}
	phrases := []string{}
	for _, piece := range strings.Split(raw, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			phrases = append(phrases, piece)
		}
	}
	return phrases
}
