package core

import (
	"context"

	"scenarist/internal/ingest"
	"scenarist/pkg/schema"
)

// Generator abstracts the generation client for testability. Implemented
// by llm.Client, llm.GenkitGenerator, and llm.MockGenerator.
type Generator interface {
	Generate(ctx context.Context, set *schema.RequirementSet, numScenarios int, detailLevel schema.DetailLevel) (*schema.GenerationOutput, error)
}

// DocumentExtractor extracts a requirement set from a document on disk.
type DocumentExtractor interface {
	Extract(path string) (*schema.RequirementSet, error)
}

// IssueExportExtractor extracts a requirement set from an issue-tracker export.
type IssueExportExtractor interface {
	Extract(payload []byte) (*schema.RequirementSet, error)
}

// TextExtractor extracts a requirement set from free-form text.
type TextExtractor interface {
	Extract(text string) (*schema.RequirementSet, error)
}

// GenerateOptions are the per-call knobs shared by all entry points.
// A zero NumScenarios takes the configured default; negative values are
// passed through to the generation client untouched. An empty DetailLevel
// takes the configured default; an unrecognized one is coerced to medium
// with a logged warning, never an error. PriorityFocus drops non-matching
// scenarios after generation; CustomFocus phrases are tagged onto
// scenarios that mention them.
type GenerateOptions struct {
	NumScenarios  int
	DetailLevel   schema.DetailLevel
	PriorityFocus string
	CustomFocus   []string
}

// Orchestrator exposes the four generation entry points, which differ only
// in how the requirement set is obtained. All of them funnel through one
// generate path: ingest, call the generation client exactly once, enrich,
// assemble. It holds no mutable state beyond read-only configuration, so
// concurrent calls need no coordination.
type Orchestrator struct {
	generator Generator
	documents DocumentExtractor
	issues    IssueExportExtractor
	text      TextExtractor
	cfg       *Config
	log       Logger
}

// NewOrchestrator creates an orchestrator with the default ingestion
// collaborators.
func NewOrchestrator(generator Generator, cfg *Config, log Logger) *Orchestrator {
	return &Orchestrator{
		generator: generator,
		documents: ingest.NewDocumentExtractor(),
		issues:    ingest.NewJiraExtractor(),
		text:      ingest.NewTextExtractor(),
		cfg:       cfg,
		log:       log,
	}
}

// NewOrchestratorWithExtractors creates an orchestrator with explicit
// ingestion collaborators.
func NewOrchestratorWithExtractors(
	generator Generator,
	documents DocumentExtractor,
	issues IssueExportExtractor,
	text TextExtractor,
	cfg *Config,
	log Logger,
) *Orchestrator {
	return &Orchestrator{
		generator: generator,
		documents: documents,
		issues:    issues,
		text:      text,
		cfg:       cfg,
		log:       log,
	}
}

// FromRequirements generates scenarios for an already-parsed requirement set.
func (o *Orchestrator) FromRequirements(ctx context.Context, set *schema.RequirementSet, opts GenerateOptions) (*schema.GenerationResult, error) {
	return o.generate(ctx, func() (*schema.RequirementSet, error) {
		return set, nil
	}, opts)
}

// FromDocument generates scenarios from a requirements document on disk.
// Extraction failures surface unchanged as *ingest.Error.
func (o *Orchestrator) FromDocument(ctx context.Context, path string, opts GenerateOptions) (*schema.GenerationResult, error) {
	return o.generate(ctx, func() (*schema.RequirementSet, error) {
		return o.documents.Extract(path)
	}, opts)
}

// FromIssueExport generates scenarios from an issue-tracker export payload.
func (o *Orchestrator) FromIssueExport(ctx context.Context, payload []byte, opts GenerateOptions) (*schema.GenerationResult, error) {
	return o.generate(ctx, func() (*schema.RequirementSet, error) {
		return o.issues.Extract(payload)
	}, opts)
}

// FromText generates scenarios from free-form requirement text.
func (o *Orchestrator) FromText(ctx context.Context, text string, opts GenerateOptions) (*schema.GenerationResult, error) {
	return o.generate(ctx, func() (*schema.RequirementSet, error) {
		return o.text.Extract(text)
	}, opts)
}

// generate is the single enrichment call site behind every entry point.
// Callers get a complete GenerationResult or an error, never a partial
// result: ingestion and generation failures abort the whole call.
func (o *Orchestrator) generate(
	ctx context.Context,
	provide func() (*schema.RequirementSet, error),
	opts GenerateOptions,
) (*schema.GenerationResult, error) {
	opts = o.normalizeOptions(opts)

	set, err := provide()
	if err != nil {
		return nil, err
	}

	output, err := o.generator.Generate(ctx, set, opts.NumScenarios, opts.DetailLevel)
	if err != nil {
		return nil, err
	}

	scenarios := EnrichScenarios(output.Drafts, set, opts.PriorityFocus, opts.CustomFocus)

	o.log.Info("scenario generation finished",
		"drafts", len(output.Drafts),
		"scenarios", len(scenarios),
		"priority_focus", opts.PriorityFocus,
	)

	return AssembleResult(scenarios, output, opts.PriorityFocus, opts.CustomFocus), nil
}

// normalizeOptions applies configured defaults and coerces an invalid
// detail level to medium with a non-fatal warning.
func (o *Orchestrator) normalizeOptions(opts GenerateOptions) GenerateOptions {
	if opts.NumScenarios == 0 {
		opts.NumScenarios = o.cfg.DefaultNumScenarios
	}

	switch {
	case opts.DetailLevel == "":
		opts.DetailLevel = o.cfg.DefaultDetailLevel
	case !opts.DetailLevel.Valid():
		o.log.Warn("invalid detail level, using medium", "detail_level", string(opts.DetailLevel))
		opts.DetailLevel = schema.DetailMedium
	}

	return opts
}
