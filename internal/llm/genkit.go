package llm

import (
	"context"
	"strings"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"scenarist/pkg/schema"
)

// GenkitModelName is the name the OpenRouter backend is registered under.
const GenkitModelName = "scenarist/openrouter"

// GenkitGenerator exposes scenario generation through Genkit, with the
// OpenRouter client registered as a Genkit model provider. It satisfies
// the same Generator contract as Client and is selectable as an
// alternative backend.
type GenkitGenerator struct {
	g      *genkit.Genkit
	client *Client
	log    Logger
}

// NewGenkitGenerator registers the OpenRouter backend as a Genkit model
// and returns a generator that routes completions through it.
func NewGenkitGenerator(ctx context.Context, client *Client) (*GenkitGenerator, error) {
	g := genkit.Init(ctx)

	genkit.DefineModel(
		g,
		GenkitModelName,
		&ai.ModelOptions{
			Label: "OpenRouter chat completions",
			Supports: &ai.ModelSupports{
				Multiturn:  true,
				SystemRole: true,
			},
		},
		func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
			content, err := client.complete(ctx, flattenMessages(req.Messages))
			if err != nil {
				return nil, err
			}
			return &ai.ModelResponse{
				Request: req,
				Message: &ai.Message{
					Content: []*ai.Part{
						ai.NewTextPart(content),
					},
				},
			}, nil
		},
	)

	return &GenkitGenerator{g: g, client: client, log: client.log}, nil
}

// Generate produces scenario drafts by running the generation prompt
// through the registered Genkit model.
func (gg *GenkitGenerator) Generate(
	ctx context.Context,
	set *schema.RequirementSet,
	numScenarios int,
	detailLevel schema.DetailLevel,
) (*schema.GenerationOutput, error) {
	prompt := BuildScenarioPrompt(set, numScenarios, detailLevel)

	gg.log.Info("scenario generation request (genkit)",
		"model", GenkitModelName,
		"requirements", len(set.Requirements),
		"scenarios_requested", numScenarios,
	)

	start := time.Now()
	resp, err := genkit.Generate(ctx, gg.g,
		ai.WithModelName(GenkitModelName),
		ai.WithPrompt(prompt),
	)
	elapsed := time.Since(start)

	if err != nil {
		return nil, err
	}

	content := resp.Text()
	drafts, err := ParseDrafts(content)
	if err != nil {
		return nil, err
	}

	return &schema.GenerationOutput{
		Drafts: drafts,
		Metadata: map[string]any{
			"model":                   gg.client.config.Model,
			"backend":                 "genkit",
			"generation_time_seconds": elapsed.Seconds(),
			"requirements_count":      len(set.Requirements),
			"scenarios_requested":     numScenarios,
			"scenarios_parsed":        len(drafts),
		},
		RawResponse: content,
	}, nil
}

// flattenMessages joins the text parts of a Genkit request back into the
// single-prompt form the OpenRouter call expects.
func flattenMessages(messages []*ai.Message) string {
	var sb strings.Builder
	for _, msg := range messages {
		for _, part := range msg.Content {
			if part.IsText() {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}
