package llm

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	genai "google.golang.org/genai"

	"fertcost/internal/errors"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient creates a Gemini-backed client for the given model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.Config("API key is empty")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(errors.TypeService, "create genai client", err)
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

// GeminiFactory returns a Factory that reads the API key from the
// environment (a .env file is honored, matching local development
// setups) and validates its presence before any network attempt.
func GeminiFactory(apiKeyEnv, model string) Factory {
	if apiKeyEnv == "" {
		apiKeyEnv = "GEMINI_API_KEY"
	}
	return func(ctx context.Context) (Client, error) {
		_ = godotenv.Load()
		apiKey := os.Getenv(apiKeyEnv)
		if apiKey == "" {
			return nil, errors.Newf(errors.TypeConfig,
				"%s is not set; export it or add it to a .env file", apiKeyEnv)
		}
		return NewGeminiClient(ctx, apiKey, model)
	}
}

// Name identifies the backing model
func (g *GeminiClient) Name() string { return "Gemini:" + g.model }

// generationConfig maps Options onto the wire config. Zero-valued
// options stay unset so the service default applies rather than
// pinning an explicit 0.
func generationConfig(opts Options) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		cfg.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.CandidateCount > 0 {
		cfg.CandidateCount = opts.CandidateCount
	}
	return cfg
}

// GenerateText sends the prompt with the given generation parameters
// and returns the concatenated candidate text. Single attempt, no
// retries.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string, opts Options) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		generationConfig(opts),
	)
	if err != nil {
		return "", errors.Wrap(errors.TypeService, "generate content", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New(errors.TypeService, "model returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
