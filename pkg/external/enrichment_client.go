package external

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/alsftd-research/datasync/internal/domain"
)

const criteriaPromptFormat = "###\nInstruction: Provide a detailed list of inclusion and exclusion criteria.\n###\nEligibility Criteria: %s\n###\nResponse:"

const (
	inclusionHeading = "**Inclusion Criteria:**"
	exclusionHeading = "**Exclusion Criteria:**"
)

var listItemPrefix = regexp.MustCompile(`^(\d+\.\s*|-\s*|\*\s*)`)

// EnrichmentClient splits free-text eligibility criteria into structured
// inclusion and exclusion lists via an OpenAI-compatible completion
// server. It is strictly best-effort: every failure mode degrades to
// empty lists so a flaky model server can never block a sync run.
type EnrichmentClient struct {
	client  *openai.Client
	model   string
	cfg     *domain.EnrichmentConfig
	breaker *gobreaker.CircuitBreaker
	log     *logrus.Logger
}

// NewEnrichmentClient creates a client for the configured model server
func NewEnrichmentClient(cfg *domain.EnrichmentConfig, logger *logrus.Logger) *EnrichmentClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	opts := []option.RequestOption{
		option.WithMaxRetries(maxRetries),
		option.WithRequestTimeout(timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	client := openai.NewClient(opts...)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "enrichment",
		Timeout: 5 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &EnrichmentClient{
		client:  &client,
		model:   cfg.Model,
		cfg:     cfg,
		breaker: breaker,
		log:     logger,
	}
}

// Enrich sends the raw eligibility text to the model server and parses
// the response into inclusion and exclusion lists. On any failure it
// logs and returns empty lists rather than an error.
func (c *EnrichmentClient) Enrich(ctx context.Context, protocolID, criteriaText string) domain.EnrichedCriteria {
	empty := domain.EnrichedCriteria{Inclusion: []string{}, Exclusion: []string{}}

	if strings.TrimSpace(criteriaText) == "" {
		return empty
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.complete(ctx, fmt.Sprintf(criteriaPromptFormat, criteriaText))
	})
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"protocol_id": protocolID,
			"error":       err,
		}).Warn("Criteria enrichment failed, keeping empty lists")
		return empty
	}

	inclusion, exclusion := ParseCriteriaResponse(result.(string))
	c.log.WithFields(logrus.Fields{
		"protocol_id": protocolID,
		"inclusion":   len(inclusion),
		"exclusion":   len(exclusion),
	}).Debug("Criteria enriched")

	return domain.EnrichedCriteria{Inclusion: inclusion, Exclusion: exclusion}
}

// complete prefers the legacy text-completion endpoint, which most
// self-hosted OpenAI-compatible servers expose. Servers that only
// implement the chat endpoint return 404 there, so chat is the
// fallback shape.
func (c *EnrichmentClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Completions.New(ctx, openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(c.model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(prompt),
		},
		Temperature: openai.Float(c.cfg.Temperature),
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
	})
	if err == nil {
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no choices in completion response")
		}
		return resp.Choices[0].Text, nil
	}

	chatResp, chatErr := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.cfg.Temperature),
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
	})
	if chatErr != nil {
		return "", fmt.Errorf("completion failed (%v); chat fallback failed: %w", err, chatErr)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat response")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// ParseCriteriaResponse splits model output on the markdown criteria
// headings and extracts bulleted or numbered list items from each part.
func ParseCriteriaResponse(text string) (inclusion, exclusion []string) {
	parts := strings.SplitN(text, exclusionHeading, 2)

	inclusionText := ""
	if idx := strings.Index(parts[0], inclusionHeading); idx >= 0 {
		inclusionText = parts[0][idx+len(inclusionHeading):]
	}
	exclusionText := ""
	if len(parts) > 1 {
		exclusionText = parts[1]
	}

	return extractListItems(inclusionText), extractListItems(exclusionText)
}

func extractListItems(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if listItemPrefix.MatchString(line) {
			items = append(items, strings.TrimSpace(listItemPrefix.ReplaceAllString(line, "")))
		}
	}
	return items
}
