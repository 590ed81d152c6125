package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"mealplanner/internal/grocery"

	"github.com/go-resty/resty/v2"
)

const openAIBaseURL = "https://api.openai.com/v1"

type OpenAIClient struct {
	http  *resty.Client
	model string
}

func NewOpenAIClient() *OpenAIClient {
	client := resty.New().
		SetBaseURL(openAIBaseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Authorization", "Bearer "+os.Getenv("OPENAI_API_KEY")).
		SetHeader("Content-Type", "application/json")

	return &OpenAIClient{
		http:  client,
		model: os.Getenv("OPENAI_MODEL"),
	}
}

// EnhanceShoppingList sends the aggregated list to OpenAI and
// guarantees JSON-only output.
func (o *OpenAIClient) EnhanceShoppingList(
	ctx context.Context,
	items []grocery.AggregatedItem,
	categories []string,
) (string, error) {

	if os.Getenv("OPENAI_API_KEY") == "" {
		return "", errors.New("missing OPENAI_API_KEY")
	}
	if o.model == "" {
		return "", errors.New("missing OPENAI_MODEL")
	}
	if len(items) == 0 {
		return "", errors.New("empty shopping list")
	}

	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "user", "content": BuildShoppingListPrompt(items, categories)},
		},
		"temperature":     0.2,
		"response_format": map[string]string{"type": "json_object"},
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	resp, err := o.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("openai api error: %s", resp.String())
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty openai response")
	}

	output := result.Choices[0].Message.Content

	// models occasionally wrap the JSON in prose anyway
	if !json.Valid([]byte(output)) {
		return "", errors.New("openai returned non-json output")
	}

	return output, nil
}
