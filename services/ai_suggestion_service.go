package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hajruuudin/life-line/config"
)

const (
	huggingFaceAPIURL = "https://router.huggingface.co/v1/chat/completions"
	huggingFaceModel  = "HuggingFaceTB/SmolLM3-3B:hf-inference"
)

// AISuggestionService fetches home-remedy suggestions for new illness logs.
// Every failure is logged and swallowed; callers get a nil suggestion.
type AISuggestionService struct {
	client *http.Client
	apiKey string
}

func NewAISuggestionService(cfg *config.Config) *AISuggestionService {
	return &AISuggestionService{
		client: &http.Client{Timeout: 30 * time.Second},
		apiKey: cfg.HuggingFaceAPIKey,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GetHomeRemedies asks the model for a short remedy list. Returns nil when
// the call fails for any reason.
func (s *AISuggestionService) GetHomeRemedies(ctx context.Context, illnessName, notes string) *string {
	description := illnessName
	if notes != "" {
		description += ". Additional details: " + notes
	}

	userPrompt := fmt.Sprintf(`A person is experiencing: %s

Please provide 3-5 simple home remedies or tips that could help. Keep it brief and practical. Only suggest safe, common remedies like rest, hydration, etc.

Also, don't write the response as If you are thinking: write it in the style as if it is a general tips and tricks that someone might be giving to either his friend or relative.

Format your response as a simple numbered list.`, description)

	payload := chatRequest{
		Model: huggingFaceModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful health assistant. Provide safe, practical home remedies. Always recommend consulting a doctor for serious symptoms."},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("AI suggestion: marshal payload: %v", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, huggingFaceAPIURL, bytes.NewReader(b))
	if err != nil {
		log.Errorf("AI suggestion: build request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warnf("AI suggestion request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warnf("AI suggestion: read response: %v", err)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Warnf("AI suggestion API error %d: %s", resp.StatusCode, string(body))
		return nil
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil || len(out.Choices) == 0 {
		log.Warnf("AI suggestion: unexpected response body: %s", string(body))
		return nil
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	content = strings.ReplaceAll(content, "<think>", "")
	content = strings.ReplaceAll(content, "</think>", "")
	content = strings.ReplaceAll(content, "**", "")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	return &content
}
