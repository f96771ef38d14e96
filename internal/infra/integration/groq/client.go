package groq

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const systemPrompt = "Your task is to recommend users tour plans which our Indian holiday and tour booking agency provide, based on the description the user writes. You should understand the emotion of the message they provide and generate the reply part connecting with that emotion. You must strictly output a JSON object with two keys: 'reply' (string, your empathetic, helpful response), and 'tags' (array of strings, recommend packages by selecting 1 to 3 tags from: [family, culture, nature, relax, beach, mountain, party, adventure, snow, heritage, luxury, honeymoon])."

// Client calls the Groq chat-completions API.
type Client struct {
	apiURL string
	apiKey string
	model  string
	http   *http.Client
}

func NewClient(apiURL, apiKey, model string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Recommend sends the user's travel plan prompt and parses the model's
// message content as a Recommendation JSON object.
func (c *Client) Recommend(prompt string) (*Recommendation, error) {
	if c.apiKey == "" {
		return nil, errors.New("groq api key not configured")
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:         0.7,
		MaxCompletionTokens: 1000,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("groq marshal failed: %w", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ groq (status %d): %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("groq rejected request (status %d)", resp.StatusCode)
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("groq decode failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, errors.New("groq returned no choices")
	}

	// The model is instructed to emit a JSON object as its content string.
	var rec Recommendation
	if err := json.Unmarshal([]byte(response.Choices[0].Message.Content), &rec); err != nil {
		return nil, fmt.Errorf("groq content is not the expected JSON: %w", err)
	}
	return &rec, nil
}
