package groq

type chatRequest struct {
	Model               string    `json:"model"`
	Messages            []message `json:"messages"`
	Temperature         float64   `json:"temperature"`
	MaxCompletionTokens int       `json:"max_completion_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Recommendation is the JSON object the model is instructed to emit as its
// message content: an empathetic reply plus 1–3 tags from the closed list.
type Recommendation struct {
	Reply string   `json:"reply"`
	Tags  []string `json:"tags"`
}
