package groq

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendParsesContentJSON(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"role":    "assistant",
					"content": `{"reply":"Goa sounds perfect!","tags":["beach","relax"]}`,
				}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "test-model")
	rec, err := client.Recommend("I want a calm beach week")

	assert.NoError(t, err)
	assert.Equal(t, "Goa sounds perfect!", rec.Reply)
	assert.Equal(t, []string{"beach", "relax"}, rec.Tags)

	// System prompt goes first, user prompt second.
	assert.Equal(t, "test-model", got.Model)
	assert.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "I want a calm beach week", got.Messages[1].Content)
}

func TestRecommendRejectsNonJSONContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Sure! Here are my picks..."}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "test-model")
	_, err := client.Recommend("anything")

	assert.Error(t, err)
}

func TestRecommendWithoutAPIKey(t *testing.T) {
	client := NewClient("http://unused", "", "test-model")

	_, err := client.Recommend("anything")

	assert.Error(t, err)
}
