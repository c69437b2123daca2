package genai_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-talented-backend/pkg/genai"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("Should return the first candidate's text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Contains(t, r.URL.Path, "models/test-model:generateContent")
			assert.Equal(t, "key-123", r.URL.Query().Get("key"))
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  hello  "}]}}]}`))
		}))
		defer srv.Close()

		c := genai.NewClient("key-123", genai.WithBaseURL(srv.URL), genai.WithModel("test-model"))
		text, err := c.Generate(context.Background(), "say hello")
		assert.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("Should report an empty candidate list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		c := genai.NewClient("key-123", genai.WithBaseURL(srv.URL))
		_, err := c.Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, genai.ErrEmptyResponse)
	})

	t.Run("Should report a non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := genai.NewClient("key-123", genai.WithBaseURL(srv.URL))
		_, err := c.Generate(context.Background(), "prompt")
		assert.Error(t, err)
	})
}

func TestStripJSONFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, genai.StripJSONFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, genai.StripJSONFences(`{"a":1}`))
}
