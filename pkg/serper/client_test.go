package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mercado fitness Brasil", req.Query)
		assert.Equal(t, 10, req.Num)
		assert.Equal(t, "br", req.Country)
		assert.Equal(t, "pt-br", req.Language)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchResponse{
			Organic: []OrganicResult{
				{Title: "Panorama do setor", Link: "https://a.com.br", Snippet: "crescimento", Position: 1},
				{Title: "Tendências 2024", Link: "https://b.com.br", Snippet: "dados", Position: 2},
			},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), SearchRequest{
		Query:    "mercado fitness Brasil",
		Num:      10,
		Country:  "br",
		Language: "pt-br",
	})

	require.NoError(t, err)
	require.Len(t, resp.Organic, 2)
	assert.Equal(t, "https://a.com.br", resp.Organic[0].Link)
	assert.Equal(t, 2, resp.Organic[1].Position)
}

func TestSearch_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), SearchRequest{Query: "mercado fitness"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSearch_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{organic:`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), SearchRequest{Query: "mercado fitness"})
	require.Error(t, err)
}
