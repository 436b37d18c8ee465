package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testTokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
}

func newGenerativeTestServer(t *testing.T, status int, response interface{}) (*httptest.Server, *appschema.GenerateContentRequest, *string) {
	t.Helper()
	captured := &appschema.GenerateContentRequest{}
	path := new(string)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		*path = r.URL.Path

		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			require.NoError(t, json.NewEncoder(w).Encode(response))
		}
	}))

	return server, captured, path
}

func TestGenerativeController_GenerateReport(t *testing.T) {
	t.Run("returns first candidate first part", func(t *testing.T) {
		response := appschema.GenerateContentResponse{
			Candidates: []appschema.GenerativeCandidate{
				{Content: appschema.GenerativeContent{Parts: []appschema.GenerativePart{
					{Text: "<h3>診断結果</h3><div><h5>水光注射</h5></div>"},
					{Text: "ignored second part"},
				}}},
				{Content: appschema.GenerativeContent{Parts: []appschema.GenerativePart{{Text: "ignored second candidate"}}}},
			},
		}
		server, captured, path := newGenerativeTestServer(t, http.StatusOK, response)
		defer server.Close()

		c := NewGenerativeController(appschema.ServiceConnection{Client: server.Client(), URL: server.URL}, testTokenSource(), "my-project", "us-central1")
		report, err := c.GenerateReport(context.Background(), "診断プロンプト")

		require.NoError(t, err)
		assert.Equal(t, "<h3>診断結果</h3><div><h5>水光注射</h5></div>", report)

		assert.Equal(t, "/v1/projects/my-project/locations/us-central1/publishers/google/models/gemini-1.5-flash-002:generateContent", *path)
		require.Len(t, captured.Contents, 1)
		require.Len(t, captured.Contents[0].Parts, 1)
		assert.Equal(t, "診断プロンプト", captured.Contents[0].Parts[0].Text)
	})

	t.Run("no candidates", func(t *testing.T) {
		server, _, _ := newGenerativeTestServer(t, http.StatusOK, appschema.GenerateContentResponse{})
		defer server.Close()

		c := NewGenerativeController(appschema.ServiceConnection{Client: server.Client(), URL: server.URL}, testTokenSource(), "my-project", "us-central1")
		_, err := c.GenerateReport(context.Background(), "prompt")

		require.Error(t, err)
		var appErr *appschema.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appschema.UpstreamError, appErr.Kind)
	})

	t.Run("candidate without parts", func(t *testing.T) {
		response := appschema.GenerateContentResponse{
			Candidates: []appschema.GenerativeCandidate{{}},
		}
		server, _, _ := newGenerativeTestServer(t, http.StatusOK, response)
		defer server.Close()

		c := NewGenerativeController(appschema.ServiceConnection{Client: server.Client(), URL: server.URL}, testTokenSource(), "my-project", "us-central1")
		_, err := c.GenerateReport(context.Background(), "prompt")

		require.Error(t, err)
	})

	t.Run("upstream status error", func(t *testing.T) {
		server, _, _ := newGenerativeTestServer(t, http.StatusInternalServerError, nil)
		defer server.Close()

		c := NewGenerativeController(appschema.ServiceConnection{Client: server.Client(), URL: server.URL}, testTokenSource(), "my-project", "us-central1")
		_, err := c.GenerateReport(context.Background(), "prompt")

		require.Error(t, err)
		var appErr *appschema.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appschema.UpstreamError, appErr.Kind)
	})
}
