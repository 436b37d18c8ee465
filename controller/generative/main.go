package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	constants "github.com/ZAITAKUSANTEI/my-skin-app/const"
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"github.com/ZAITAKUSANTEI/my-skin-app/utils"
	"golang.org/x/oauth2"
)

type GenerativeController interface {
	GenerateReport(ctx context.Context, prompt string) (string, error)
}

type generativeControllerImpl struct {
	GenerativeService appschema.ServiceConnection
	TokenSource       oauth2.TokenSource
	ProjectID         string
	Location          string
}

func NewGenerativeController(generativeService appschema.ServiceConnection, tokenSource oauth2.TokenSource, projectID, location string) GenerativeController {
	return &generativeControllerImpl{
		GenerativeService: generativeService,
		TokenSource:       tokenSource,
		ProjectID:         projectID,
		Location:          location,
	}
}

// GenerateReport sends the prompt to the generative service and returns
// the first candidate's first text part.
func (s *generativeControllerImpl) GenerateReport(ctx context.Context, prompt string) (string, error) {
	payload := appschema.GenerateContentRequest{
		Contents: []appschema.GenerativeContent{
			{
				Role:  "user",
				Parts: []appschema.GenerativePart{{Text: prompt}},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", appschema.NewAppError(appschema.UpstreamError, "failed to build report generation request", err)
	}

	path := fmt.Sprintf(constants.GENERATIVE_SERVICE_PATH_FORMAT, s.ProjectID, s.Location, constants.GENERATIVE_MODEL)
	reqUrl := fmt.Sprintf("%s/%s", s.GenerativeService.URL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqUrl, bytes.NewBuffer(body))
	if err != nil {
		return "", appschema.NewAppError(appschema.UpstreamError, "failed to build report generation request", err)
	}

	token, err := s.TokenSource.Token()
	if err != nil {
		return "", appschema.NewAppError(appschema.UpstreamError, "failed to obtain access token", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.GenerativeService.Client.Do(req)
	if err != nil {
		return "", appschema.NewAppError(appschema.UpstreamError, "report generation request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("generative service error %d: %s\n", resp.StatusCode, string(respBody))
		return "", appschema.NewAppError(appschema.UpstreamError,
			fmt.Sprintf("report generation service returned status %d", resp.StatusCode), nil)
	}

	contentResp := &appschema.GenerateContentResponse{}
	if err := utils.BindHttpResponseToStruct(resp, contentResp); err != nil {
		return "", appschema.NewAppError(appschema.UpstreamError, "invalid report generation response", err)
	}

	if len(contentResp.Candidates) == 0 || len(contentResp.Candidates[0].Content.Parts) == 0 {
		return "", appschema.NewAppError(appschema.UpstreamError, "report generation returned no candidates", nil)
	}

	report := contentResp.Candidates[0].Content.Parts[0].Text
	if report == "" {
		return "", appschema.NewAppError(appschema.UpstreamError, "report generation returned an empty report", nil)
	}

	return report, nil
}
