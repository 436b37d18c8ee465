package controller

import (
	"bytes"
	"context"
	"encoding/base64"
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

type VisionController interface {
	DetectFaces(ctx context.Context, image []byte) ([]appschema.FaceAnnotation, error)
}

type visionControllerImpl struct {
	VisionService appschema.ServiceConnection
	TokenSource   oauth2.TokenSource
}

func NewVisionController(visionService appschema.ServiceConnection, tokenSource oauth2.TokenSource) VisionController {
	return &visionControllerImpl{VisionService: visionService, TokenSource: tokenSource}
}

// DetectFaces sends the uploaded image to the vision service and returns
// every face annotation of the first (and only) annotate response.
func (s *visionControllerImpl) DetectFaces(ctx context.Context, image []byte) ([]appschema.FaceAnnotation, error) {
	payload := appschema.VisionAnnotateRequest{
		Requests: []appschema.AnnotateImageRequest{
			{
				Image: appschema.VisionImage{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []appschema.VisionFeature{
					{Type: "FACE_DETECTION", MaxResults: 10},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, appschema.NewAppError(appschema.UpstreamError, "failed to build face detection request", err)
	}

	reqUrl := fmt.Sprintf("%s/%s", s.VisionService.URL, constants.VISION_SERVICE_PATHS[0])
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqUrl, bytes.NewBuffer(body))
	if err != nil {
		return nil, appschema.NewAppError(appschema.UpstreamError, "failed to build face detection request", err)
	}

	token, err := s.TokenSource.Token()
	if err != nil {
		return nil, appschema.NewAppError(appschema.UpstreamError, "failed to obtain access token", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.VisionService.Client.Do(req)
	if err != nil {
		return nil, appschema.NewAppError(appschema.UpstreamError, "face detection request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("vision service error %d: %s\n", resp.StatusCode, string(respBody))
		return nil, appschema.NewAppError(appschema.UpstreamError,
			fmt.Sprintf("face detection service returned status %d", resp.StatusCode), nil)
	}

	annotateResp := &appschema.VisionAnnotateResponse{}
	if err := utils.BindHttpResponseToStruct(resp, annotateResp); err != nil {
		return nil, appschema.NewAppError(appschema.UpstreamError, "invalid face detection response", err)
	}

	if len(annotateResp.Responses) == 0 {
		return nil, appschema.NewAppError(appschema.UpstreamError, "empty face detection response", nil)
	}

	first := annotateResp.Responses[0]
	if first.Error != nil {
		return nil, appschema.NewAppError(appschema.UpstreamError, first.Error.Message, nil)
	}

	return first.FaceAnnotations, nil
}
