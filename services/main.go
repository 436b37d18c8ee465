package services

import (
	"context"
	"os"

	generative "github.com/ZAITAKUSANTEI/my-skin-app/controller/generative"
	vision "github.com/ZAITAKUSANTEI/my-skin-app/controller/vision"
	"github.com/ZAITAKUSANTEI/my-skin-app/globals"
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"github.com/ZAITAKUSANTEI/my-skin-app/utils"
)

const (
	generativeLocationEnvName = "GENERATIVE_LOCATION"
	defaultGenerativeLocation = "us-central1"
)

type SkinAnalysisService interface {
	Analyze(ctx context.Context, image []byte) (*appschema.AnalysisResult, error)
}

type skinAnalysisImpl struct {
	visionController     vision.VisionController
	generativeController generative.GenerativeController
}

func NewSkinAnalysisService(v vision.VisionController, g generative.GenerativeController) SkinAnalysisService {
	return &skinAnalysisImpl{
		visionController:     v,
		generativeController: g,
	}
}

// Analyze runs the pipeline: detect faces, score the first one, build
// the prompt and generate the report. The generative service is never
// called when no face was found.
func (s *skinAnalysisImpl) Analyze(ctx context.Context, image []byte) (*appschema.AnalysisResult, error) {
	faces, err := s.visionController.DetectFaces(ctx, image)
	if err != nil {
		return nil, err
	}

	if len(faces) == 0 {
		return nil, appschema.NewAppError(appschema.DetectionError, "no face detected", nil)
	}

	face := faces[0]
	scores := CalculateScores(&face)
	prompt := BuildPrompt(scores, &face)

	report, err := s.generativeController.GenerateReport(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &appschema.AnalysisResult{ReportHTML: report, Scores: scores}, nil
}

// ServiceFactory builds a per-request service from validated
// credentials. Clients are stateless wrappers around per-call
// credentials, so nothing is cached across requests.
type ServiceFactory func(ctx context.Context, creds *appschema.Credentials) (SkinAnalysisService, error)

func NewGoogleServiceFactory() ServiceFactory {
	return func(ctx context.Context, creds *appschema.Credentials) (SkinAnalysisService, error) {
		if globals.VisionService == nil || globals.GenerativeService == nil {
			return nil, appschema.NewAppError(appschema.ConfigurationError, "external service clients are not initialized", nil)
		}

		tokenSource, err := utils.NewTokenSource(ctx, creds)
		if err != nil {
			return nil, err
		}

		location := os.Getenv(generativeLocationEnvName)
		if len(location) == 0 {
			location = defaultGenerativeLocation
		}

		v := vision.NewVisionController(*globals.VisionService, tokenSource)
		g := generative.NewGenerativeController(*globals.GenerativeService, tokenSource, creds.ProjectID, location)

		return NewSkinAnalysisService(v, g), nil
	}
}
