package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	constants "github.com/ZAITAKUSANTEI/my-skin-app/const"
	"github.com/ZAITAKUSANTEI/my-skin-app/message"
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"github.com/ZAITAKUSANTEI/my-skin-app/services"
	"github.com/ZAITAKUSANTEI/my-skin-app/utils"
)

type AnalyzeHandler struct {
	NewService services.ServiceFactory
}

func NewAnalyzeHandler(factory services.ServiceFactory) *AnalyzeHandler {
	return &AnalyzeHandler{NewService: factory}
}

// errorMessage picks the client-facing message: the tagged message for
// pipeline errors, the raw error text otherwise, a fallback when empty.
func errorMessage(err error) string {
	var appErr *appschema.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "internal server error"
}

func respondError(c *gin.Context, err error) {
	log.Printf("analyze request failed: %v", err)
	c.JSON(http.StatusInternalServerError, message.ReturnCustomMessage(errorMessage(err)))
}

func validateImageName(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && !slices.Contains(constants.IMAGE_EXTENSIONS, ext) {
		return appschema.NewAppError(appschema.ValidationError, "only jpg, jpeg, png allowed", nil)
	}
	return nil
}

// AnalyzeSkin is the local (gin) entrypoint. Method filtering happens
// in the router; everything else collapses to 500 with a message.
func (h *AnalyzeHandler) AnalyzeSkin(c *gin.Context) {
	creds, err := utils.LoadCredentials()
	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile(constants.FRONT_IMAGE_FIELD_NAME)
	if err != nil {
		respondError(c, appschema.NewAppError(appschema.ValidationError, "front image not found", err))
		return
	}

	if err := validateImageName(fileHeader.Filename); err != nil {
		respondError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, appschema.NewAppError(appschema.ValidationError, "failed to open uploaded image", err))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		respondError(c, appschema.NewAppError(appschema.ValidationError, "failed to read uploaded image", err))
		return
	}

	service, err := h.NewService(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := service.Analyze(c.Request.Context(), image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeSkinLambda is the production (Lambda Function URL) entrypoint.
// The router in main has already checked the method and path.
func (h *AnalyzeHandler) AnalyzeSkinLambda(ctx context.Context, req events.LambdaFunctionURLRequest) (*events.LambdaFunctionURLResponse, error) {
	creds, err := utils.LoadCredentials()
	if err != nil {
		return lambdaErrorResponse(err), nil
	}

	image, filename, err := extractFrontImage(req)
	if err != nil {
		return lambdaErrorResponse(err), nil
	}

	if err := validateImageName(filename); err != nil {
		return lambdaErrorResponse(err), nil
	}

	service, err := h.NewService(ctx, creds)
	if err != nil {
		return lambdaErrorResponse(err), nil
	}

	result, err := service.Analyze(ctx, image)
	if err != nil {
		return lambdaErrorResponse(err), nil
	}

	body, err := json.Marshal(result)
	if err != nil {
		return lambdaErrorResponse(err), nil
	}

	return &events.LambdaFunctionURLResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func lambdaErrorResponse(err error) *events.LambdaFunctionURLResponse {
	log.Printf("analyze request failed: %v", err)

	body, marshalErr := json.Marshal(message.ReturnCustomMessage(errorMessage(err)))
	if marshalErr != nil {
		body = []byte(`{"message":"internal server error"}`)
	}

	return &events.LambdaFunctionURLResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

// extractFrontImage pulls the front image part out of the raw multipart
// body of a Function URL request.
func extractFrontImage(req events.LambdaFunctionURLRequest) ([]byte, string, error) {
	bodyBytes := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, "", appschema.NewAppError(appschema.ValidationError, "invalid base64 body", err)
		}
		bodyBytes = decoded
	}

	contentType := req.Headers["content-type"]
	if contentType == "" {
		contentType = req.Headers["Content-Type"]
	}

	boundary := extractBoundary(contentType)
	if boundary == "" {
		return nil, "", appschema.NewAppError(appschema.ValidationError, "missing multipart boundary", nil)
	}

	mr := multipart.NewReader(bytes.NewReader(bodyBytes), boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", appschema.NewAppError(appschema.ValidationError, "failed to read multipart body", err)
		}
		if part.FormName() == constants.FRONT_IMAGE_FIELD_NAME {
			data, err := io.ReadAll(part)
			if err != nil {
				return nil, "", appschema.NewAppError(appschema.ValidationError, "failed to read uploaded image", err)
			}
			return data, part.FileName(), nil
		}
	}

	return nil, "", appschema.NewAppError(appschema.ValidationError, "front image not found", nil)
}

func extractBoundary(contentType string) string {
	parts := strings.Split(contentType, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "boundary=") {
			return strings.Trim(strings.TrimPrefix(part, "boundary="), `"`)
		}
	}
	return ""
}
