package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"

	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	serviceAccountEnvName = "GOOGLE_SERVICE_ACCOUNT"
	cloudPlatformScope    = "https://www.googleapis.com/auth/cloud-platform"
)

// LoadCredentials decodes the base64 service-account blob from the
// environment and validates the fields both API clients need.
func LoadCredentials() (*appschema.Credentials, error) {
	encoded := os.Getenv(serviceAccountEnvName)
	if len(encoded) == 0 {
		return nil, appschema.NewAppError(appschema.ConfigurationError, "service account configuration is missing", nil)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, appschema.NewAppError(appschema.ConfigurationError, "service account configuration is not valid base64", err)
	}

	creds := &appschema.Credentials{}
	if err := json.Unmarshal(raw, creds); err != nil {
		return nil, appschema.NewAppError(appschema.ConfigurationError, "service account configuration is not valid JSON", err)
	}

	if creds.ClientEmail == "" || creds.PrivateKey == "" || creds.ProjectID == "" {
		return nil, appschema.NewAppError(appschema.ConfigurationError, "service account configuration is missing required fields", nil)
	}

	creds.RawJSON = raw
	return creds, nil
}

// NewTokenSource builds an oauth2 token source from the service-account
// JSON, scoped for both the vision and the generative endpoints.
func NewTokenSource(ctx context.Context, creds *appschema.Credentials) (oauth2.TokenSource, error) {
	conf, err := google.JWTConfigFromJSON(creds.RawJSON, cloudPlatformScope)
	if err != nil {
		return nil, appschema.NewAppError(appschema.ConfigurationError, "service account configuration is not usable for authentication", err)
	}
	return conf.TokenSource(ctx), nil
}
