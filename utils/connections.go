package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ZAITAKUSANTEI/my-skin-app/globals"
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
)

const (
	visionServiceEnvName     = "VISION_SERVICE"
	generativeServiceEnvName = "GENERATIVE_SERVICE"

	defaultVisionServiceUrl     = "https://vision.googleapis.com"
	defaultGenerativeServiceUrl = "https://us-central1-aiplatform.googleapis.com"
)

// CreateHttpClients initializes HTTP clients for the Google endpoints with connection pool management.
func CreateHttpClients() error {
	visionUrl := os.Getenv(visionServiceEnvName)
	if len(visionUrl) == 0 {
		visionUrl = defaultVisionServiceUrl
	}

	generativeUrl := os.Getenv(generativeServiceEnvName)
	if len(generativeUrl) == 0 {
		generativeUrl = defaultGenerativeServiceUrl
	}

	for _, serviceUrl := range []string{visionUrl, generativeUrl} {
		if _, err := url.ParseRequestURI(serviceUrl); err != nil {
			return fmt.Errorf("invalid service url %q: %w", serviceUrl, err)
		}
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     60 * time.Minute,
	}

	globals.VisionService = &appschema.ServiceConnection{
		Client: &http.Client{
			Transport: transport,
			Timeout:   60 * time.Second,
		},
		URL: visionUrl,
	}

	globals.GenerativeService = &appschema.ServiceConnection{
		Client: &http.Client{
			Transport: transport,
			Timeout:   60 * time.Second,
		},
		URL: generativeUrl,
	}

	fmt.Println("All Services up and running")
	return nil
}
