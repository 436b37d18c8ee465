package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ZAITAKUSANTEI/my-skin-app/handlers"
	app "github.com/ZAITAKUSANTEI/my-skin-app/handlers/data"
	"github.com/ZAITAKUSANTEI/my-skin-app/middleware"
	"github.com/ZAITAKUSANTEI/my-skin-app/utils"
)

const analyzePathPrefix = "/api/v1/skin/analyze"

var analyzeHandler *handlers.AnalyzeHandler

func Init() error {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	if err := utils.CreateHttpClients(); err != nil {
		return err
	}

	return nil
}

func lambdaHandler(ctx context.Context, req events.LambdaFunctionURLRequest) (*events.LambdaFunctionURLResponse, error) {
	method := req.RequestContext.HTTP.Method

	switch {
	case method == http.MethodOptions:
		return &events.LambdaFunctionURLResponse{
			StatusCode: http.StatusOK,
			Headers: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "POST, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type",
			},
		}, nil

	case strings.HasPrefix(req.RawPath, analyzePathPrefix):
		// method check comes before credential parsing or any upstream call
		if method != http.MethodPost {
			return &events.LambdaFunctionURLResponse{
				StatusCode: http.StatusMethodNotAllowed,
				Headers:    map[string]string{"Content-Type": "text/plain"},
				Body:       "method not allowed",
			}, nil
		}
		return analyzeHandler.AnalyzeSkinLambda(ctx, req)

	default:
		return &events.LambdaFunctionURLResponse{
			StatusCode: http.StatusNotFound,
			Body:       "Not found",
		}, nil
	}
}

func main() {
	if err := Init(); err != nil {
		log.Fatalf("Initialization error: %v", err)
	}

	appHandlers := app.LoadAppHandlers()
	analyzeHandler = appHandlers.AnalyzeHandler

	production := os.Getenv("PRODUCTION") == "true"
	if production {
		log.Println("Running as Lambda function...")
		lambda.Start(lambdaHandler)
	} else {
		port := os.Getenv("APP_PORT")
		log.Printf("Starting local server on :%s\n", port)

		ginApp := gin.New()
		ginApp.Use(gin.Logger(), gin.Recovery(), utils.GetCorsConfig(), middleware.RequestID())
		ginApp.HandleMethodNotAllowed = true

		version := os.Getenv("APP_VERSION")
		api := ginApp.Group("/api/" + version)
		{
			api.POST("/skin/analyze", middleware.RateLimitMiddleware(60, time.Minute), appHandlers.AnalyzeHandler.AnalyzeSkin)
		}
		ginApp.NoRoute(middleware.PathNotFound())
		ginApp.NoMethod(middleware.MethodNotAllowed())

		log.Fatal(ginApp.Run(":" + port))
	}
}
