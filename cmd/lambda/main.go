package main

import (
	"context"
	"log"
	"time"

	"taskboard-backend/infrastructure/config"
	"taskboard-backend/infrastructure/di"
	"taskboard-backend/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Global variables for Lambda lifecycle management
var (
	// chiLambda wraps the Chi router for AWS Lambda integration
	chiLambda *chiadapter.ChiLambdaV2

	// container holds the dependency injection container
	container *di.Container

	// coldStart tracks whether this is a cold start invocation
	coldStart = true

	// coldStartTime records when the cold start began
	coldStartTime time.Time
)

// init runs during cold start
func init() {
	coldStartTime = time.Now()
	log.Println("Lambda cold start initiated")

	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Create router
	router := rest.NewRouter(
		container.ProjectRepo,
		container.TaskRepo,
		container.UserRepo,
		container.EventPublisher,
		container.Logger,
	)

	// Setup routes
	handler := router.Setup()

	// Create Lambda adapter - need to type assert to *chi.Mux
	chiRouter, ok := handler.(*chi.Mux)
	if !ok {
		log.Fatal("Failed to cast handler to chi.Mux")
	}
	chiLambda = chiadapter.NewV2(chiRouter)

	// Log cold start duration
	coldStartDuration := time.Since(coldStartTime)
	log.Printf("Lambda cold start completed in %v", coldStartDuration)
}

// Handler is the Lambda function handler
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if container != nil && container.Logger != nil {
		container.Logger.Info("Lambda received request",
			zap.String("path", req.RequestContext.HTTP.Path),
			zap.String("method", req.RequestContext.HTTP.Method),
			zap.String("request_id", req.RequestContext.RequestID),
		)
	}

	// Process the request through the Chi router
	resp, err := chiLambda.ProxyWithContextV2(ctx, req)

	// Add custom headers for monitoring
	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}

	if coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		resp.Headers["X-Cold-Start-Duration"] = time.Since(coldStartTime).String()
		coldStart = false
	} else {
		resp.Headers["X-Cold-Start"] = "false"
	}

	// Add request ID for tracing
	if req.RequestContext.RequestID != "" {
		resp.Headers["X-Request-ID"] = req.RequestContext.RequestID
	}

	if container != nil && container.Logger != nil {
		if resp.StatusCode >= 400 && resp.StatusCode < 600 {
			container.Logger.Error("Lambda error response",
				zap.String("path", req.RequestContext.HTTP.Path),
				zap.Int("status_code", resp.StatusCode),
				zap.String("body", resp.Body),
			)
		}
	}

	return resp, err
}

// main is the entry point for the Lambda function
func main() {
	// Start the Lambda handler
	lambda.Start(Handler)
}
