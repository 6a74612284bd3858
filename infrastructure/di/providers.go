package di

import (
	"context"

	"taskboard-backend/application/ports"
	"taskboard-backend/infrastructure/config"
	"taskboard-backend/infrastructure/messaging/eventbridge"
	dynamostore "taskboard-backend/infrastructure/persistence/dynamodb"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	ProjectRepo    ports.ProjectRepository
	TaskRepo       ports.TaskRepository
	UserRepo       ports.UserRepository
	EventPublisher ports.EventPublisher
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideProjectRepository creates a project repository
func ProvideProjectRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProjectRepository {
	return dynamostore.NewProjectRepository(client, cfg.DynamoDBTable, cfg.GSI1IndexName, logger)
}

// ProvideTaskRepository creates a task repository
func ProvideTaskRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.TaskRepository {
	return dynamostore.NewTaskRepository(client, cfg.DynamoDBTable, cfg.GSI2IndexName, cfg.DefaultAssignee, logger)
}

// ProvideUserRepository creates a user repository
func ProvideUserRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.UserRepository {
	return dynamostore.NewUserRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventPublisher creates the domain event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}
