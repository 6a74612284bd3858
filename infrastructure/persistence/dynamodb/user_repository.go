package dynamodb

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/application/ports"
	"taskboard-backend/domain/entities"
	apperrors "taskboard-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// UserRepository implements ports.UserRepository against the single table
type UserRepository struct {
	client    Client
	tableName string
	logger    *zap.Logger
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(client Client, tableName string, logger *zap.Logger) ports.UserRepository {
	return &UserRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// CreateUser writes the user metadata item with a conditional put. The
// condition fails when the username already exists, which maps to Conflict.
func (r *UserRepository) CreateUser(ctx context.Context, username, name, role string) (*entities.User, error) {
	if username == "" || name == "" || role == "" {
		return nil, apperrors.NewValidationError("username, name and role are required")
	}

	user := entities.User{
		PK:        userPK(username),
		SK:        userMetadataSK(username),
		Username:  username,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return nil, apperrors.NewStoreError("marshal user", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, apperrors.NewConflictError("username already exists")
		}
		r.logger.Error("Failed to create user", zap.String("username", username), zap.Error(err))
		return nil, apperrors.NewStoreError("PutItem", err)
	}

	r.logger.Info("User created", zap.String("username", username), zap.String("role", role))
	return &user, nil
}

// GetAllUsers scans the table for user metadata items
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	filter := expression.Name("pk").BeginsWith(prefixUser).
		And(expression.Name("sk").BeginsWith(prefixMetadata))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, apperrors.NewStoreError("build scan expression", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("Scan", err)
	}

	users := make([]entities.User, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &users); err != nil {
		return nil, apperrors.NewStoreError("unmarshal users", err)
	}

	return users, nil
}

// DeleteUser removes the user metadata item. Projects and tasks owned by the
// user are left behind.
func (r *UserRepository) DeleteUser(ctx context.Context, username string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: userPK(username)},
			"sk": &types.AttributeValueMemberS{Value: userMetadataSK(username)},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return apperrors.NewStoreError("DeleteItem", err)
	}

	r.logger.Info("User deleted", zap.String("username", username))
	return nil
}

// GetUserByUsername fetches one user by key. This backs the login endpoint,
// which is a presence lookup only.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: userPK(username)},
			"sk": &types.AttributeValueMemberS{Value: userMetadataSK(username)},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("GetItem", err)
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	var user entities.User
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, apperrors.NewStoreError("unmarshal user", err)
	}

	return &user, nil
}

// GetNotificationsForUser range-queries the user partition for notification
// items, newest first (descending sort-key order).
func (r *UserRepository) GetNotificationsForUser(ctx context.Context, username string) ([]entities.Notification, error) {
	keyCond := expression.Key("pk").Equal(expression.Value(userPK(username))).
		And(expression.Key("sk").BeginsWith(prefixNotification))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewStoreError("build query expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("Query", err)
	}

	notifications := make([]entities.Notification, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &notifications); err != nil {
		return nil, apperrors.NewStoreError("unmarshal notifications", err)
	}

	return notifications, nil
}
