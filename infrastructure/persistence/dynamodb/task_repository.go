package dynamodb

import (
	"context"
	"time"

	"taskboard-backend/application/ports"
	"taskboard-backend/domain/entities"
	apperrors "taskboard-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskRepository implements ports.TaskRepository against the single table
type TaskRepository struct {
	client          Client
	tableName       string
	gsi2IndexName   string
	defaultAssignee string
	logger          *zap.Logger
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(client Client, tableName, gsi2IndexName, defaultAssignee string, logger *zap.Logger) ports.TaskRepository {
	return &TaskRepository{
		client:          client,
		tableName:       tableName,
		gsi2IndexName:   gsi2IndexName,
		defaultAssignee: defaultAssignee,
		logger:          logger,
	}
}

// CreateTask writes the task item and the assignee relation item in one
// transaction. Status and priority default when absent; the GSI2 keys are
// computed from the resolved values.
func (r *TaskRepository) CreateTask(ctx context.Context, projectID string, task ports.NewTask) (*entities.Task, error) {
	taskID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	status := task.Status
	if status == "" {
		status = entities.DefaultTaskStatus
	}
	priority := task.Priority
	if priority == "" {
		priority = entities.DefaultTaskPriority
	}

	newTask := entities.Task{
		PK:           projectPK(projectID),
		SK:           taskSK(taskID),
		ID:           taskID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       status,
		Priority:     priority,
		Deadline:     task.Deadline,
		AssignedUser: r.defaultAssignee,
		CreatedAt:    now,
		GSI2PK:       statusGSI2PK(status),
		GSI2SK:       priorityGSI2SK(priority),
	}

	relation := entities.TaskRelation{
		PK:        userPK(r.defaultAssignee),
		SK:        taskSK(taskID),
		ProjectID: projectPK(projectID),
		CreatedAt: now,
	}

	taskItem, err := attributevalue.MarshalMap(newTask)
	if err != nil {
		return nil, apperrors.NewStoreError("marshal task", err)
	}
	relationItem, err := attributevalue.MarshalMap(relation)
	if err != nil {
		return nil, apperrors.NewStoreError("marshal task relation", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: taskItem}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: relationItem}},
		},
	}

	if _, err := r.client.TransactWriteItems(ctx, input); err != nil {
		r.logger.Error("Failed to create task",
			zap.String("taskID", taskID),
			zap.String("projectID", projectID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("TransactWriteItems", err)
	}

	r.logger.Info("Task created",
		zap.String("taskID", taskID),
		zap.String("projectID", projectID),
		zap.String("status", status),
		zap.String("priority", priority),
	)

	return &newTask, nil
}

// GetTasksForProject range-queries the project partition for task items
func (r *TaskRepository) GetTasksForProject(ctx context.Context, projectID string) ([]entities.Task, error) {
	keyCond := expression.Key("pk").Equal(expression.Value(projectPK(projectID))).
		And(expression.Key("sk").BeginsWith(prefixTask))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewStoreError("build query expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("Query", err)
	}

	tasks := make([]entities.Task, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tasks); err != nil {
		return nil, apperrors.NewStoreError("unmarshal tasks", err)
	}

	return tasks, nil
}

// UpdateTask replaces the whole task item with the supplied state. The caller
// resupplies every field; whatever is omitted is written as its zero value.
// GSI2 keys are recomputed so the status/priority index stays consistent.
func (r *TaskRepository) UpdateTask(ctx context.Context, projectID, taskID string, update ports.TaskUpdate) (*entities.Task, error) {
	task := entities.Task{
		PK:           projectPK(projectID),
		SK:           taskSK(taskID),
		ID:           taskID,
		Title:        update.Title,
		Description:  update.Description,
		Status:       update.Status,
		Priority:     update.Priority,
		Deadline:     update.Deadline,
		AssignedUser: update.AssignedUser,
		CreatedAt:    update.CreatedAt,
		GSI2PK:       statusGSI2PK(update.Status),
		GSI2SK:       priorityGSI2SK(update.Priority),
	}

	item, err := attributevalue.MarshalMap(task)
	if err != nil {
		return nil, apperrors.NewStoreError("marshal task", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to update task",
			zap.String("taskID", taskID),
			zap.String("projectID", projectID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("PutItem", err)
	}

	r.logger.Info("Task updated",
		zap.String("taskID", taskID),
		zap.String("projectID", projectID),
		zap.String("status", update.Status),
		zap.String("priority", update.Priority),
	)

	return &task, nil
}

// DeleteTask removes the task item. The assignee relation is left behind.
func (r *TaskRepository) DeleteTask(ctx context.Context, projectID, taskID string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: projectPK(projectID)},
			"sk": &types.AttributeValueMemberS{Value: taskSK(taskID)},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return apperrors.NewStoreError("DeleteItem", err)
	}

	r.logger.Info("Task deleted", zap.String("taskID", taskID), zap.String("projectID", projectID))
	return nil
}

// GetAllTasks scans the table for task items across all projects
func (r *TaskRepository) GetAllTasks(ctx context.Context) ([]entities.Task, error) {
	filter := expression.Name("pk").BeginsWith(prefixProject).
		And(expression.Name("sk").BeginsWith(prefixTask))
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

	tasks := make([]entities.Task, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tasks); err != nil {
		return nil, apperrors.NewStoreError("unmarshal tasks", err)
	}

	return tasks, nil
}

// FilterTasksByStatus queries GSI2 for tasks whose current status matches,
// regardless of project
func (r *TaskRepository) FilterTasksByStatus(ctx context.Context, status string) ([]entities.Task, error) {
	if status == "" {
		return nil, apperrors.NewValidationError("status is required")
	}

	keyCond := expression.Key("gsi2pk").Equal(expression.Value(statusGSI2PK(status)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewStoreError("build query expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.gsi2IndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("Query", err)
	}

	tasks := make([]entities.Task, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tasks); err != nil {
		return nil, apperrors.NewStoreError("unmarshal tasks", err)
	}

	return tasks, nil
}
