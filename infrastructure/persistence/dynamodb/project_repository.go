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

// ProjectRepository implements ports.ProjectRepository against the single table
type ProjectRepository struct {
	client        Client
	tableName     string
	gsi1IndexName string
	logger        *zap.Logger
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(client Client, tableName, gsi1IndexName string, logger *zap.Logger) ports.ProjectRepository {
	return &ProjectRepository{
		client:        client,
		tableName:     tableName,
		gsi1IndexName: gsi1IndexName,
		logger:        logger,
	}
}

// CreateProject writes the project metadata item and the owner relation item in
// one transaction, so either both land or neither does.
func (r *ProjectRepository) CreateProject(ctx context.Context, name, description, userID string) (*entities.Project, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId is required to create a project")
	}

	projectID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	project := entities.Project{
		PK:          projectPK(projectID),
		SK:          projectMetadataSK(projectID),
		ID:          projectID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
	}

	relation := entities.ProjectRelation{
		PK:                 userPK(userID),
		SK:                 projectRelationSK(projectID),
		GSI1PK:             userPK(userID),
		GSI1SK:             projectRelationSK(projectID),
		ProjectName:        name,
		ProjectDescription: description,
	}

	projectItem, err := attributevalue.MarshalMap(project)
	if err != nil {
		return nil, apperrors.NewStoreError("marshal project", err)
	}
	relationItem, err := attributevalue.MarshalMap(relation)
	if err != nil {
		return nil, apperrors.NewStoreError("marshal project relation", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: projectItem}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: relationItem}},
		},
	}

	if _, err := r.client.TransactWriteItems(ctx, input); err != nil {
		r.logger.Error("Failed to create project",
			zap.String("projectID", projectID),
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("TransactWriteItems", err)
	}

	r.logger.Info("Project created",
		zap.String("projectID", projectID),
		zap.String("userID", userID),
	)

	return &project, nil
}

// GetProjects scans the table for project metadata items. Unbounded; not meant
// for large tables.
func (r *ProjectRepository) GetProjects(ctx context.Context) ([]entities.Project, error) {
	filter := expression.Name("pk").BeginsWith(prefixProject).
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

	projects := make([]entities.Project, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &projects); err != nil {
		return nil, apperrors.NewStoreError("unmarshal projects", err)
	}

	return projects, nil
}

// GetProjectByID fetches one project metadata item by key
func (r *ProjectRepository) GetProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: projectPK(id)},
			"sk": &types.AttributeValueMemberS{Value: projectMetadataSK(id)},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("GetItem", err)
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError("project")
	}

	var project entities.Project
	if err := attributevalue.UnmarshalMap(result.Item, &project); err != nil {
		return nil, apperrors.NewStoreError("unmarshal project", err)
	}

	return &project, nil
}

// UpdateProject sets name and description on the metadata item and returns the
// post-update record. The owner relation's denormalized snapshot is not
// touched.
func (r *ProjectRepository) UpdateProject(ctx context.Context, id, name, description string) (*entities.Project, error) {
	update := expression.Set(expression.Name("Name"), expression.Value(name)).
		Set(expression.Name("Description"), expression.Value(description))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, apperrors.NewStoreError("build update expression", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: projectPK(id)},
			"sk": &types.AttributeValueMemberS{Value: projectMetadataSK(id)},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	}

	result, err := r.client.UpdateItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to update project", zap.String("projectID", id), zap.Error(err))
		return nil, apperrors.NewStoreError("UpdateItem", err)
	}

	var project entities.Project
	if err := attributevalue.UnmarshalMap(result.Attributes, &project); err != nil {
		return nil, apperrors.NewStoreError("unmarshal project", err)
	}

	return &project, nil
}

// DeleteProject removes the project metadata item. No existence check and no
// cascade: the project's tasks stay behind under the same partition.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: projectPK(id)},
			"sk": &types.AttributeValueMemberS{Value: projectMetadataSK(id)},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return apperrors.NewStoreError("DeleteItem", err)
	}

	r.logger.Info("Project deleted", zap.String("projectID", id))
	return nil
}

// AssignProjectToUser snapshots the project's current name and description into
// a fresh user relation. Re-assigning the same project overwrites the snapshot.
func (r *ProjectRepository) AssignProjectToUser(ctx context.Context, projectID, userID string) error {
	project, err := r.GetProjectByID(ctx, projectID)
	if err != nil {
		return err
	}

	relation := entities.ProjectRelation{
		PK:                 userPK(userID),
		SK:                 projectRelationSK(projectID),
		GSI1PK:             userPK(userID),
		GSI1SK:             projectRelationSK(projectID),
		ProjectName:        project.Name,
		ProjectDescription: project.Description,
	}

	item, err := attributevalue.MarshalMap(relation)
	if err != nil {
		return apperrors.NewStoreError("marshal project relation", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to assign project",
			zap.String("projectID", projectID),
			zap.String("userID", userID),
			zap.Error(err),
		)
		return apperrors.NewStoreError("PutItem", err)
	}

	r.logger.Info("Project assigned",
		zap.String("projectID", projectID),
		zap.String("userID", userID),
	)
	return nil
}

// GetProjectsForUser queries GSI1 for the user's project relations. The
// returned items carry the denormalized snapshot, which may lag behind later
// project edits.
func (r *ProjectRepository) GetProjectsForUser(ctx context.Context, username string) ([]entities.ProjectRelation, error) {
	keyCond := expression.Key("gsi1pk").Equal(expression.Value(userPK(username)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewStoreError("build query expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.gsi1IndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewStoreError("Query", err)
	}

	relations := make([]entities.ProjectRelation, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &relations); err != nil {
		return nil, apperrors.NewStoreError("unmarshal project relations", err)
	}

	return relations, nil
}
