package entities

// Project is the metadata item for a project, stored at
// (PROJECT#{id}, METADATA#{id}).
type Project struct {
	PK          string `dynamodbav:"pk" json:"pk"`
	SK          string `dynamodbav:"sk" json:"sk"`
	ID          string `dynamodbav:"ID" json:"id"`
	Name        string `dynamodbav:"Name" json:"name"`
	Description string `dynamodbav:"Description" json:"description"`
	CreatedAt   string `dynamodbav:"CreatedAt" json:"createdAt"`
}

// ProjectRelation links a user to a project at (USER#{userId}, PROJECT#{projectId}),
// mirrored onto GSI1 for the user's project listing. The project name and
// description are a denormalized snapshot taken when the relation is written;
// they are not kept in sync with later project edits.
type ProjectRelation struct {
	PK                 string `dynamodbav:"pk" json:"pk"`
	SK                 string `dynamodbav:"sk" json:"sk"`
	GSI1PK             string `dynamodbav:"gsi1pk" json:"gsi1pk"`
	GSI1SK             string `dynamodbav:"gsi1sk" json:"gsi1sk"`
	ProjectName        string `dynamodbav:"projectName" json:"projectName"`
	ProjectDescription string `dynamodbav:"projectDescription" json:"projectDescription"`
}
