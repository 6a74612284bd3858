package entities

// User roles. Role is stored as free text but the create path only accepts
// these two values.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the metadata item for a user, stored at
// (USER#{username}, METADATA#{username}). Username is the natural key;
// uniqueness is enforced with a conditional write at creation time only.
type User struct {
	PK        string `dynamodbav:"pk" json:"pk"`
	SK        string `dynamodbav:"sk" json:"sk"`
	Username  string `dynamodbav:"username" json:"username"`
	Name      string `dynamodbav:"name" json:"name"`
	Role      string `dynamodbav:"role" json:"role"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}
