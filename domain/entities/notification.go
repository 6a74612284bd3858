package entities

// Notification lives at (USER#{username}, NOTIFICATION#{id}) with a
// time-ordered sort key. This service only reads notifications; they are
// written by the downstream consumer of the domain events this service emits.
type Notification struct {
	PK        string `dynamodbav:"pk" json:"pk"`
	SK        string `dynamodbav:"sk" json:"sk"`
	Type      string `dynamodbav:"type,omitempty" json:"type,omitempty"`
	Message   string `dynamodbav:"message,omitempty" json:"message,omitempty"`
	CreatedAt string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}
