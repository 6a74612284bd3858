package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// mockClient is an expectation-based mock for the Client interface. Calls with
// no function set fail the test.
type mockClient struct {
	t            *testing.T
	GetFunc      func(context.Context, *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	PutFunc      func(context.Context, *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	UpdateFunc   func(context.Context, *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	DeleteFunc   func(context.Context, *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	QueryFunc    func(context.Context, *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	ScanFunc     func(context.Context, *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	TransactFunc func(context.Context, *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ Client = (*mockClient)(nil)

func newMockClient(t *testing.T) *mockClient {
	return &mockClient{t: t}
}

func (m *mockClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.GetFunc == nil {
		m.t.Fatal("unexpected GetItem call")
	}
	return m.GetFunc(ctx, params)
}

func (m *mockClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.PutFunc == nil {
		m.t.Fatal("unexpected PutItem call")
	}
	return m.PutFunc(ctx, params)
}

func (m *mockClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if m.UpdateFunc == nil {
		m.t.Fatal("unexpected UpdateItem call")
	}
	return m.UpdateFunc(ctx, params)
}

func (m *mockClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.DeleteFunc == nil {
		m.t.Fatal("unexpected DeleteItem call")
	}
	return m.DeleteFunc(ctx, params)
}

func (m *mockClient) Query(ctx context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if m.QueryFunc == nil {
		m.t.Fatal("unexpected Query call")
	}
	return m.QueryFunc(ctx, params)
}

func (m *mockClient) Scan(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.ScanFunc == nil {
		m.t.Fatal("unexpected Scan call")
	}
	return m.ScanFunc(ctx, params)
}

func (m *mockClient) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if m.TransactFunc == nil {
		m.t.Fatal("unexpected TransactWriteItems call")
	}
	return m.TransactFunc(ctx, params)
}
