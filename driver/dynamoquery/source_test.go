package dynamoquery

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/goforj/lazystore/lazycore"
	"github.com/goforj/lazystore/lazytest"
)

// stubDynamo is an in-memory DynamoAPI used for unit tests.
type stubDynamo struct {
	items   map[string]map[string]types.AttributeValue
	err     error
	lastKey string
}

func newStubDynamo() *stubDynamo {
	return &stubDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func (c *stubDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if c.err != nil {
		return nil, c.err
	}
	for _, attr := range params.Key {
		if s, ok := attr.(*types.AttributeValueMemberS); ok {
			c.lastKey = s.Value
		}
	}
	return &dynamodb.GetItemOutput{Item: c.items[c.lastKey]}, nil
}

func newTestSource(t *testing.T, client DynamoAPI) lazycore.QuerySource {
	t.Helper()
	source, err := New(context.Background(), Config{Client: client})
	if err != nil {
		t.Fatalf("new source failed: %v", err)
	}
	return source
}

func TestDynamoSourceContract(t *testing.T) {
	client := newStubDynamo()
	client.items["app:token"] = map[string]types.AttributeValue{
		"k":       &types.AttributeValueMemberS{Value: "app:token"},
		"token":   &types.AttributeValueMemberS{Value: "abc"},
		"expires": &types.AttributeValueMemberN{Value: "3600"},
	}

	source := newTestSource(t, client)
	lazytest.RunQuerySourceContract(t, source, lazytest.Options{
		Miss: lazycore.Descriptor{Query: "unknown"},
		Hit:  lazycore.Descriptor{Query: "token"},
		Want: lazycore.Document{"token": "abc", "expires": 3600.0},
	})
}

func TestDynamoSourceConvertsScalarAttributes(t *testing.T) {
	client := newStubDynamo()
	client.items["app:session"] = map[string]types.AttributeValue{
		"k":      &types.AttributeValueMemberS{Value: "app:session"},
		"user":   &types.AttributeValueMemberS{Value: "ada"},
		"count":  &types.AttributeValueMemberN{Value: "2"},
		"active": &types.AttributeValueMemberBOOL{Value: true},
		"note":   &types.AttributeValueMemberNULL{Value: true},
		"nested": &types.AttributeValueMemberM{Value: nil},
	}

	source := newTestSource(t, client)
	doc, err := source.Fetch(context.Background(), lazycore.Descriptor{Query: "session"})
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if doc["user"] != "ada" || doc["count"] != 2.0 || doc["active"] != true {
		t.Fatalf("unexpected document %v", doc)
	}
	if value, ok := doc["note"]; !ok || value != nil {
		t.Fatalf("expected explicit null attribute, got %v", doc)
	}
	if _, ok := doc["nested"]; ok {
		t.Fatalf("expected unsupported attribute shape to be skipped")
	}
	if _, ok := doc["k"]; ok {
		t.Fatalf("expected key attribute excluded from document")
	}
}

func TestDynamoSourceMissingItemMeansNoData(t *testing.T) {
	source := newTestSource(t, newStubDynamo())
	doc, err := source.Fetch(context.Background(), lazycore.Descriptor{Query: "absent"})
	if err != nil || doc != nil {
		t.Fatalf("expected no data, got doc=%v err=%v", doc, err)
	}
}

func TestDynamoSourceSurfacesClientErrors(t *testing.T) {
	client := newStubDynamo()
	client.err = errors.New("throttled")

	source := newTestSource(t, client)
	if _, err := source.Fetch(context.Background(), lazycore.Descriptor{Query: "token"}); err == nil {
		t.Fatalf("expected client error to surface")
	}
}

func TestDynamoSourceDriver(t *testing.T) {
	source := newTestSource(t, newStubDynamo())
	if got := source.Driver(); got != lazycore.DriverDynamo {
		t.Fatalf("expected dynamodb driver, got %s", got)
	}
}
