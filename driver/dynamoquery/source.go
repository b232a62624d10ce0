package dynamoquery

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/goforj/lazystore/lazycore"
)

const (
	defaultTimeout      = 5 * time.Second
	defaultPrefix       = "app"
	defaultRegion       = "us-east-1"
	defaultTable        = "query_documents"
	defaultKeyAttribute = "k"
)

// DynamoAPI captures the subset of DynamoDB client methods used by the source.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Config configures a DynamoDB-backed query source.
type Config struct {
	lazycore.BaseConfig
	Client       DynamoAPI
	Endpoint     string
	Region       string
	Table        string
	KeyAttribute string
}

type source struct {
	client  DynamoAPI
	table   string
	keyAttr string
	prefix  string
	timeout time.Duration
}

// New builds a DynamoDB-backed lazycore.QuerySource. The descriptor's
// Query is the item key; the item's remaining attributes become the
// document.
//
// Defaults:
// - Region: "us-east-1" when empty
// - Table: "query_documents" when empty
// - KeyAttribute: "k" when empty
// - Timeout: 5*time.Second when zero
// - Prefix: "app" when empty
// - Client: auto-created when nil (uses Region and optional Endpoint)
func New(ctx context.Context, cfg Config) (lazycore.QuerySource, error) {
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.Table == "" {
		cfg.Table = defaultTable
	}
	if cfg.KeyAttribute == "" {
		cfg.KeyAttribute = defaultKeyAttribute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Client == nil {
		client, err := newDynamoClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		cfg.Client = client
	}
	return &source{
		client:  cfg.Client,
		table:   cfg.Table,
		keyAttr: cfg.KeyAttribute,
		prefix:  cfg.Prefix,
		timeout: cfg.Timeout,
	}, nil
}

func newDynamoClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "")),
	)
	if err != nil {
		return nil, err
	}
	if cfg.Endpoint != "" {
		awsCfg.EndpointResolverWithOptions = aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: cfg.Endpoint, HostnameImmutable: true}, nil
		})
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func (s *source) Driver() lazycore.Driver { return lazycore.DriverDynamo }

func (s *source) Fetch(ctx context.Context, desc lazycore.Descriptor) (lazycore.Document, error) {
	if s.client == nil {
		return nil, errors.New("dynamodb query client unavailable")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            map[string]types.AttributeValue{s.keyAttr: &types.AttributeValueMemberS{Value: s.queryKey(desc.Query)}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	doc := make(lazycore.Document, len(out.Item))
	for name, attr := range out.Item {
		if name == s.keyAttr {
			continue
		}
		value, ok := attributeValue(attr)
		if !ok {
			continue
		}
		doc[name] = value
	}
	return doc, nil
}

func (s *source) queryKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// attributeValue converts the scalar attribute types the source cares
// about; unsupported shapes (lists, maps, sets) are skipped.
func attributeValue(attr types.AttributeValue) (any, bool) {
	switch v := attr.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, true
	case *types.AttributeValueMemberN:
		n, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case *types.AttributeValueMemberBOOL:
		return v.Value, true
	case *types.AttributeValueMemberB:
		return v.Value, true
	case *types.AttributeValueMemberNULL:
		return nil, true
	default:
		return nil, false
	}
}
