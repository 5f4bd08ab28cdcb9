package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mpilhlt/bookreviews-api/internal/models"
)

// DynamoDBAPI is the part of the DynamoDB client used by DynamoDBTable.
type DynamoDBAPI interface {
	sdk.ScanAPIClient
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
}

// dynamoReview is the item layout in the DynamoDB table. The partition key is "id".
type dynamoReview struct {
	ID          string  `dynamodbav:"id"`
	CreatedTime string  `dynamodbav:"createdTime"`
	Book        string  `dynamodbav:"Book"`
	Rating      float64 `dynamodbav:"Rating"`
	Notes       *string `dynamodbav:"Notes,omitempty"`
}

// DynamoDBTable stores reviews in a DynamoDB table. DynamoDB scans are
// unordered, so sorting and limiting happen after the scan.
type DynamoDBTable struct {
	client    DynamoDBAPI
	tableName string
	now       func() time.Time
}

// NewDynamoDBClient initializes a DynamoDB client from the options. Static
// credentials are used if an access key is given, the default AWS credential
// chain otherwise.
func NewDynamoDBClient(ctx context.Context, options *models.Options) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(options.AWSRegion)}
	if options.AWSAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AWSAccessKey, options.AWSSecretKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if options.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(options.DynamoEndpoint)
		}
	})
	return client, nil
}

// NewDynamoDBTable returns a table using the given client.
func NewDynamoDBTable(client DynamoDBAPI, tableName string) *DynamoDBTable {
	return &DynamoDBTable{client: client, tableName: tableName, now: time.Now}
}

func (d *DynamoDBTable) Create(ctx context.Context, fields map[string]any) (models.Record, error) {
	book, rating, notes, err := reviewFromFields(fields)
	if err != nil {
		return models.Record{}, err
	}
	item := dynamoReview{
		ID:          newRecordID(),
		CreatedTime: formatCreatedTime(d.now()),
		Book:        book,
		Rating:      rating,
		Notes:       notes,
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return models.Record{}, fmt.Errorf("dynamodb: failed to marshal review: %w", err)
	}
	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return models.Record{}, fmt.Errorf("dynamodb: failed to put review: %w", err)
	}
	return item.record(), nil
}

func (d *DynamoDBTable) All(ctx context.Context, opts models.ListOptions) ([]models.Record, error) {
	records := []models.Record{}
	paginator := sdk.NewScanPaginator(d.client, &sdk.ScanInput{TableName: aws.String(d.tableName)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: failed to scan reviews: %w", err)
		}
		var items []dynamoReview
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("dynamodb: failed to unmarshal reviews: %w", err)
		}
		for _, item := range items {
			records = append(records, item.record())
		}
	}
	return sortAndLimit(records, opts), nil
}

func (r dynamoReview) record() models.Record {
	return models.Record{
		ID:          r.ID,
		CreatedTime: r.CreatedTime,
		Fields:      fieldsFromReview(r.Book, r.Rating, r.Notes),
	}
}
