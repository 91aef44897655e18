package dynamodb

import (
	"context"
	"fmt"

	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// maxBatchWriteItems is the DynamoDB limit for a single BatchWriteItem call
const maxBatchWriteItems = 25

// maxUnprocessedAttempts bounds how many times unprocessed batch items are resent
const maxUnprocessedAttempts = 5

// TermRepository reads and loads term records in a DynamoDB table
type TermRepository struct {
	client API
	table  string
	logger *logrus.Logger
}

// NewTermRepository creates a repository bound to the given table
func NewTermRepository(client API, table string, logger *logrus.Logger) *TermRepository {
	if table == "" {
		table = repositories.DefaultTableName
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &TermRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Get performs a GetItem on the term key
func (r *TermRepository) Get(ctx context.Context, term string) (*models.Term, error) {
	// DynamoDB rejects empty key values; an empty term can never be stored, so it is a miss.
	if term == "" {
		return nil, repositories.NotFoundError(r.table, term)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			models.FieldTerm: &types.AttributeValueMemberS{Value: term},
		},
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", r.table, term, err)
	}
	if len(out.Item) == 0 {
		return nil, repositories.NotFoundError(r.table, term)
	}

	record, err := decodeItem(out.Item)
	if err != nil {
		return nil, repositories.NewRepositoryError("get", r.table, term, err)
	}
	return &record, nil
}

// Search scans the full table, following LastEvaluatedKey until exhausted.
// In legacy mode the substring predicate runs server side as a contains()
// filter on the stored values; in folded mode every item is read and
// compared case-insensitively here, since DynamoDB has no lowercase function.
func (r *TermRepository) Search(ctx context.Context, q models.SearchQuery) ([]models.Term, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	}

	if q.Mode == models.MatchLegacy && !q.MatchAll() {
		filter := expression.Name(models.FieldTerm).Contains(q.Text).
			Or(expression.Name(models.FieldDefinition).Contains(q.Text))
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, repositories.NewRepositoryError("search", r.table, "", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	terms := make([]models.Term, 0)
	pages := 0
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, repositories.NewRepositoryError("search", r.table, "", err)
		}
		pages++

		for _, item := range page.Items {
			record, err := decodeItem(item)
			if err != nil {
				return nil, repositories.NewRepositoryError("search", r.table, "", err)
			}
			if q.Matches(record) {
				terms = append(terms, record)
			}
		}
	}

	r.logger.WithFields(logrus.Fields{
		"table":   r.table,
		"mode":    q.Mode,
		"pages":   pages,
		"matches": len(terms),
	}).Debug("Scan completed")

	return terms, nil
}

// PutTerms writes records with BatchWriteItem, resending unprocessed items
func (r *TermRepository) PutTerms(ctx context.Context, terms []models.Term) (int, error) {
	written := 0
	for start := 0; start < len(terms); start += maxBatchWriteItems {
		end := start + maxBatchWriteItems
		if end > len(terms) {
			end = len(terms)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, t := range terms[start:end] {
			item, err := attributevalue.MarshalMap(t.ToMap())
			if err != nil {
				return written, repositories.NewRepositoryError("put", r.table, t.Term, err)
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		if err := r.writeBatch(ctx, requests); err != nil {
			return written, err
		}
		written += len(requests)
	}
	return written, nil
}

func (r *TermRepository) writeBatch(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.table: requests}
	for attempt := 1; attempt <= maxUnprocessedAttempts; attempt++ {
		out, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: pending,
		})
		if err != nil {
			return repositories.NewRepositoryError("put", r.table, "", err)
		}
		if len(out.UnprocessedItems[r.table]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
		r.logger.WithFields(logrus.Fields{
			"table":       r.table,
			"attempt":     attempt,
			"unprocessed": len(pending[r.table]),
		}).Warn("Batch write left unprocessed items")
	}
	return repositories.NewRepositoryError("put", r.table, "",
		fmt.Errorf("%d items still unprocessed after %d attempts", len(pending[r.table]), maxUnprocessedAttempts))
}

// Close is a no-op; the SDK client holds no closable resources
func (r *TermRepository) Close() error {
	return nil
}

func decodeItem(item map[string]types.AttributeValue) (models.Term, error) {
	var m map[string]any
	if err := attributevalue.UnmarshalMap(item, &m); err != nil {
		return models.Term{}, fmt.Errorf("failed to decode item: %w", err)
	}
	return models.TermFromMap(m), nil
}
