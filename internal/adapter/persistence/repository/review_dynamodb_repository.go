package repository

import (
	"context"
	"time"

	"workbee/internal/domain/entities"
	"workbee/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const reviewsBookingIDIndex = "booking_id-index"

type reviewItem struct {
	ID        string `dynamodbav:"id"`
	BookingID string `dynamodbav:"booking_id"`
	UserID    string `dynamodbav:"user_id"`
	WorkerID  string `dynamodbav:"worker_id"`
	Rating    int    `dynamodbav:"rating"`
	Feedback  string `dynamodbav:"feedback"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client, tableName string) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rv))
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) GetByBookingAndUser(ctx context.Context, bookingID, userID string) (entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		FilterExpression:       aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Items) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReviewItem(it))
	}
	return items, nil
}

func toReviewItem(rv entities.Review) reviewItem {
	return reviewItem{
		ID:        rv.ID,
		BookingID: rv.BookingID,
		UserID:    rv.UserID,
		WorkerID:  rv.WorkerID,
		Rating:    rv.Rating,
		Feedback:  rv.Feedback,
		CreatedAt: rv.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Review{
		ID:        it.ID,
		BookingID: it.BookingID,
		UserID:    it.UserID,
		WorkerID:  it.WorkerID,
		Rating:    it.Rating,
		Feedback:  it.Feedback,
		CreatedAt: createdAt,
	}
}
