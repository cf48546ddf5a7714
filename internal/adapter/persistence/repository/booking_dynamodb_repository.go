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

const (
	bookingsWorkerIDIndex = "worker_id-index"
	bookingsUserIDIndex   = "user_id-index"
)

type bookingItem struct {
	ID              string  `dynamodbav:"id"`
	ServiceID       string  `dynamodbav:"service_id"`
	WorkerID        string  `dynamodbav:"worker_id"`
	UserID          string  `dynamodbav:"user_id"`
	UserName        string  `dynamodbav:"user_name"`
	ServiceTitle    string  `dynamodbav:"service_title"`
	BookingDate     string  `dynamodbav:"booking_date"`
	BookingTime     string  `dynamodbav:"booking_time"`
	UserAddress     string  `dynamodbav:"user_address"`
	Notes           string  `dynamodbav:"notes,omitempty"`
	Price           float64 `dynamodbav:"price"`
	Status          string  `dynamodbav:"status"`
	WorkerCompleted bool    `dynamodbav:"worker_completed"`
	UserCompleted   bool    `dynamodbav:"user_completed"`
	PaymentStatus   string  `dynamodbav:"payment_status"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: worker_id-index (PK: worker_id)
//   - GSI: user_id-index (PK: user_id)
//
// Save replaces the full document. DynamoDB makes that single write atomic,
// but the lifecycle engine's read-then-save sequence is not; see the booking
// use case for the dual-completion hazard this leaves open.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByWorkerID(ctx context.Context, workerID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsWorkerIDIndex, "worker_id", workerID)
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsUserIDIndex, "user_id", userID)
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func (r *BookingDynamoRepository) Save(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	b.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	// Unconditional full replace: last writer wins.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		WorkerID:        b.WorkerID,
		UserID:          b.UserID,
		UserName:        b.UserName,
		ServiceTitle:    b.ServiceTitle,
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
		UserAddress:     b.UserAddress,
		Notes:           b.Notes,
		Price:           b.Price,
		Status:          string(b.Status),
		WorkerCompleted: b.WorkerCompleted,
		UserCompleted:   b.UserCompleted,
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Booking{
		ID:              it.ID,
		ServiceID:       it.ServiceID,
		WorkerID:        it.WorkerID,
		UserID:          it.UserID,
		UserName:        it.UserName,
		ServiceTitle:    it.ServiceTitle,
		BookingDate:     it.BookingDate,
		BookingTime:     it.BookingTime,
		UserAddress:     it.UserAddress,
		Notes:           it.Notes,
		Price:           it.Price,
		Status:          entities.BookingStatus(it.Status),
		WorkerCompleted: it.WorkerCompleted,
		UserCompleted:   it.UserCompleted,
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
