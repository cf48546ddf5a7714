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

const servicesWorkerIDIndex = "worker_id-index"

type serviceReviewItem struct {
	UserID    string `dynamodbav:"user_id"`
	UserName  string `dynamodbav:"user_name"`
	Rating    int    `dynamodbav:"rating"`
	Comment   string `dynamodbav:"comment,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type serviceItem struct {
	ID             string              `dynamodbav:"id"`
	Title          string              `dynamodbav:"title"`
	Description    string              `dynamodbav:"description"`
	Category       string              `dynamodbav:"category"`
	Price          float64             `dynamodbav:"price"`
	WorkerID       string              `dynamodbav:"worker_id"`
	WorkerName     string              `dynamodbav:"worker_name"`
	WorkerLocation string              `dynamodbav:"worker_location,omitempty"`
	LocationType   string              `dynamodbav:"location_type"`
	Coordinates    []float64           `dynamodbav:"coordinates"`
	Availability   string              `dynamodbav:"availability"`
	IsActive       bool                `dynamodbav:"is_active"`
	AverageRating  float64             `dynamodbav:"average_rating"`
	Reviews        []serviceReviewItem `dynamodbav:"reviews,omitempty"`
	ViewCount      int                 `dynamodbav:"view_count"`
	BookedCount    int                 `dynamodbav:"booked_count"`
	CreatedAt      string              `dynamodbav:"created_at"`
	UpdatedAt      string              `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: worker_id-index (PK: worker_id)
//
// The average rating is recomputed from the embedded reviews on every write,
// mirroring the document store's pre-save hook. The booking review flow never
// populates that array, so in practice the aggregate only moves when some
// other writer embeds reviews directly.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.RecalculateAverageRating()
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListAvailable(ctx context.Context) ([]entities.Service, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("availability = :a AND is_active = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":a": &types.AttributeValueMemberS{Value: string(entities.ServiceAvailable)},
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServices(out.Items)
}

func (r *ServiceDynamoRepository) ListByWorkerID(ctx context.Context, workerID string) ([]entities.Service, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesWorkerIDIndex),
		KeyConditionExpression: aws.String("worker_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServices(out.Items)
}

func (r *ServiceDynamoRepository) Save(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.RecalculateAverageRating()
	s.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func unmarshalServices(raw []map[string]types.AttributeValue) ([]entities.Service, error) {
	items := make([]entities.Service, 0, len(raw))
	for _, m := range raw {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func toServiceItem(s entities.Service) serviceItem {
	reviews := make([]serviceReviewItem, 0, len(s.Reviews))
	for _, rv := range s.Reviews {
		reviews = append(reviews, serviceReviewItem{
			UserID:    rv.UserID,
			UserName:  rv.UserName,
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			CreatedAt: rv.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	if len(reviews) == 0 {
		reviews = nil
	}
	return serviceItem{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		Category:       s.Category,
		Price:          s.Price,
		WorkerID:       s.WorkerID,
		WorkerName:     s.WorkerName,
		WorkerLocation: s.WorkerLocation,
		LocationType:   s.Location.Type,
		Coordinates:    s.Location.Coordinates,
		Availability:   string(s.Availability),
		IsActive:       s.IsActive,
		AverageRating:  s.AverageRating,
		Reviews:        reviews,
		ViewCount:      s.ViewCount,
		BookedCount:    s.BookedCount,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	reviews := make([]entities.ServiceReview, 0, len(it.Reviews))
	for _, rv := range it.Reviews {
		reviewedAt, _ := time.Parse(time.RFC3339Nano, rv.CreatedAt)
		reviews = append(reviews, entities.ServiceReview{
			UserID:    rv.UserID,
			UserName:  rv.UserName,
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			CreatedAt: reviewedAt,
		})
	}
	if len(reviews) == 0 {
		reviews = nil
	}
	return entities.Service{
		ID:             it.ID,
		Title:          it.Title,
		Description:    it.Description,
		Category:       it.Category,
		Price:          it.Price,
		WorkerID:       it.WorkerID,
		WorkerName:     it.WorkerName,
		WorkerLocation: it.WorkerLocation,
		Location: entities.GeoPoint{
			Type:        it.LocationType,
			Coordinates: it.Coordinates,
		},
		Availability:  entities.ServiceAvailability(it.Availability),
		IsActive:      it.IsActive,
		AverageRating: it.AverageRating,
		Reviews:       reviews,
		ViewCount:     it.ViewCount,
		BookedCount:   it.BookedCount,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
