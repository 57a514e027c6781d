package repository

import (
	"context"
	"strconv"
	"time"

	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID           string `dynamodbav:"id"`
	Seq          int    `dynamodbav:"seq"`
	ProviderID   string `dynamodbav:"provider_id"`
	ProviderName string `dynamodbav:"provider_name"`
	ServiceID    string `dynamodbav:"service_id"`
	ServiceName  string `dynamodbav:"service_name"`
	UserID       string `dynamodbav:"user_id"`
	Date         string `dynamodbav:"date"`
	Time         string `dynamodbav:"time"`
	Status       string `dynamodbav:"status"`
	TotalPrice   string `dynamodbav:"total_price"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// BookingDynamoRepository is the hosted alternative to the file store,
// selected with BOOKINGS_BACKEND=dynamodb.
//
// Table requirements:
//   - PK: id (string)
//
// Bookings are never deleted, so the store's full-overwrite contract reduces
// to upserting every row. Seq preserves insertion order across the unordered
// Scan read path.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) LoadAll(ctx context.Context) ([]entities.Booking, error) {
	items := make([]bookingItem, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []bookingItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// Restore insertion order.
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[j].Seq < items[i].Seq {
				items[i], items[j] = items[j], items[i]
			}
		}
	}

	bookings := make([]entities.Booking, 0, len(items))
	for _, it := range items {
		bookings = append(bookings, fromBookingItem(it))
	}
	return bookings, nil
}

func (r *BookingDynamoRepository) SaveAll(ctx context.Context, bookings []entities.Booking) error {
	for i, b := range bookings {
		av, err := attributevalue.MarshalMap(toBookingItem(b, i))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toBookingItem(b entities.Booking, seq int) bookingItem {
	return bookingItem{
		ID:           b.ID,
		Seq:          seq,
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		UserID:       b.UserID,
		Date:         b.Date,
		Time:         b.Time,
		Status:       string(b.Status),
		TotalPrice:   floatToString(b.TotalPrice),
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.TotalPrice, 64)
	return entities.Booking{
		ID:           it.ID,
		ProviderID:   it.ProviderID,
		ProviderName: it.ProviderName,
		ServiceID:    it.ServiceID,
		ServiceName:  it.ServiceName,
		UserID:       it.UserID,
		Date:         it.Date,
		Time:         it.Time,
		Status:       entities.BookingStatus(it.Status),
		TotalPrice:   price,
		CreatedAt:    createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
