package repository

import (
	"context"
	"sort"
	"time"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderCustomerItem struct {
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
}

type orderShippingItem struct {
	Country         string  `dynamodbav:"country"`
	CountryCode     string  `dynamodbav:"country_code"`
	Department      string  `dynamodbav:"department"`
	DepartmentCode  string  `dynamodbav:"department_code"`
	City            string  `dynamodbav:"city"`
	CityCode        string  `dynamodbav:"city_code"`
	Address         string  `dynamodbav:"address,omitempty"`
	PostalCode      string  `dynamodbav:"postal_code,omitempty"`
	Cost            float64 `dynamodbav:"cost"`
	Currency        string  `dynamodbav:"currency"`
	PricingProvider string  `dynamodbav:"pricing_provider"`
}

type orderTotalsItem struct {
	Subtotal  float64  `dynamodbav:"subtotal"`
	Shipping  float64  `dynamodbav:"shipping"`
	Total     float64  `dynamodbav:"total"`
	Currency  string   `dynamodbav:"currency"`
	TotalPaid *float64 `dynamodbav:"total_paid,omitempty"`
}

type orderLineItem struct {
	ProductID   string  `dynamodbav:"product_id"`
	Name        string  `dynamodbav:"name"`
	Price       float64 `dynamodbav:"price"`
	Quantity    int     `dynamodbav:"quantity"`
	Description string  `dynamodbav:"description,omitempty"`
	Image       string  `dynamodbav:"image,omitempty"`
	Category    string  `dynamodbav:"category,omitempty"`
	Size        string  `dynamodbav:"size,omitempty"`
	Gender      string  `dynamodbav:"gender,omitempty"`
}

type orderPaymentItem struct {
	Provider          string   `dynamodbav:"provider"`
	PreferenceID      string   `dynamodbav:"preference_id,omitempty"`
	InitPoint         string   `dynamodbav:"init_point,omitempty"`
	Status            string   `dynamodbav:"status,omitempty"`
	PaymentID         string   `dynamodbav:"payment_id,omitempty"`
	StatusDetail      string   `dynamodbav:"status_detail,omitempty"`
	PaidAt            string   `dynamodbav:"paid_at,omitempty"`
	TransactionAmount *float64 `dynamodbav:"transaction_amount,omitempty"`
	Currency          string   `dynamodbav:"currency,omitempty"`
}

type orderItem struct {
	ID              string            `dynamodbav:"id"`
	Status          string            `dynamodbav:"status"`
	PaymentProvider string            `dynamodbav:"payment_provider"`
	Customer        orderCustomerItem `dynamodbav:"customer"`
	Shipping        orderShippingItem `dynamodbav:"shipping"`
	Totals          orderTotalsItem   `dynamodbav:"totals"`
	Items           []orderLineItem   `dynamodbav:"items"`
	Payment         *orderPaymentItem `dynamodbav:"payment,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The order id doubles as the gateway external_reference, so
// GetByExternalReference is an exact-key read on id. Update is a
// read-modify-write over the whole item: concurrent updaters of the same id
// are last-write-wins.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}

	// Newest first, matching the storefront's order-history view.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// GetByExternalReference resolves the gateway's external_reference back to an
// order. The reference is the order id by construction.
func (r *OrderDynamoRepository) GetByExternalReference(ctx context.Context, externalReference string) (entities.Order, error) {
	return r.GetByID(ctx, externalReference)
}

func (r *OrderDynamoRepository) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(order))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, updater interfaces.OrderUpdater) (entities.Order, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, nil
	}

	updated := updater(current)

	av, err := attributevalue.MarshalMap(toOrderItem(updated))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:              o.ID,
		Status:          string(o.Status),
		PaymentProvider: o.PaymentProvider,
		Customer: orderCustomerItem{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Email:     o.Customer.Email,
			Phone:     o.Customer.Phone,
		},
		Shipping: orderShippingItem{
			Country:         o.Shipping.Country,
			CountryCode:     o.Shipping.CountryCode,
			Department:      o.Shipping.Department,
			DepartmentCode:  o.Shipping.DepartmentCode,
			City:            o.Shipping.City,
			CityCode:        o.Shipping.CityCode,
			Address:         o.Shipping.Address,
			PostalCode:      o.Shipping.PostalCode,
			Cost:            o.Shipping.Cost,
			Currency:        o.Shipping.Currency,
			PricingProvider: o.Shipping.PricingProvider,
		},
		Totals: orderTotalsItem{
			Subtotal:  o.Totals.Subtotal,
			Shipping:  o.Totals.Shipping,
			Total:     o.Totals.Total,
			Currency:  o.Totals.Currency,
			TotalPaid: o.Totals.TotalPaid,
		},
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	it.Items = make([]orderLineItem, 0, len(o.Items))
	for _, line := range o.Items {
		it.Items = append(it.Items, orderLineItem{
			ProductID:   line.ProductID,
			Name:        line.Name,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Description: line.Description,
			Image:       line.Image,
			Category:    line.Category,
			Size:        line.Size,
			Gender:      line.Gender,
		})
	}

	if o.Payment != nil {
		payment := orderPaymentItem{
			Provider:          o.Payment.Provider,
			PreferenceID:      o.Payment.PreferenceID,
			InitPoint:         o.Payment.InitPoint,
			Status:            o.Payment.Status,
			PaymentID:         o.Payment.PaymentID,
			StatusDetail:      o.Payment.StatusDetail,
			TransactionAmount: o.Payment.TransactionAmount,
			Currency:          o.Payment.Currency,
		}
		if o.Payment.PaidAt != nil {
			payment.PaidAt = o.Payment.PaidAt.UTC().Format(time.RFC3339Nano)
		}
		it.Payment = &payment
	}

	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.Order{
		ID:              it.ID,
		Status:          entities.OrderStatus(it.Status),
		PaymentProvider: it.PaymentProvider,
		Customer: entities.Customer{
			FirstName: it.Customer.FirstName,
			LastName:  it.Customer.LastName,
			Email:     it.Customer.Email,
			Phone:     it.Customer.Phone,
		},
		Shipping: entities.ShippingInfo{
			Country:         it.Shipping.Country,
			CountryCode:     it.Shipping.CountryCode,
			Department:      it.Shipping.Department,
			DepartmentCode:  it.Shipping.DepartmentCode,
			City:            it.Shipping.City,
			CityCode:        it.Shipping.CityCode,
			Address:         it.Shipping.Address,
			PostalCode:      it.Shipping.PostalCode,
			Cost:            it.Shipping.Cost,
			Currency:        it.Shipping.Currency,
			PricingProvider: it.Shipping.PricingProvider,
		},
		Totals: entities.Totals{
			Subtotal:  it.Totals.Subtotal,
			Shipping:  it.Totals.Shipping,
			Total:     it.Totals.Total,
			Currency:  it.Totals.Currency,
			TotalPaid: it.Totals.TotalPaid,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	o.Items = make([]entities.OrderItem, 0, len(it.Items))
	for _, line := range it.Items {
		o.Items = append(o.Items, entities.OrderItem{
			ProductID:   line.ProductID,
			Name:        line.Name,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Description: line.Description,
			Image:       line.Image,
			Category:    line.Category,
			Size:        line.Size,
			Gender:      line.Gender,
		})
	}

	if it.Payment != nil {
		payment := entities.PaymentInfo{
			Provider:          it.Payment.Provider,
			PreferenceID:      it.Payment.PreferenceID,
			InitPoint:         it.Payment.InitPoint,
			Status:            it.Payment.Status,
			PaymentID:         it.Payment.PaymentID,
			StatusDetail:      it.Payment.StatusDetail,
			TransactionAmount: it.Payment.TransactionAmount,
			Currency:          it.Payment.Currency,
		}
		if it.Payment.PaidAt != "" {
			if paidAt, err := time.Parse(time.RFC3339Nano, it.Payment.PaidAt); err == nil {
				payment.PaidAt = &paidAt
			}
		}
		o.Payment = &payment
	}

	return o
}
