package orderrepo

import (
	"context"
	"time"

	"ordervoice/order-api/internal/domain/order"
	"ordervoice/order-api/internal/infrastructure/database/dbschema"
	"ordervoice/order-api/internal/infrastructure/database/transaction"
	"ordervoice/order-api/internal/infrastructure/metrics"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type OrderGormRepository struct {
	tx *transaction.Database
}

var _ order.Repository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(tx *transaction.Database) order.Repository {
	return &OrderGormRepository{tx: tx}
}

// CreateOrder implements order.Repository.
func (repo *OrderGormRepository) CreateOrder(ctx context.Context, o *order.Order) error {
	dbOrder := dbschema.NewSchemaOrder(o)
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbOrder).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create order")
	}
	o.ID = dbOrder.ID
	o.CreatedAt = dbOrder.CreatedAt
	o.UpdatedAt = dbOrder.UpdatedAt
	return nil
}

// UpdateOrder implements order.Repository.
func (repo *OrderGormRepository) UpdateOrder(ctx context.Context, o *order.Order) error {
	dbOrder := dbschema.NewSchemaOrder(o)
	dbOrder.UpdatedAt = time.Now()
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Order{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"status":       dbOrder.Status,
			"total_amount": dbOrder.TotalAmount,
			"updated_at":   dbOrder.UpdatedAt,
		}).Error
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update order")
	}
	o.UpdatedAt = dbOrder.UpdatedAt
	return nil
}

// CreateItems implements order.Repository.
func (repo *OrderGormRepository) CreateItems(ctx context.Context, items []*order.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	dbItems := make([]*dbschema.OrderItem, len(items))
	for i, item := range items {
		dbItems[i] = dbschema.NewSchemaOrderItem(item)
	}
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbItems).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create order items")
	}
	for i, dbItem := range dbItems {
		items[i].ID = dbItem.ID
		items[i].CreatedAt = dbItem.CreatedAt
	}
	return nil
}

// CreateAnomalies implements order.Repository.
func (repo *OrderGormRepository) CreateAnomalies(ctx context.Context, anomalies []*order.Anomaly) error {
	if len(anomalies) == 0 {
		return nil
	}
	dbAnomalies := make([]*dbschema.Anomaly, len(anomalies))
	for i, a := range anomalies {
		dbAnomalies[i] = dbschema.NewSchemaAnomaly(a)
	}
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbAnomalies).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create anomalies")
	}
	for i, dbAnomaly := range dbAnomalies {
		anomalies[i].ID = dbAnomaly.ID
		anomalies[i].CreatedAt = dbAnomaly.CreatedAt
		metrics.RecordAnomaly(string(dbAnomaly.RuleCode))
	}
	return nil
}

// CountExpiredQuotes implements order.Repository.
func (repo *OrderGormRepository) CountExpiredQuotes(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Quote{}).
		Where("valid_until < ?", asOf).
		Count(&count).Error
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count expired quotes")
	}
	return count, nil
}

// CreateQuote implements order.Repository.
func (repo *OrderGormRepository) CreateQuote(ctx context.Context, q *order.Quote) error {
	dbQuote := dbschema.NewSchemaQuote(q)
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbQuote).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create quote")
	}
	q.ID = dbQuote.ID
	q.CreatedAt = dbQuote.CreatedAt
	return nil
}
