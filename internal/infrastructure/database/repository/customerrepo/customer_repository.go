package customerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordervoice/order-api/internal/domain/customer"
	"ordervoice/order-api/internal/infrastructure/database/dbschema"
	"ordervoice/order-api/internal/infrastructure/database/transaction"
	"ordervoice/order-api/internal/utils/functional"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type CustomerGormRepository struct {
	tx *transaction.Database
}

var _ customer.Repository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(tx *transaction.Database) customer.Repository {
	return &CustomerGormRepository{tx: tx}
}

// Create implements customer.Repository.
func (repo *CustomerGormRepository) Create(ctx context.Context, c *customer.Customer) error {
	dbCustomer := dbschema.NewSchemaCustomer(c)
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbCustomer).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create customer")
	}
	c.ID = dbCustomer.ID
	c.CreatedAt = dbCustomer.CreatedAt
	c.UpdatedAt = dbCustomer.UpdatedAt
	return nil
}

// FindByID implements customer.Repository.
func (repo *CustomerGormRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*customer.Customer, error) {
	var dbCustomer dbschema.Customer
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&dbCustomer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "customer not found", err)
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find customer")
	}
	return dbCustomer.EtoD(), nil
}

// List implements customer.Repository.
func (repo *CustomerGormRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*customer.Customer, error) {
	var rows []dbschema.Customer
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list customers")
	}

	return functional.Map(rows, func(row dbschema.Customer) *customer.Customer { return row.EtoD() }), nil
}

// Update implements customer.Repository.
func (repo *CustomerGormRepository) Update(ctx context.Context, c *customer.Customer) error {
	dbCustomer := dbschema.NewSchemaCustomer(c)
	dbCustomer.UpdatedAt = time.Now()
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Save(dbCustomer).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update customer")
	}
	c.UpdatedAt = dbCustomer.UpdatedAt
	return nil
}

// Delete implements customer.Repository.
func (repo *CustomerGormRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&dbschema.Customer{})
	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "customer not found", nil)
	}
	return nil
}
