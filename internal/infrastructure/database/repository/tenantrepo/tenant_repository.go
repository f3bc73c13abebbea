package tenantrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordervoice/order-api/internal/domain/tenant"
	"ordervoice/order-api/internal/infrastructure/database/dbschema"
	"ordervoice/order-api/internal/infrastructure/database/transaction"
	"ordervoice/order-api/internal/utils/functional"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type TenantGormRepository struct {
	tx *transaction.Database
}

var _ tenant.Repository = (*TenantGormRepository)(nil)

func NewTenantGormRepository(tx *transaction.Database) tenant.Repository {
	return &TenantGormRepository{tx: tx}
}

// Create implements tenant.Repository.
func (repo *TenantGormRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	dbTenant := dbschema.NewSchemaTenant(t)
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbTenant).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create tenant")
	}
	t.ID = dbTenant.ID
	t.CreatedAt = dbTenant.CreatedAt
	t.UpdatedAt = dbTenant.UpdatedAt
	return nil
}

// FindByID implements tenant.Repository.
func (repo *TenantGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	var dbTenant dbschema.Tenant
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&dbTenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "tenant not found", err)
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find tenant")
	}
	return dbTenant.EtoD(), nil
}

// List implements tenant.Repository.
func (repo *TenantGormRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	var rows []dbschema.Tenant
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list tenants")
	}

	return functional.Map(rows, func(row dbschema.Tenant) *tenant.Tenant { return row.EtoD() }), nil
}

// Update implements tenant.Repository.
func (repo *TenantGormRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	dbTenant := dbschema.NewSchemaTenant(t)
	dbTenant.UpdatedAt = time.Now()
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Save(dbTenant).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update tenant")
	}
	t.UpdatedAt = dbTenant.UpdatedAt
	return nil
}

// Delete implements tenant.Repository.
func (repo *TenantGormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbschema.Tenant{})
	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete tenant")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "tenant not found", nil)
	}
	return nil
}
