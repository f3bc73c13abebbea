package productrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordervoice/order-api/internal/domain/catalog"
	"ordervoice/order-api/internal/infrastructure/database/dbschema"
	"ordervoice/order-api/internal/infrastructure/database/transaction"
	"ordervoice/order-api/internal/utils/functional"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type ProductGormRepository struct {
	tx *transaction.Database
}

var _ catalog.Repository = (*ProductGormRepository)(nil)

func NewProductGormRepository(tx *transaction.Database) catalog.Repository {
	return &ProductGormRepository{tx: tx}
}

// Create implements catalog.Repository.
func (repo *ProductGormRepository) Create(ctx context.Context, p *catalog.Product) error {
	dbProduct := dbschema.NewSchemaProduct(p)
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbProduct).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create product")
	}
	p.ID = dbProduct.ID
	p.CreatedAt = dbProduct.CreatedAt
	p.UpdatedAt = dbProduct.UpdatedAt
	return nil
}

// FindByID implements catalog.Repository.
func (repo *ProductGormRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	var dbProduct dbschema.Product
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "product not found", err)
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find product")
	}
	return dbProduct.EtoD(), nil
}

// FindBySKU implements catalog.Repository.
func (repo *ProductGormRepository) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*catalog.Product, error) {
	var dbProduct dbschema.Product
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("tenant_id = ? AND sku = ?", tenantID, sku).
		First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "product not found", err)
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find product by SKU")
	}
	return dbProduct.EtoD(), nil
}

// FindBySKUs implements catalog.Repository. SKUs without a matching row are
// absent from the result rather than an error.
func (repo *ProductGormRepository) FindBySKUs(ctx context.Context, tenantID uuid.UUID, skus []string) ([]*catalog.Product, error) {
	if len(skus) == 0 {
		return nil, nil
	}
	var rows []dbschema.Product
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("tenant_id = ? AND sku IN ?", tenantID, skus).
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find products by SKUs")
	}
	return functional.Map(rows, func(row dbschema.Product) *catalog.Product { return row.EtoD() }), nil
}

// List implements catalog.Repository.
func (repo *ProductGormRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*catalog.Product, error) {
	var rows []dbschema.Product
	err := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("sku ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list products")
	}
	return functional.Map(rows, func(row dbschema.Product) *catalog.Product { return row.EtoD() }), nil
}

// Update implements catalog.Repository.
func (repo *ProductGormRepository) Update(ctx context.Context, p *catalog.Product) error {
	dbProduct := dbschema.NewSchemaProduct(p)
	dbProduct.UpdatedAt = time.Now()
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Save(dbProduct).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update product")
	}
	p.UpdatedAt = dbProduct.UpdatedAt
	return nil
}

// Delete implements catalog.Repository.
func (repo *ProductGormRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.tx.GetTx(ctx).WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&dbschema.Product{})
	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "product not found", nil)
	}
	return nil
}
