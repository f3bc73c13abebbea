package interactionrepo

import (
	"context"

	"github.com/google/uuid"

	"ordervoice/order-api/internal/domain/interaction"
	"ordervoice/order-api/internal/infrastructure/database/dbschema"
	"ordervoice/order-api/internal/infrastructure/database/transaction"
	"ordervoice/order-api/internal/utils/platformerrors"
)

type InteractionGormRepository struct {
	tx *transaction.Database
}

var _ interaction.Repository = (*InteractionGormRepository)(nil)

func NewInteractionGormRepository(tx *transaction.Database) interaction.Repository {
	return &InteractionGormRepository{tx: tx}
}

// Create implements interaction.Repository.
func (repo *InteractionGormRepository) Create(ctx context.Context, i *interaction.Interaction) error {
	dbInteraction := dbschema.NewSchemaInteraction(i)
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbInteraction).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create interaction")
	}
	i.ID = dbInteraction.ID
	i.CreatedAt = dbInteraction.CreatedAt
	i.UpdatedAt = dbInteraction.UpdatedAt
	return nil
}

// UpdateStatus implements interaction.Repository.
func (repo *InteractionGormRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status interaction.Status) error {
	result := repo.tx.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Interaction{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to update interaction status")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "interaction not found", nil)
	}
	return nil
}

// CreateAnalysisLog implements interaction.Repository.
func (repo *InteractionGormRepository) CreateAnalysisLog(ctx context.Context, l *interaction.AnalysisLog) error {
	dbLog := dbschema.NewSchemaAnalysisLog(l)
	if err := repo.tx.GetTx(ctx).WithContext(ctx).Create(dbLog).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create analysis log")
	}
	l.ID = dbLog.ID
	l.CreatedAt = dbLog.CreatedAt
	return nil
}
