package dbschema

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"ordervoice/order-api/internal/domain/interaction"
	"ordervoice/order-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Interaction{})
	database.RegisterSchemaForAutoMigrate(AnalysisLog{})
}

// Interaction represents the database schema for customer interactions
type Interaction struct {
	BaseModel
	TenantID    uuid.UUID          `gorm:"type:uuid;index:idx_interactions_tenant;not null"`
	Tenant      Tenant             `gorm:"foreignKey:TenantID"`
	CustomerID  uuid.UUID          `gorm:"type:uuid;index:idx_interactions_customer;not null"`
	Customer    Customer           `gorm:"foreignKey:CustomerID"`
	SourceType  string             `gorm:"type:varchar(20);not null"`
	RawAssetURL *string            `gorm:"type:text"`
	Status      interaction.Status `gorm:"type:varchar(20);index:idx_interactions_status;not null;default:'PENDING'"`
}

// TableName specifies the table name for Interaction
func (Interaction) TableName() string {
	return "order_api.interactions"
}

// AnalysisLog represents the database schema for per-interaction analysis
// records. Written once per processed interaction, never updated.
type AnalysisLog struct {
	BaseModel
	InteractionID   uuid.UUID       `gorm:"type:uuid;index:idx_analysis_logs_interaction;not null"`
	Interaction     Interaction     `gorm:"foreignKey:InteractionID"`
	TranscriptText  string          `gorm:"type:text;not null"`
	RawExtraction   datatypes.JSON  `gorm:"type:jsonb"`
	ConfidenceScore decimal.Decimal `gorm:"type:numeric(3,2);not null"`
}

// TableName specifies the table name for AnalysisLog
func (AnalysisLog) TableName() string {
	return "order_api.analysis_logs"
}

// EtoD converts database schema to domain interaction (Entity to Domain)
func (i *Interaction) EtoD() *interaction.Interaction {
	return &interaction.Interaction{
		ID:          i.ID,
		TenantID:    i.TenantID,
		CustomerID:  i.CustomerID,
		SourceType:  interaction.SourceKind(i.SourceType),
		RawAssetURL: i.RawAssetURL,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// NewSchemaInteraction creates a database schema from domain interaction
func NewSchemaInteraction(i *interaction.Interaction) *Interaction {
	return &Interaction{
		BaseModel: BaseModel{
			ID:        i.ID,
			CreatedAt: i.CreatedAt,
			UpdatedAt: i.UpdatedAt,
		},
		TenantID:    i.TenantID,
		CustomerID:  i.CustomerID,
		SourceType:  string(i.SourceType),
		RawAssetURL: i.RawAssetURL,
		Status:      i.Status,
	}
}

// EtoD converts database schema to domain analysis log (Entity to Domain)
func (l *AnalysisLog) EtoD() *interaction.AnalysisLog {
	return &interaction.AnalysisLog{
		ID:              l.ID,
		InteractionID:   l.InteractionID,
		TranscriptText:  l.TranscriptText,
		RawExtraction:   json.RawMessage(l.RawExtraction),
		ConfidenceScore: l.ConfidenceScore,
		CreatedAt:       l.CreatedAt,
	}
}

// NewSchemaAnalysisLog creates a database schema from domain analysis log
func NewSchemaAnalysisLog(l *interaction.AnalysisLog) *AnalysisLog {
	return &AnalysisLog{
		BaseModel: BaseModel{
			ID:        l.ID,
			CreatedAt: l.CreatedAt,
		},
		InteractionID:   l.InteractionID,
		TranscriptText:  l.TranscriptText,
		RawExtraction:   datatypes.JSON(l.RawExtraction),
		ConfidenceScore: l.ConfidenceScore,
	}
}
