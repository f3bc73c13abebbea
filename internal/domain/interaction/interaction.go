package interaction

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the processing state of an interaction. PENDING is the only
// non-terminal state; once PROCESSED or FAILED it never transitions again.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusProcessed Status = "PROCESSED"
	StatusFailed    Status = "FAILED"
)

// SourceKind identifies how the communication reached the platform.
type SourceKind string

const (
	SourceText  SourceKind = "text"
	SourceVoice SourceKind = "voice"
	SourceEmail SourceKind = "email"
)

// Interaction is one inbound customer communication. It is created before
// any AI call so dependent records can reference its identity, and only its
// status is ever mutated afterwards.
type Interaction struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	SourceType  SourceKind `json:"source_type"`
	RawAssetURL *string    `json:"raw_asset_url,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AnalysisLog is the write-once record of what the AI saw and produced for
// one interaction: transcript, raw extraction payload with the safety
// verdict, and a 0-1 confidence score.
type AnalysisLog struct {
	ID              uuid.UUID       `json:"id"`
	InteractionID   uuid.UUID       `json:"interaction_id"`
	TranscriptText  string          `json:"transcript_text"`
	RawExtraction   json.RawMessage `json:"raw_extraction_json"`
	ConfidenceScore decimal.Decimal `json:"confidence_score"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Repository persists interactions and their analysis logs.
type Repository interface {
	Create(ctx context.Context, i *Interaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	CreateAnalysisLog(ctx context.Context, l *AnalysisLog) error
}
