package models

import "time"

// AuditFields holds standard audit information for persisted records.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
}
