package models

import (
	"time"
)

// Service is a catalog category of work (plumbing, cleaning, ...). ProviderIDs
// is aggregated from the provider_services join table at read time.
type Service struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ProviderIDs []int      `json:"provider_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
