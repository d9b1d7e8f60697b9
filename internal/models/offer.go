package models

import (
	"time"
)

type Offer struct {
	ID         int       `json:"id"`
	RequestID  int       `json:"request_id"`
	ProviderID int       `json:"provider_id"`
	Budget     float64   `json:"budget"`
	Timeframe  string    `json:"timeframe"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateOfferStatus struct {
	Status string `json:"status"`
}
