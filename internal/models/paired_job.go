package models

import (
	"time"
)

// PairedJob is the engagement created when a consumer accepts an offer. Title,
// description and cost are snapshots taken at pairing time; later request edits
// do not propagate.
type PairedJob struct {
	ID          int       `json:"id"`
	ConsumerID  int       `json:"consumer_id"`
	ProviderID  int       `json:"provider_id"`
	RequestID   int       `json:"request_id"`
	OfferID     int       `json:"offer_id"`
	ServiceID   int       `json:"service_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Rating      *float64  `json:"rating,omitempty"`
	Review      *string   `json:"review,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePairedJobRequest struct {
	ConsumerID int      `json:"consumer_id"`
	ProviderID int      `json:"provider_id"`
	RequestID  int      `json:"request_id"`
	OfferID    int      `json:"offer_id"`
	Budget     *float64 `json:"budget,omitempty"`
	Timeframe  string   `json:"timeframe"`
}
