package models

import (
	"time"
)

type Provider struct {
	UserID       int        `json:"user_id"`
	ServiceIDs   []int      `json:"service_ids"`
	Available    bool       `json:"available"`
	Rating       float64    `json:"rating"`
	ReviewsCount int        `json:"reviews_count"`
	Bio          string     `json:"bio"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type ProviderRatingRequest struct {
	ProviderID int     `json:"provider_id"`
	JobID      int     `json:"job_id,omitempty"`
	Rating     float64 `json:"rating"`
	Review     *string `json:"review,omitempty"`
}

type ProviderServicesRequest struct {
	ProviderID int   `json:"provider_id"`
	ServiceIDs []int `json:"service_ids"`
}
