package models

import (
	"time"
)

type Request struct {
	ID          int       `json:"id"`
	ConsumerID  int       `json:"user_id"`
	ServiceID   int       `json:"service_id"`
	ServiceName string    `json:"service_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Budget      float64   `json:"budget"`
	Timeframe   string    `json:"timeframe"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateRequestStatus struct {
	Status string `json:"status"`
}
