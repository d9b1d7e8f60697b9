package models

import (
	"time"
)

// PaymentIntent is a pending platform-token purchase. Intents live in Redis
// until confirmed or expired.
type PaymentIntent struct {
	ID           string    `json:"id"`
	ClientSecret string    `json:"client_secret"`
	UserID       int       `json:"user_id"`
	UserType     string    `json:"user_type"`
	Tokens       int       `json:"tokens"`
	Quantity     int       `json:"quantity"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatePaymentIntentRequest struct {
	Tokens   int    `json:"tokens"`
	Quantity int    `json:"quantity"`
	UserType string `json:"userType"`
	UserID   int    `json:"user_id"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret   string  `json:"clientSecret"`
	Amount         float64 `json:"amount"`
	PlatformTokens int     `json:"platform_tokens"`
}
