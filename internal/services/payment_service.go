package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"taskmatch/internal/models"
	"taskmatch/internal/repositories"
)

const intentKeyPrefix = "payment_intent:"

// IntentStore keeps pending payment intents until they are confirmed or
// expire.
type IntentStore interface {
	Put(ctx context.Context, intent models.PaymentIntent, ttl time.Duration) error
	Get(ctx context.Context, id string) (models.PaymentIntent, error)
	Delete(ctx context.Context, id string) error
}

// RedisIntentStore backs the intent store with Redis TTL keys.
type RedisIntentStore struct {
	Client *redis.Client
}

func (s *RedisIntentStore) Put(ctx context.Context, intent models.PaymentIntent, ttl time.Duration) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, intentKeyPrefix+intent.ID, data, ttl).Err()
}

func (s *RedisIntentStore) Get(ctx context.Context, id string) (models.PaymentIntent, error) {
	data, err := s.Client.Get(ctx, intentKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PaymentIntent{}, models.ErrPaymentIntentNotFound
	}
	if err != nil {
		return models.PaymentIntent{}, err
	}
	var intent models.PaymentIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		return models.PaymentIntent{}, err
	}
	return intent, nil
}

func (s *RedisIntentStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, intentKeyPrefix+id).Err()
}

// TokenLedger credits confirmed purchases to the user's balance.
type TokenLedger interface {
	CreditTokens(ctx context.Context, userID, tokens int) (int, error)
}

// PaymentService issues platform-token purchase intents and settles them on
// confirmation.
type PaymentService struct {
	Intents       IntentStore
	Ledger        TokenLedger
	PricePerToken float64
	IntentTTL     time.Duration
}

func NewPaymentService(intents IntentStore, users *repositories.UserRepository, pricePerToken float64) *PaymentService {
	return &PaymentService{
		Intents:       intents,
		Ledger:        users,
		PricePerToken: pricePerToken,
		IntentTTL:     15 * time.Minute,
	}
}

func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (models.CreatePaymentIntentResponse, error) {
	if req.UserID == 0 || req.Tokens <= 0 {
		return models.CreatePaymentIntentResponse{}, models.ErrValidation
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	totalTokens := req.Tokens * quantity
	intent := models.PaymentIntent{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		UserType:  req.UserType,
		Tokens:    totalTokens,
		Quantity:  quantity,
		Amount:    float64(totalTokens) * s.PricePerToken,
		CreatedAt: time.Now(),
	}
	intent.ClientSecret = intent.ID + "_secret_" + uuid.NewString()

	if err := s.Intents.Put(ctx, intent, s.IntentTTL); err != nil {
		return models.CreatePaymentIntentResponse{}, err
	}

	return models.CreatePaymentIntentResponse{
		ClientSecret:   intent.ClientSecret,
		Amount:         intent.Amount,
		PlatformTokens: totalTokens,
	}, nil
}

// ConfirmPayment settles the intent: the balance is credited and the intent
// removed, so a second confirm of the same id fails with not-found.
func (s *PaymentService) ConfirmPayment(ctx context.Context, intentID string) (int, error) {
	if intentID == "" {
		return 0, models.ErrValidation
	}

	intent, err := s.Intents.Get(ctx, intentID)
	if err != nil {
		return 0, err
	}

	balance, err := s.Ledger.CreditTokens(ctx, intent.UserID, intent.Tokens)
	if err != nil {
		return 0, err
	}

	if err := s.Intents.Delete(ctx, intentID); err != nil {
		return 0, err
	}
	return balance, nil
}
