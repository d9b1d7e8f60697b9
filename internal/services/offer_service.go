package services

import (
	"context"
	"log"

	"taskmatch/internal/lifecycle"
	"taskmatch/internal/models"
)

// offerTokenCost is the platform fee a provider pays per submitted offer.
const offerTokenCost = 1

// OfferStore is the persistence surface for provider offers.
type OfferStore interface {
	CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
	GetOfferByID(ctx context.Context, id int) (models.Offer, error)
	GetOffers(ctx context.Context, requestID, providerID int) ([]models.Offer, error)
	UpdateStatus(ctx context.Context, id int, status string) (models.Offer, error)
	DeleteOffer(ctx context.Context, id int) error
}

// OfferLedger debits the per-offer fee and refunds it when the insert fails.
type OfferLedger interface {
	DebitTokens(ctx context.Context, userID, tokens int) (int, error)
	CreditTokens(ctx context.Context, userID, tokens int) (int, error)
}

type OfferService struct {
	Offers OfferStore
	Ledger OfferLedger
}

// CreateOffer charges the provider's token balance before inserting the
// offer. Providers are keyed by user id, so the fee debits the same id.
func (s *OfferService) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if offer.RequestID == 0 || offer.ProviderID == 0 || offer.Budget <= 0 {
		return models.Offer{}, models.ErrValidation
	}

	if s.Ledger != nil {
		if _, err := s.Ledger.DebitTokens(ctx, offer.ProviderID, offerTokenCost); err != nil {
			return models.Offer{}, err
		}
	}

	created, err := s.Offers.CreateOffer(ctx, offer)
	if err != nil {
		if s.Ledger != nil {
			if _, refundErr := s.Ledger.CreditTokens(ctx, offer.ProviderID, offerTokenCost); refundErr != nil {
				log.Printf("refund offer fee for provider %d: %v", offer.ProviderID, refundErr)
			}
		}
		return models.Offer{}, err
	}
	return created, nil
}

func (s *OfferService) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	return s.Offers.GetOfferByID(ctx, id)
}

func (s *OfferService) GetOffers(ctx context.Context, requestID, providerID int) ([]models.Offer, error) {
	if requestID == 0 && providerID == 0 {
		return nil, models.ErrValidation
	}
	return s.Offers.GetOffers(ctx, requestID, providerID)
}

func (s *OfferService) UpdateStatus(ctx context.Context, id int, status string) (models.Offer, error) {
	if !lifecycle.ValidOfferStatus(status) {
		return models.Offer{}, models.ErrInvalidStatus
	}
	return s.Offers.UpdateStatus(ctx, id, status)
}

func (s *OfferService) DeleteOffer(ctx context.Context, id int) error {
	return s.Offers.DeleteOffer(ctx, id)
}
