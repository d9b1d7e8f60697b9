package services

import (
	"context"
	"errors"
	"testing"

	"taskmatch/internal/models"
)

type stubOfferStore struct {
	created int
	err     error
}

func (s *stubOfferStore) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if s.err != nil {
		return models.Offer{}, s.err
	}
	s.created++
	offer.ID = s.created
	offer.Status = "pending"
	return offer, nil
}

func (s *stubOfferStore) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	return models.Offer{}, models.ErrOfferNotFound
}

func (s *stubOfferStore) GetOffers(ctx context.Context, requestID, providerID int) ([]models.Offer, error) {
	return nil, nil
}

func (s *stubOfferStore) UpdateStatus(ctx context.Context, id int, status string) (models.Offer, error) {
	return models.Offer{}, models.ErrOfferNotFound
}

func (s *stubOfferStore) DeleteOffer(ctx context.Context, id int) error { return nil }

type stubLedger struct {
	balance int
	debits  int
	credits int
}

func (s *stubLedger) DebitTokens(ctx context.Context, userID, tokens int) (int, error) {
	if s.balance < tokens {
		return 0, models.ErrInsufficientTokens
	}
	s.balance -= tokens
	s.debits++
	return s.balance, nil
}

func (s *stubLedger) CreditTokens(ctx context.Context, userID, tokens int) (int, error) {
	s.balance += tokens
	s.credits++
	return s.balance, nil
}

func TestCreateOfferChargesFee(t *testing.T) {
	store := &stubOfferStore{}
	ledger := &stubLedger{balance: 3}
	svc := OfferService{Offers: store, Ledger: ledger}

	_, err := svc.CreateOffer(context.Background(), models.Offer{RequestID: 5, ProviderID: 7, Budget: 90})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger.debits != 1 || ledger.balance != 2 {
		t.Fatalf("expected one fee debit leaving balance 2, got %d debits, balance %d", ledger.debits, ledger.balance)
	}
}

func TestCreateOfferInsufficientTokens(t *testing.T) {
	store := &stubOfferStore{}
	svc := OfferService{Offers: store, Ledger: &stubLedger{balance: 0}}

	_, err := svc.CreateOffer(context.Background(), models.Offer{RequestID: 5, ProviderID: 7, Budget: 90})
	if !errors.Is(err, models.ErrInsufficientTokens) {
		t.Fatalf("expected insufficient-tokens error, got %v", err)
	}
	if store.created != 0 {
		t.Fatal("no offer may be persisted when the fee cannot be charged")
	}
}

func TestCreateOfferRefundsOnInsertFailure(t *testing.T) {
	store := &stubOfferStore{err: models.ErrRequestNotOpen}
	ledger := &stubLedger{balance: 1}
	svc := OfferService{Offers: store, Ledger: ledger}

	_, err := svc.CreateOffer(context.Background(), models.Offer{RequestID: 5, ProviderID: 7, Budget: 90})
	if !errors.Is(err, models.ErrRequestNotOpen) {
		t.Fatalf("expected request-not-open, got %v", err)
	}
	if ledger.credits != 1 || ledger.balance != 1 {
		t.Fatalf("fee not refunded: %d credits, balance %d", ledger.credits, ledger.balance)
	}
}
