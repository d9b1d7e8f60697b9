package lifecycle

import (
	"context"
	"database/sql"

	"taskmatch/internal/models"
)

// Status constants used by the request state machine.
const (
	RequestPending  = "pending"
	RequestAssigned = "assigned"
	RequestClosed   = "closed"
)

// Status constants used by the offer state machine.
const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

var requestTransitions = map[string]map[string]struct{}{
	RequestPending: {
		RequestAssigned: {},
		RequestClosed:   {},
	},
	RequestAssigned: {
		RequestClosed: {},
	},
	RequestClosed: {},
}

var offerTransitions = map[string]map[string]struct{}{
	OfferPending: {
		OfferAccepted: {},
		OfferRejected: {},
	},
	OfferAccepted: {},
	OfferRejected: {},
}

// ValidRequestStatus reports whether s names a known request status.
func ValidRequestStatus(s string) bool {
	_, ok := requestTransitions[s]
	return ok
}

// ValidOfferStatus reports whether s names a known offer status.
func ValidOfferStatus(s string) bool {
	_, ok := offerTransitions[s]
	return ok
}

// CanTransitionRequest returns whether a request can move from current to next.
// Moving backwards is never allowed.
func CanTransitionRequest(current, next string) bool {
	if current == next {
		return true
	}
	allowed, ok := requestTransitions[current]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}

// CanTransitionOffer returns whether an offer can move from current to next.
// Accepted and rejected offers are final.
func CanTransitionOffer(current, next string) bool {
	if current == next {
		return true
	}
	allowed, ok := offerTransitions[current]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}

// ApplyRequest updates a request status using optimistic validation. The
// conditional WHERE keeps concurrent transitions from clobbering each other.
func ApplyRequest(ctx context.Context, tx *sql.Tx, requestID int, fromStatus, toStatus string) error {
	if !CanTransitionRequest(fromStatus, toStatus) {
		return models.ErrInvalidTransition
	}
	res, err := tx.ExecContext(ctx, `UPDATE requests SET status = $1 WHERE id = $2 AND status = $3`, toStatus, requestID, fromStatus)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ApplyOffer updates an offer status the same way.
func ApplyOffer(ctx context.Context, tx *sql.Tx, offerID int, fromStatus, toStatus string) error {
	if !CanTransitionOffer(fromStatus, toStatus) {
		return models.ErrInvalidTransition
	}
	res, err := tx.ExecContext(ctx, `UPDATE offers SET status = $1 WHERE id = $2 AND status = $3`, toStatus, offerID, fromStatus)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
