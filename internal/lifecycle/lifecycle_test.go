package lifecycle

import "testing"

func TestCanTransitionRequest(t *testing.T) {
	if !CanTransitionRequest(RequestPending, RequestAssigned) {
		t.Fatal("expected pending -> assigned to be allowed")
	}
	if !CanTransitionRequest(RequestPending, RequestClosed) {
		t.Fatal("expected pending -> closed to be allowed")
	}
	if !CanTransitionRequest(RequestAssigned, RequestClosed) {
		t.Fatal("expected assigned -> closed to be allowed")
	}
	if CanTransitionRequest(RequestAssigned, RequestPending) {
		t.Fatal("unexpected backwards transition allowed")
	}
	if CanTransitionRequest(RequestClosed, RequestAssigned) {
		t.Fatal("unexpected transition out of closed allowed")
	}
	if CanTransitionRequest("bogus", RequestClosed) {
		t.Fatal("unexpected transition from unknown status allowed")
	}
}

func TestCanTransitionOffer(t *testing.T) {
	if !CanTransitionOffer(OfferPending, OfferAccepted) {
		t.Fatal("expected pending -> accepted to be allowed")
	}
	if !CanTransitionOffer(OfferPending, OfferRejected) {
		t.Fatal("expected pending -> rejected to be allowed")
	}
	if CanTransitionOffer(OfferAccepted, OfferRejected) {
		t.Fatal("accepted offers must be final")
	}
	if CanTransitionOffer(OfferRejected, OfferPending) {
		t.Fatal("rejected offers must be final")
	}
}

func TestValidStatuses(t *testing.T) {
	for _, s := range []string{RequestPending, RequestAssigned, RequestClosed} {
		if !ValidRequestStatus(s) {
			t.Fatalf("expected %q to be a valid request status", s)
		}
	}
	if ValidRequestStatus("archived") {
		t.Fatal("unexpected request status accepted")
	}
	for _, s := range []string{OfferPending, OfferAccepted, OfferRejected} {
		if !ValidOfferStatus(s) {
			t.Fatalf("expected %q to be a valid offer status", s)
		}
	}
	if ValidOfferStatus("withdrawn") {
		t.Fatal("unexpected offer status accepted")
	}
}
