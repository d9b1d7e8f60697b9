package notify

import (
	"context"
	"errors"
	"testing"
)

type stubHub struct {
	events []string
	ids    []int
}

func (s *stubHub) Send(providerID int, event string, payload interface{}) bool {
	s.ids = append(s.ids, providerID)
	s.events = append(s.events, event)
	return true
}

type stubPush struct {
	sent    int
	failFor string
	bodies  []string
}

func (s *stubPush) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == s.failFor {
		return errors.New("unregistered token")
	}
	s.sent++
	s.bodies = append(s.bodies, body)
	return nil
}

type stubTokens struct {
	tokens map[int][]string
}

func (s *stubTokens) GetFCMTokens(ctx context.Context, userID int) ([]string, error) {
	return s.tokens[userID], nil
}

func TestJobPairedAddressedChannel(t *testing.T) {
	hub := &stubHub{}
	push := &stubPush{}
	d := Dispatcher{
		Hub:    hub,
		Push:   push,
		Tokens: &stubTokens{tokens: map[int][]string{7: {"tok-a", "tok-b"}}},
	}

	d.JobPaired(context.Background(), 7, JobPairedEvent{JobID: 42, ConsumerID: 3, RequestTitle: "Fix sink", Budget: 90})

	if len(hub.events) != 1 || hub.events[0] != "paired_jobs_7" {
		t.Fatalf("expected one event on paired_jobs_7, got %v", hub.events)
	}
	if hub.ids[0] != 7 {
		t.Fatalf("event addressed to provider %d, want 7", hub.ids[0])
	}
	if push.sent != 2 {
		t.Fatalf("expected push to both tokens, got %d", push.sent)
	}
	if push.bodies[0] != "Fix sink, budget 90.00" {
		t.Fatalf("unexpected push body: %q", push.bodies[0])
	}
}

func TestRequestPostedToleratesFailedRecipient(t *testing.T) {
	hub := &stubHub{}
	push := &stubPush{failFor: "bad-token"}
	d := Dispatcher{
		Hub:  hub,
		Push: push,
		Tokens: &stubTokens{tokens: map[int][]string{
			1: {"bad-token"},
			2: {"tok-2"},
			3: {"tok-3"},
		}},
	}

	d.RequestPosted(context.Background(), []int{1, 2, 3}, RequestPostedEvent{RequestID: 5, ServiceID: 2, Title: "Paint fence"})

	if len(hub.ids) != 3 {
		t.Fatalf("expected realtime fan-out to all 3 providers, got %d", len(hub.ids))
	}
	if push.sent != 2 {
		t.Fatalf("expected 2 successful pushes after one failure, got %d", push.sent)
	}
}

func TestDispatcherWithoutPushBackend(t *testing.T) {
	hub := &stubHub{}
	d := Dispatcher{Hub: hub}

	// No push sender configured; realtime delivery must still work.
	d.JobPaired(context.Background(), 9, JobPairedEvent{JobID: 1})
	if len(hub.events) != 1 {
		t.Fatalf("expected realtime event, got %d", len(hub.events))
	}
}
