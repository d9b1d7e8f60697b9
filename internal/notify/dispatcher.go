package notify

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const sendTimeout = 5 * time.Second

// PushSender abstracts the FCM client for testing.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// RealtimeSender abstracts the provider hub for testing.
type RealtimeSender interface {
	Send(providerID int, event string, payload interface{}) bool
}

// TokenSource resolves a user's registered device tokens.
type TokenSource interface {
	GetFCMTokens(ctx context.Context, userID int) ([]string, error)
}

// JobPairedEvent is the payload delivered to a provider when a consumer
// accepts its offer.
type JobPairedEvent struct {
	JobID        int     `json:"job_id"`
	ConsumerID   int     `json:"consumer_id"`
	RequestTitle string  `json:"request_title"`
	Budget       float64 `json:"budget"`
	Message      string  `json:"message"`
}

// RequestPostedEvent is broadcast to subscribed providers when a consumer
// posts a new request in their category.
type RequestPostedEvent struct {
	RequestID int     `json:"request_id"`
	ServiceID int     `json:"service_id"`
	Title     string  `json:"title"`
	Budget    float64 `json:"budget"`
	Location  string  `json:"location"`
}

// Dispatcher fans matching events out over the realtime hub and FCM. All
// delivery is best-effort: one failed recipient never aborts the rest, and a
// failed notification never fails the state transition that triggered it.
type Dispatcher struct {
	Hub    RealtimeSender
	Push   PushSender
	Tokens TokenSource
	Logger Logger
}

// JobPaired notifies a single provider on its addressed channel.
func (d *Dispatcher) JobPaired(ctx context.Context, providerID int, event JobPairedEvent) {
	channel := "paired_jobs_" + strconv.Itoa(providerID)
	if d.Hub != nil {
		d.Hub.Send(providerID, channel, event)
	}

	body := fmt.Sprintf("%s, budget %.2f", event.RequestTitle, event.Budget)
	d.push(ctx, providerID, "Your offer was accepted", body, map[string]string{
		"link":   channel,
		"param1": strconv.Itoa(event.JobID),
		"param2": strconv.Itoa(event.ConsumerID),
	})
}

// RequestPosted broadcasts a new request to every subscribed provider.
func (d *Dispatcher) RequestPosted(ctx context.Context, providerIDs []int, event RequestPostedEvent) {
	for _, providerID := range providerIDs {
		if d.Hub != nil {
			d.Hub.Send(providerID, "request_posted", event)
		}
		d.push(ctx, providerID, "New request in your category", event.Title, map[string]string{
			"link":   "request_posted",
			"param1": strconv.Itoa(event.RequestID),
			"param2": strconv.Itoa(event.ServiceID),
		})
	}
}

func (d *Dispatcher) push(ctx context.Context, userID int, title, body string, data map[string]string) {
	if d.Push == nil || d.Tokens == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	tokens, err := d.Tokens.GetFCMTokens(ctx, userID)
	if err != nil {
		if d.Logger != nil {
			d.Logger.Errorf("fetch fcm tokens for user %d: %v", userID, err)
		}
		return
	}

	for _, token := range tokens {
		if err := d.Push.Send(ctx, token, title, body, data); err != nil {
			if d.Logger != nil {
				d.Logger.Errorf("push to user %d failed: %v", userID, err)
			}
		}
	}
}
