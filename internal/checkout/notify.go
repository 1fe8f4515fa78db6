package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	EventOrderCaptured = "order.captured"

	eventChannelPrefix = "orders:events:"
	eventChannelAll    = "orders:events:all"
)

// OrderEvent is published on redis pub/sub for every captured order.
type OrderEvent struct {
	EventType   string    `json:"event_type"`
	TotalAmount string    `json:"total_amount"`
	OrderType   string    `json:"order_type"`
	Timestamp   time.Time `json:"timestamp"`
	Order       *Order    `json:"order,omitempty"`
}

// Notifier is the email/event side channel of checkout. It is strictly
// best effort: checkout proceeds to the WhatsApp handoff whether or not
// anything here succeeds.
type Notifier struct {
	webhookURL string
	client     *http.Client
	redis      *redis.Client
}

func NewNotifier(webhookURL string, redisClient *redis.Client) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		redis:      redisClient,
	}
}

// Dispatch sends the email notification and publishes the order event.
// Errors are logged, never returned to the checkout flow.
func (n *Notifier) Dispatch(ctx context.Context, order Order) {
	if err := n.sendEmail(ctx, order); err != nil {
		log.Printf("order email failed, continuing with WhatsApp handoff: %v", err)
	}
	if err := n.publishEvent(ctx, order); err != nil {
		log.Printf("order event publish failed: %v", err)
	}
}

func (n *Notifier) sendEmail(ctx context.Context, order Order) error {
	if n.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (n *Notifier) publishEvent(ctx context.Context, order Order) error {
	if n.redis == nil {
		return nil
	}

	event := OrderEvent{
		EventType:   EventOrderCaptured,
		TotalAmount: order.Totals.Total.StringFixed(2),
		OrderType:   string(order.Type),
		Timestamp:   time.Now(),
		Order:       &order,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	channel := eventChannelPrefix + event.EventType
	if err := n.redis.Publish(ctx, channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if err := n.redis.Publish(ctx, eventChannelAll, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish to all channel: %w", err)
	}
	return nil
}
