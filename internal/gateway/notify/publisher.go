// Package notify publishes offer and broadcast status events to Kafka for the
// courier apps and the vendor dashboard.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"courier-dispatch/internal/domain"
)

type offerDTO struct {
	RequestID   int64     `json:"request_id"`
	BroadcastID int64     `json:"broadcast_id"`
	OrderID     string    `json:"order_id"`
	CourierID   int64     `json:"courier_id"`
	DistanceKm  float64   `json:"distance_km"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type statusDTO struct {
	BroadcastID     int64  `json:"broadcast_id"`
	OrderID         string `json:"order_id"`
	Phase           string `json:"phase"`
	Status          string `json:"status"`
	WinnerCourierID *int64 `json:"winner_courier_id,omitempty"`
	Notified        int    `json:"notified"`
}

// Publisher fans dispatch events out over Kafka.
type Publisher struct {
	producer    sarama.SyncProducer
	offerTopic  string
	statusTopic string
}

// NewPublisher connects a sync producer. Returns nil when the broker settings
// are absent so the engine can run without notifications.
func NewPublisher(brokers []string, offerTopic, statusTopic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(offerTopic) == "" || strings.TrimSpace(statusTopic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("notify: connect producer: %w", err)
	}
	return newWithProducer(producer, offerTopic, statusTopic), nil
}

func newWithProducer(p sarama.SyncProducer, offerTopic, statusTopic string) *Publisher {
	return &Publisher{producer: p, offerTopic: offerTopic, statusTopic: statusTopic}
}

// OfferOpened tells one courier about a fresh offer.
func (p *Publisher) OfferOpened(ctx context.Context, req domain.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.send(p.offerTopic, strconv.FormatInt(req.CourierID, 10), offerDTO{
		RequestID:   req.ID,
		BroadcastID: req.BroadcastID,
		OrderID:     req.OrderID,
		CourierID:   req.CourierID,
		DistanceKm:  req.DistanceKm,
		ExpiresAt:   req.ExpiresAt,
	})
}

// BroadcastStatus tells subscribers about a broadcast transition.
func (p *Publisher) BroadcastStatus(ctx context.Context, b domain.Broadcast, notified int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.send(p.statusTopic, b.OrderID, statusDTO{
		BroadcastID:     b.ID,
		OrderID:         b.OrderID,
		Phase:           string(b.Phase),
		Status:          string(b.Status),
		WinnerCourierID: b.WinnerCourierID,
		Notified:        notified,
	})
}

func (p *Publisher) send(topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: marshal: %w", err)
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("notify: send to %s: %w", topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
