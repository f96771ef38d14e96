package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingAlertPayload describes a booking that completed in a degraded
// state: the row was saved but the invoice was skipped or lost.
type BookingAlertPayload struct {
	BookingRef   string   `json:"booking_ref"`
	Email        string   `json:"email"`
	PackageID    string   `json:"package_id"`
	PackageTitle string   `json:"package_title"`
	TourDate     string   `json:"tour_date"`
	InvoiceID    string   `json:"invoice_id"`
	Warnings     []string `json:"warnings"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishBookingAlert(ctx context.Context, payload BookingAlertPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("alert marshal failed: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}
	return nil
}
