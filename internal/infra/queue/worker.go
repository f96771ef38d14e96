package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AlertMailer is the contract the worker needs from the mail package.
type AlertMailer interface {
	SendOpsAlert(to, subject, body string) error
}

// Worker drains the booking-alerts queue and emails operations, so
// degraded bookings are visible without blocking the booking pipeline.
type Worker struct {
	Channel  *amqp.Channel
	Mailer   AlertMailer
	OpsEmail string
}

func NewWorker(ch *amqp.Channel, mailer AlertMailer, opsEmail string) *Worker {
	return &Worker{Channel: ch, Mailer: mailer, OpsEmail: opsEmail}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] consume failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload BookingAlertPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed alert: %s", err)
				d.Nack(false, false)
				continue
			}

			if err := w.processAlert(payload); err != nil {
				log.Printf("❌ [WORKER] alert mail failed for %s: %s", payload.BookingRef, err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] ops notified about booking %s", payload.BookingRef)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processAlert(payload BookingAlertPayload) error {
	subject := fmt.Sprintf("Degraded booking %s (%s)", payload.BookingRef, payload.PackageTitle)
	body := fmt.Sprintf(
		"Booking %s for %s was saved with invoice id %s.\nPackage: %s (%s), tour date %s.\n\nWarnings:\n- %s\n",
		payload.BookingRef,
		payload.Email,
		payload.InvoiceID,
		payload.PackageTitle,
		payload.PackageID,
		payload.TourDate,
		strings.Join(payload.Warnings, "\n- "),
	)
	return w.Mailer.SendOpsAlert(w.OpsEmail, subject, body)
}
