package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier is the piece that actually delivers a lead notification;
// in production that is the SMTP sender.
type Notifier interface {
	SendLeadNotification(to string, lead LeadCapturedPayload) error
}

// Worker consumes lead-captured events and emails the sales inbox.
type Worker struct {
	Channel    *amqp.Channel
	Notifier   Notifier
	SalesInbox string
}

func NewWorker(ch *amqp.Channel, notifier Notifier, salesInbox string) *Worker {
	return &Worker{
		Channel:    ch,
		Notifier:   notifier,
		SalesInbox: salesInbox,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("registering RabbitMQ consumer: %s", err)
	}

	log.Printf("worker waiting on queue %q", queueName)

	for d := range msgs {
		var payload LeadCapturedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("worker: malformed payload, rejecting: %s", err)
			// Malformed message; reject without requeue so it dead-letters
			// instead of blocking the queue.
			d.Nack(false, false)
			continue
		}

		if err := w.Notifier.SendLeadNotification(w.SalesInbox, payload); err != nil {
			log.Printf("worker: notification for lead %s failed: %s", payload.ContactID, err)
			d.Nack(false, false)
			continue
		}

		log.Printf("worker: lead %s notified to %s", payload.ContactID, w.SalesInbox)
		d.Ack(false)
	}
}
