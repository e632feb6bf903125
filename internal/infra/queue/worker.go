package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier avisa a equipe de vendas quando um lead novo entra.
type LeadNotifier interface {
	SendLeadAlert(companyName string, recordID int64) error
}

// Worker consome os eventos de registro e dispara as notificações.
type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event RecordEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("[WORKER] JSON inválido: %s", err)
				// Mensagem malformada vai para a DLQ, sem requeue.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(event); err != nil {
				log.Printf("[WORKER] erro ao processar evento %s: %s", event.EventID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(event RecordEvent) error {
	if event.Entity != "lead" || event.Action != ActionCreated {
		// Os demais eventos só existem para consumidores futuros.
		return nil
	}

	log.Printf("[WORKER] novo lead #%d (%s), notificando vendas", event.RecordID, event.Name)
	return w.Notifier.SendLeadAlert(event.Name, event.RecordID)
}
