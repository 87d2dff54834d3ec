package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/labelops/royhub/common"
	amqp "github.com/rabbitmq/amqp091-go"
)

var bufPool sync.Pool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func (svc *Service) StartRabbitMqPublisher(ctx context.Context) error {
	// Publishers and consumers should use separate connections so consumers
	// are isolated from flow control applied to publishing connections. We
	// therefore dial a dedicated publishing connection here instead of
	// storing one on the service object.
	conn, err := amqp.Dial(svc.Config.RabbitMQUri)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		svc.Config.RabbitMQEventExchange,
		// topic exchange so consumers can bind on event type and category
		"topic",
		// durable, survives server restarts
		true,
		false,
		// non-internal, accepts direct publishing
		false,
		// wait for the server to confirm the declare
		false,
		nil,
	)
	if err != nil {
		return err
	}

	svc.Logger.Infof("Starting rabbitmq publisher")

	earningEvents := make(chan LedgerEvent)
	paymentEvents := make(chan LedgerEvent)
	earningSubId := svc.EventPubSub.Subscribe(common.EventTypeEarningPosted, earningEvents)
	paymentSubId := svc.EventPubSub.Subscribe(common.EventTypePaymentMade, paymentEvents)
	for {
		select {
		case <-ctx.Done():
			svc.EventPubSub.Unsubscribe(earningSubId, common.EventTypeEarningPosted)
			svc.EventPubSub.Unsubscribe(paymentSubId, common.EventTypePaymentMade)
			return context.Canceled
		case earning := <-earningEvents:
			svc.publishToRabbitMq(ctx, earning, ch)
		case payment := <-paymentEvents:
			svc.publishToRabbitMq(ctx, payment, ch)
		}
	}
}

func (svc *Service) publishToRabbitMq(ctx context.Context, event LedgerEvent, ch *amqp.Channel) {
	key := event.Type
	if event.Category != "" {
		key = fmt.Sprintf("%s.%s", event.Type, event.Category)
	}

	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	err = ch.PublishWithContext(ctx,
		svc.Config.RabbitMQEventExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload.Bytes(),
		},
	)
	if err != nil {
		svc.Logger.Errorf("Error publishing event [type:%s artist_id:%d]: %v", event.Type, event.ArtistID, err)
	}
}
