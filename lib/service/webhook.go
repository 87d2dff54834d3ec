package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labelops/royhub/common"
)

func (svc *Service) StartWebhookSubscription(ctx context.Context) {

	svc.Logger.Infof("Starting webhook subscription with default webhook url %s", svc.Config.WebhookUrl)
	earningEvents := make(chan LedgerEvent)
	paymentEvents := make(chan LedgerEvent)
	earningSubId := svc.EventPubSub.Subscribe(common.EventTypeEarningPosted, earningEvents)
	paymentSubId := svc.EventPubSub.Subscribe(common.EventTypePaymentMade, paymentEvents)
	for {
		select {
		case <-ctx.Done():
			svc.EventPubSub.Unsubscribe(earningSubId, common.EventTypeEarningPosted)
			svc.EventPubSub.Unsubscribe(paymentSubId, common.EventTypePaymentMade)
			return
		case earning := <-earningEvents:
			svc.postToWebhook(earning)
		case payment := <-paymentEvents:
			svc.postToWebhook(payment)
		}
	}
}

// webhookUrlForEvent resolves the notification target for an event. A brand
// with its own webhook url overrides the global one; an empty result means
// nobody is listening and the event is dropped.
func (svc *Service) webhookUrlForEvent(event LedgerEvent) string {
	if event.BrandID != 0 {
		brand, err := svc.FindBrand(context.Background(), event.BrandID)
		if err != nil {
			svc.Logger.Errorf("Could not resolve brand for webhook [brand_id:%d]: %v", event.BrandID, err)
		} else if brand.WebhookUrl != "" {
			return brand.WebhookUrl
		}
	}
	return svc.Config.WebhookUrl
}

func (svc *Service) postToWebhook(event LedgerEvent) {

	url := svc.webhookUrlForEvent(event)
	if url == "" {
		return
	}

	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	resp, err := http.Post(url, "application/json", payload)
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			svc.Logger.Error(err)
		}
		svc.Logger.Errorf("Webhook status code was %d, body: %s", resp.StatusCode, msg)
	}
}
