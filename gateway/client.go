package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	host   string
	secret string
	http   *http.Client
}

type walletResponse struct {
	AvailableBalance int64 `json:"available_balance"`
}

func NewClient(host, secret string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		host:   host,
		secret: secret,
		http:   &http.Client{Timeout: timeout},
	}
}

func (client *Client) SendTransfer(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	payload := new(bytes.Buffer)
	if err := json.NewEncoder(payload).Encode(req); err != nil {
		return nil, err
	}
	transfer := TransferResponse{}
	if err := client.request(ctx, http.MethodPost, "/transfers", payload, &transfer); err != nil {
		return nil, err
	}
	if transfer.ReferenceNumber == "" {
		return nil, fmt.Errorf("rail accepted transfer but returned no reference number")
	}
	return &transfer, nil
}

func (client *Client) GetWalletBalance(ctx context.Context) (int64, error) {
	wallet := walletResponse{}
	if err := client.request(ctx, http.MethodGet, "/wallet", nil, &wallet); err != nil {
		return 0, err
	}
	return wallet.AvailableBalance, nil
}

func (client *Client) request(ctx context.Context, method, endpoint string, body *bytes.Buffer, response interface{}) error {
	var httpReq *http.Request
	var err error
	if body != nil {
		httpReq, err = http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", client.host, endpoint), body)
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", client.host, endpoint), nil)
	}
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", client.secret))
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := client.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("rail request failed for %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		railErr := railErrorResponse{}
		// the error body is best-effort, the status code is authoritative
		json.NewDecoder(resp.Body).Decode(&railErr)
		return fmt.Errorf("got a bad http response status code from the rail %d for request %s: %s", resp.StatusCode, httpReq.URL, railErr.Message)
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("malformed rail response for %s: %w", endpoint, err)
	}
	return nil
}

type railErrorResponse struct {
	Message string `json:"message"`
}
