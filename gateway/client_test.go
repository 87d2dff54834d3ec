package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSendTransfer(t *testing.T) {
	var received TransferRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transfers", r.URL.Path)
		assert.Equal(t, "Bearer topsecret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(TransferResponse{ReferenceNumber: "TRF-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "topsecret", time.Second)
	resp, err := client.SendTransfer(context.Background(), TransferRequest{
		Amount:         450,
		BankCode:       "0001",
		AccountName:    "Artist One",
		AccountNumber:  "1234567890",
		IdempotencyKey: "key-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "TRF-123", resp.ReferenceNumber)
	assert.Equal(t, int64(450), received.Amount)
	assert.Equal(t, "key-1", received.IdempotencyKey)
}

func TestSendTransferNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "insufficient wallet balance"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "topsecret", time.Second)
	resp, err := client.SendTransfer(context.Background(), TransferRequest{Amount: 100})
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "insufficient wallet balance")
}

func TestSendTransferMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "topsecret", time.Second)
	_, err := client.SendTransfer(context.Background(), TransferRequest{Amount: 100})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "malformed rail response")
}

func TestSendTransferMissingReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TransferResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "topsecret", time.Second)
	_, err := client.SendTransfer(context.Background(), TransferRequest{Amount: 100})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no reference number")
}

func TestSendTransferNetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "topsecret", 100*time.Millisecond)
	_, err := client.SendTransfer(context.Background(), TransferRequest{Amount: 100})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rail request failed")
}

func TestGetWalletBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wallet", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]int64{"available_balance": 100000})
	}))
	defer server.Close()

	client := NewClient(server.URL, "topsecret", time.Second)
	balance, err := client.GetWalletBalance(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(100000), balance)
}

func TestSendTransferTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "topsecret", 50*time.Millisecond)
	_, err := client.SendTransfer(context.Background(), TransferRequest{Amount: 100})
	assert.Error(t, err)
}
