package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrPaymentUnavailable = errors.New("payment gateway not configured")

// PaymentGatewayConfig holds the env-driven gateway settings. Missing values
// mean the kiosk cannot take card payments; the ready call reports that as a
// blocking error instead of submitting a half-configured request.
type PaymentGatewayConfig struct {
	StoreID    string
	APIKey     string
	APIURL     string
	SuccessURL string
	FailURL    string
}

func (c PaymentGatewayConfig) complete() bool {
	return c.StoreID != "" && c.APIKey != "" && c.APIURL != ""
}

// PaymentService readies a payment with the external gateway: amount plus a
// stable order number in, redirect URL out. The gateway itself is opaque here.
type PaymentService struct {
	cfg    PaymentGatewayConfig
	client *http.Client
}

func NewPaymentService(cfg PaymentGatewayConfig) *PaymentService {
	return &PaymentService{cfg: cfg, client: &http.Client{Timeout: 10 * time.Second}}
}

type PaymentReadyIn struct {
	Amount        int64  `json:"amount" binding:"required,min=1"`
	OrderNo       string `json:"orderNo" binding:"required"`
	OrderName     string `json:"orderName" binding:"required"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

type PaymentReadyRes struct {
	PaymentURL string `json:"paymentUrl"`
	Ref        string `json:"ref"`
}

type gatewayResponse struct {
	Order struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *PaymentService) Ready(ctx context.Context, in *PaymentReadyIn) (*PaymentReadyRes, error) {
	if !s.cfg.complete() {
		return nil, ErrPaymentUnavailable
	}

	payload := map[string]any{
		"method":  "create",
		"store":   s.cfg.StoreID,
		"authkey": s.cfg.APIKey,
		"order": map[string]any{
			"cartid":      in.OrderNo,
			"amount":      in.Amount,
			"currency":    "KRW",
			"description": in.OrderName,
		},
		"customer": map[string]any{
			"name":  in.CustomerName,
			"email": in.CustomerEmail,
		},
		"return": map[string]string{
			"authorised": s.cfg.SuccessURL,
			"declined":   s.cfg.FailURL,
		},
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, raw)
	}

	var out gatewayResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("bad gateway response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("payment gateway error %s: %s", out.Error.Code, out.Error.Message)
	}
	return &PaymentReadyRes{PaymentURL: out.Order.URL, Ref: out.Order.Ref}, nil
}
