package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPOrderSubmitter posts the OrderRequest JSON to the order-create endpoint.
// The request carries the caller's context, so navigating away cancels an
// in-flight submission instead of applying a stale response.
type HTTPOrderSubmitter struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPOrderSubmitter(endpoint string) *HTTPOrderSubmitter {
	return &HTTPOrderSubmitter{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPOrderSubmitter) Submit(ctx context.Context, req *OrderRequest) (string, error) {
	body, _ := json.Marshal(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach order endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		OK   bool `json:"ok"`
		Data struct {
			OrderNo string `json:"orderNo"`
		} `json:"data"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("order endpoint returned %d: %s", resp.StatusCode, raw)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated || !out.OK {
		msg := out.Error
		if msg == "" {
			msg = string(raw)
		}
		return "", fmt.Errorf("order endpoint returned %d: %s", resp.StatusCode, msg)
	}
	return out.Data.OrderNo, nil
}
