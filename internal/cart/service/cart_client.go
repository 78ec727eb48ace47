package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ridloal/storefront-bff/internal/cart/domain"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

// CartClient bicara ke cart service di belakang BFF. Cart entries dimiliki
// service tersebut; BFF tidak pernah menyimpan cart sendiri.
type CartClient interface {
	GetEntries(ctx context.Context, token string) ([]domain.CartEntry, error)
	UpdateQuantity(ctx context.Context, token, productID string, quantity int) error
}

type httpCartClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPCartClient(baseURL string) CartClient {
	return &httpCartClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *httpCartClient) GetEntries(ctx context.Context, token string) ([]domain.CartEntry, error) {
	reqURL := fmt.Sprintf("%s/api/v1/cart/entries", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.Error("CartClient.GetEntries: NewRequest failed", err)
		return nil, fmt.Errorf("failed to create get entries request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("CartClient.GetEntries: HTTPClient.Do failed", err)
		return nil, fmt.Errorf("failed to call cart service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError("GetEntries", resp)
	}

	var entries []domain.CartEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		logger.Error("CartClient.GetEntries: decode failed", err)
		return nil, fmt.Errorf("failed to decode cart entries: %w", err)
	}
	return entries, nil
}

func (c *httpCartClient) UpdateQuantity(ctx context.Context, token, productID string, quantity int) error {
	reqURL := fmt.Sprintf("%s/api/v1/cart/entries/%s", c.BaseURL, productID)

	jsonPayload, err := json.Marshal(updateQuantityRequest{Quantity: quantity})
	if err != nil {
		logger.Error("CartClient.UpdateQuantity: Marshal failed", err)
		return fmt.Errorf("failed to marshal update quantity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		logger.Error("CartClient.UpdateQuantity: NewRequest failed", err)
		return fmt.Errorf("failed to create update quantity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("CartClient.UpdateQuantity: HTTPClient.Do failed", err)
		return fmt.Errorf("failed to call cart service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.statusError("UpdateQuantity", resp)
	}
	return nil
}

func (c *httpCartClient) statusError(operation string, resp *http.Response) error {
	var errResp errorResponse
	// Mencoba decode error response, tapi jangan sampai error decode menghalangi error utama
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	errMsg := fmt.Sprintf("cart service %s returned status %d", operation, resp.StatusCode)
	if errResp.Message != "" {
		errMsg = fmt.Sprintf("%s - %s", errMsg, errResp.Message)
	} else if errResp.Error != "" {
		errMsg = fmt.Sprintf("%s - %s", errMsg, errResp.Error)
	}
	logger.Error(errMsg, nil)
	return fmt.Errorf("%s", errMsg)
}
