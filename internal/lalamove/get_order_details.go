package lalamove

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetOrderDetails fetches the current state of a delivery order. The GET
// request is signed over an empty body.
func (s *Service) GetOrderDetails(ctx context.Context, cfg StoreConfig, orderID string) (*OrderDetails, error) {
	path := "/orders/" + orderID

	respBody, err := s.doRequest(ctx, cfg, http.MethodGet, path, "")
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err = json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse order details response: %w", err)
	}

	return &OrderDetails{
		OrderID:   resp.Data.OrderID,
		Status:    resp.Data.Status,
		ShareLink: resp.Data.ShareLink,
		DriverID:  resp.Data.DriverID,
	}, nil
}
