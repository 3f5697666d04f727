package lalamove

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateOrder confirms a previously fetched quotation into a delivery order.
// The upstream associates sender and recipient with the quotation's stops,
// so no stop binding is required beyond the optional stop IDs.
//
// Repeated calls with the same quotation ID may create duplicate upstream
// orders; deduplication is left to the upstream and the caller.
func (s *Service) CreateOrder(ctx context.Context, arg CreateOrderParams) (*OrderResult, error) {
	metadata := arg.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	payload := orderPayload{
		Data: orderPayloadData{
			QuotationID: arg.QuotationID,
			Sender: orderContact{
				StopID: arg.SenderStopID,
				Name:   arg.Store.StoreName,
				Phone:  arg.Store.StorePhone,
			},
			Recipients: []orderRecipient{
				{
					StopID:  arg.RecipientStopID,
					Name:    arg.RecipientName,
					Phone:   arg.RecipientPhone,
					Remarks: arg.RecipientRemarks,
				},
			},
			IsPODEnabled: true,
			Metadata:     metadata,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %w", err)
	}

	respBody, err := s.doRequest(ctx, arg.Store, http.MethodPost, "/orders", string(body))
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err = json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	return &OrderResult{
		OrderID:   resp.Data.OrderID,
		Status:    resp.Data.Status,
		ShareLink: resp.Data.ShareLink,
		DriverID:  resp.Data.DriverID,
	}, nil
}
