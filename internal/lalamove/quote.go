package lalamove

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// RequestQuote asks the upstream for a delivery quotation between the store
// and the destination address. The item descriptor is fixed: food delivery,
// under 3 kg, keep upright.
func (s *Service) RequestQuote(ctx context.Context, cfg StoreConfig, deliveryAddress string, coord Coordinates) (*Quote, error) {
	payload := quotePayload{
		Data: quotePayloadData{
			ServiceType: cfg.ServiceType,
			Language:    localeKey,
			Stops:       BuildStops(cfg, deliveryAddress, coord),
			Item: quoteItem{
				Quantity:             "1",
				Weight:               "LESS_THAN_3_KG",
				Categories:           []string{"FOOD_DELIVERY"},
				HandlingInstructions: []string{"KEEP_UPRIGHT"},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quotation payload: %w", err)
	}

	respBody, err := s.doRequest(ctx, cfg, http.MethodPost, "/quotations", string(body))
	if err != nil {
		return nil, err
	}

	var resp quotationResponse
	if err = json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse quotation response: %w", err)
	}

	quote := &Quote{
		QuotationID: resp.Data.QuotationID,
		Currency:    resp.Data.PriceBreakdown.Currency,
		ExpiresAt:   resp.Data.ExpiresAt,
	}

	// An absent or malformed total is tolerated as zero; the caller
	// decides whether a quote without a price is usable.
	if resp.Data.PriceBreakdown.Total != "" {
		if price, parseErr := strconv.ParseFloat(resp.Data.PriceBreakdown.Total, 64); parseErr == nil {
			quote.Price = price
		}
	}

	return quote, nil
}
