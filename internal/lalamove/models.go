package lalamove

import "fmt"

// StoreConfig identifies the pickup point for one proxied request. It is
// built per request from the site settings or a selected branch; the quote
// and order flows are disabled entirely when any field is missing.
type StoreConfig struct {
	Market         string
	ServiceType    string
	Sandbox        bool
	StoreName      string
	StorePhone     string
	StoreAddress   string
	StoreLatitude  float64
	StoreLongitude float64
}

type Coordinates struct {
	Lat float64
	Lng float64
}

// Quote is the normalized result of a /quotations call. Missing upstream
// fields are passed through as zero values; the caller decides whether an
// incomplete quote is usable.
type Quote struct {
	QuotationID string  `json:"quotationId"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ExpiresAt   string  `json:"expiresAt"`
}

// OrderResult is the normalized result of an /orders call.
type OrderResult struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	ShareLink string `json:"shareLink"`
	DriverID  string `json:"driverId"`
}

// OrderDetails is the subset of the order-details response the delivery
// tracker cares about.
type OrderDetails struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	ShareLink string `json:"shareLink"`
	DriverID  string `json:"driverId"`
}

type CreateOrderParams struct {
	QuotationID      string
	RecipientName    string
	RecipientPhone   string
	RecipientRemarks string
	SenderStopID     string
	RecipientStopID  string
	Metadata         map[string]any
	Store            StoreConfig
}

// Stop is one element of the two-stop route sent to the quotation endpoint.
type Stop struct {
	Location    Location               `json:"location"`
	Addresses   map[string]StopAddress `json:"addresses"`
	ContactName string                 `json:"contactName"`
}

type Location struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type StopAddress struct {
	DisplayString string `json:"displayString"`
	Country       string `json:"country"`
}

// UpstreamError carries a non-2xx response from the Lalamove API. The raw
// body is logged server-side but never forwarded verbatim to the client.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("lalamove upstream error: status %d, body: %s", e.Status, e.Body)
}

// item is the fixed descriptor sent with every quotation. These are domain
// constants for this business, not request parameters.
type quoteItem struct {
	Quantity             string   `json:"quantity"`
	Weight               string   `json:"weight"`
	Categories           []string `json:"categories"`
	HandlingInstructions []string `json:"handlingInstructions"`
}

type quotePayload struct {
	Data quotePayloadData `json:"data"`
}

type quotePayloadData struct {
	ServiceType string    `json:"serviceType"`
	Language    string    `json:"language"`
	Stops       []Stop    `json:"stops"`
	Item        quoteItem `json:"item"`
}

type quotationResponse struct {
	Data struct {
		QuotationID    string `json:"quotationId"`
		ExpiresAt      string `json:"expiresAt"`
		PriceBreakdown struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"priceBreakdown"`
	} `json:"data"`
}

type orderPayload struct {
	Data orderPayloadData `json:"data"`
}

type orderPayloadData struct {
	QuotationID  string           `json:"quotationId"`
	Sender       orderContact     `json:"sender"`
	Recipients   []orderRecipient `json:"recipients"`
	IsPODEnabled bool             `json:"isPODEnabled"`
	Metadata     map[string]any   `json:"metadata"`
}

type orderContact struct {
	StopID string `json:"stopId,omitempty"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

type orderRecipient struct {
	StopID  string `json:"stopId,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Remarks string `json:"remarks"`
}

type orderResponse struct {
	Data struct {
		OrderID   string `json:"orderId"`
		Status    string `json:"status"`
		ShareLink string `json:"shareLink"`
		DriverID  string `json:"driverId"`
	} `json:"data"`
}
