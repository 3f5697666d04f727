package lalamove

import (
	"context"
	"net/http"
	"time"
)

const (
	// APIBaseURL is the production base URL for the Lalamove REST API.
	APIBaseURL = "https://rest.lalamove.com/v3"
	// APISandboxURL is the sandbox base URL for the Lalamove REST API.
	APISandboxURL = "https://rest.sandbox.lalamove.com/v3"
)

// DeliveryProvider is the contract the rest of the application depends on.
type DeliveryProvider interface {
	RequestQuote(ctx context.Context, cfg StoreConfig, deliveryAddress string, coord Coordinates) (*Quote, error)
	CreateOrder(ctx context.Context, arg CreateOrderParams) (*OrderResult, error)
	GetOrderDetails(ctx context.Context, cfg StoreConfig, orderID string) (*OrderDetails, error)
}

// CredentialSource resolves the Lalamove API key and signing secret.
// A missing credential must fail here, before any network call is made.
type CredentialSource interface {
	GetRequiredSecret(name string) (string, error)
}

const (
	secretAPIKey    = "LALAMOVE_API_KEY"
	secretAPISecret = "LALAMOVE_API_SECRET"
)

type Service struct {
	credentials CredentialSource
	httpClient  *http.Client
	now         func() time.Time

	// baseURLOverride points the client at a mock upstream in tests.
	baseURLOverride string
}

func NewService(credentials CredentialSource) *Service {
	return &Service{
		credentials: credentials,
		httpClient:  &http.Client{},
		now:         time.Now,
	}
}

// baseURL selects the upstream host by the store's sandbox flag.
func (s *Service) baseURL(cfg StoreConfig) string {
	if s.baseURLOverride != "" {
		return s.baseURLOverride
	}
	if cfg.Sandbox {
		return APISandboxURL
	}
	return APIBaseURL
}
