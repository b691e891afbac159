package stripe

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v82"
	stripeaccount "github.com/stripe/stripe-go/v82/account"
	stripecheckoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	stripepaymentintent "github.com/stripe/stripe-go/v82/paymentintent"
	stripeprice "github.com/stripe/stripe-go/v82/price"
	stripeproduct "github.com/stripe/stripe-go/v82/product"

	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/config"
)

// Client is the single handle for all Stripe calls. It is constructed once at
// startup and injected into each view's service; construction fails before
// any network call when the credential is missing or malformed.
type Client struct{}

// NewClient validates the credential and configures the Stripe backend with
// an explicit timeout and bounded network retries.
func NewClient(cfg config.Stripe) (*Client, error) {
	if err := cfg.ValidateCredential(); err != nil {
		return nil, err
	}

	stripeapi.Key = cfg.SecretKey

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	backend := stripeapi.GetBackendWithConfig(stripeapi.APIBackend, &stripeapi.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripeapi.Int64(cfg.MaxRetries),
	})
	stripeapi.SetBackend(stripeapi.APIBackend, backend)

	return &Client{}, nil
}

// The list param builders set Single so the iterator reads exactly one page.
// Without it the iterator keeps fetching while the response has more pages
// and Limit only bounds the page size, not the result.

func productListParams(limit int64) *stripeapi.ProductListParams {
	params := &stripeapi.ProductListParams{}
	params.Limit = stripeapi.Int64(limit)
	params.Single = true
	return params
}

func priceListParams(productID string, limit int64) *stripeapi.PriceListParams {
	params := &stripeapi.PriceListParams{
		Product: stripeapi.String(productID),
	}
	params.Limit = stripeapi.Int64(limit)
	params.Single = true
	return params
}

func paymentIntentListParams(since time.Time, limit int64) *stripeapi.PaymentIntentListParams {
	params := &stripeapi.PaymentIntentListParams{}
	if !since.IsZero() {
		params.CreatedRange = &stripeapi.RangeQueryParams{
			GreaterThanOrEqual: since.Unix(),
		}
	}
	params.Limit = stripeapi.Int64(limit)
	params.Single = true
	return params
}

// ListProducts retrieves a single page of up to limit products.
func (*Client) ListProducts(limit int64) ([]models.Product, error) {
	var products []models.Product
	i := stripeproduct.List(productListParams(limit))
	for i.Next() {
		product, err := productFromAPI(i.Product())
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := i.Err(); err != nil {
		return nil, NewError(CodeAPICallFailed, "failed to list products", err)
	}
	return products, nil
}

// ListPrices retrieves a single page of up to limit prices belonging to the
// given product.
func (*Client) ListPrices(productID string, limit int64) ([]models.Price, error) {
	var prices []models.Price
	i := stripeprice.List(priceListParams(productID, limit))
	for i.Next() {
		price, err := priceFromAPI(i.Price())
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	if err := i.Err(); err != nil {
		return nil, NewError(CodeAPICallFailed, "failed to list prices", err)
	}
	return prices, nil
}

// ProductInput describes a product to create.
type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Metadata    map[string]string
}

// CreateProduct creates a product. The call carries an idempotency key so a
// transport-level retry cannot create duplicates.
func (*Client) CreateProduct(in ProductInput) (models.Product, error) {
	params := &stripeapi.ProductParams{
		Name: stripeapi.String(in.Name),
	}
	if in.Description != "" {
		params.Description = stripeapi.String(in.Description)
	}
	if in.ImageURL != "" {
		params.Images = stripeapi.StringSlice([]string{in.ImageURL})
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.IdempotencyKey = stripeapi.String(uuid.NewString())

	product, err := stripeproduct.New(params)
	if err != nil {
		return models.Product{}, NewError(CodeAPICallFailed, "failed to create product", err)
	}
	return productFromAPI(product)
}

// PriceInput describes a price to create. RecurringInterval empty means a
// one-time price.
type PriceInput struct {
	ProductID         string
	UnitAmount        int64
	Currency          string
	Nickname          string
	RecurringInterval string
}

// CreatePrice creates a price attached to an existing product.
func (*Client) CreatePrice(in PriceInput) (models.Price, error) {
	params := &stripeapi.PriceParams{
		Product:    stripeapi.String(in.ProductID),
		UnitAmount: stripeapi.Int64(in.UnitAmount),
		Currency:   stripeapi.String(in.Currency),
	}
	if in.Nickname != "" {
		params.Nickname = stripeapi.String(in.Nickname)
	}
	if in.RecurringInterval != "" {
		params.Recurring = &stripeapi.PriceRecurringParams{
			Interval: stripeapi.String(in.RecurringInterval),
		}
	}
	params.IdempotencyKey = stripeapi.String(uuid.NewString())

	price, err := stripeprice.New(params)
	if err != nil {
		return models.Price{}, NewError(CodeAPICallFailed, "failed to create price", err)
	}
	return priceFromAPI(price)
}

// ListPaymentIntents retrieves a single page of up to limit payment intents
// created at or after since. A zero since means no lower bound. Filtering by
// status happens in the caller; Stripe does not filter payment intents by
// status server-side.
func (*Client) ListPaymentIntents(since time.Time, limit int64) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	i := stripepaymentintent.List(paymentIntentListParams(since, limit))
	for i.Next() {
		record, err := paymentRecordFromAPI(i.PaymentIntent())
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := i.Err(); err != nil {
		return nil, NewError(CodeAPICallFailed, "failed to list payment intents", err)
	}
	return records, nil
}

// CheckoutInput describes a checkout session for exactly one price.
type CheckoutInput struct {
	PriceID    string
	Recurring  bool
	SuccessURL string
	CancelURL  string
}

// CreateCheckoutSession creates a provider-hosted checkout flow with a single
// line item. The mode follows the price's billing cadence.
func (*Client) CreateCheckoutSession(in CheckoutInput) (models.CheckoutSession, error) {
	mode := stripeapi.CheckoutSessionModePayment
	if in.Recurring {
		mode = stripeapi.CheckoutSessionModeSubscription
	}

	params := &stripeapi.CheckoutSessionParams{
		PaymentMethodTypes: stripeapi.StringSlice([]string{"card"}),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				Price:    stripeapi.String(in.PriceID),
				Quantity: stripeapi.Int64(1),
			},
		},
		Mode:       stripeapi.String(string(mode)),
		SuccessURL: stripeapi.String(in.SuccessURL),
		CancelURL:  stripeapi.String(in.CancelURL),
	}
	params.IdempotencyKey = stripeapi.String(uuid.NewString())

	session, err := stripecheckoutsession.New(params)
	if err != nil {
		return models.CheckoutSession{}, NewError(CodeAPICallFailed, "failed to create checkout session", err)
	}
	return sessionFromAPI(session)
}

// GetAccount retrieves the account the credential belongs to. Used by the
// connectivity check only.
func (*Client) GetAccount() (models.Account, error) {
	account, err := stripeaccount.Get()
	if err != nil {
		return models.Account{}, NewError(CodeAPICallFailed, "failed to retrieve account", err)
	}
	return accountFromAPI(account)
}
