package controllers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/analytics"
	"github.com/stripeboard/stripeboard/internal/pkg/catalog"
	"github.com/stripeboard/stripeboard/internal/pkg/constants"
	"github.com/stripeboard/stripeboard/internal/pkg/products"
)

type fakeCatalog struct {
	cards    []catalog.Card
	cardsErr error

	checkoutPriceID   string
	checkoutRecurring bool
	checkoutURL       string
	checkoutErr       error
}

func (f *fakeCatalog) Cards() ([]catalog.Card, error) {
	return f.cards, f.cardsErr
}

func (f *fakeCatalog) Checkout(priceID string, recurring bool) (string, error) {
	f.checkoutPriceID = priceID
	f.checkoutRecurring = recurring
	return f.checkoutURL, f.checkoutErr
}

type fakeProducts struct {
	createForm *models.ProductForm
	result     *products.CreateResult
	createErr  error

	recent    []products.RecentItem
	recentErr error
}

func (f *fakeProducts) Create(form *models.ProductForm) (*products.CreateResult, error) {
	f.createForm = form
	return f.result, f.createErr
}

func (f *fakeProducts) Recent() ([]products.RecentItem, error) {
	return f.recent, f.recentErr
}

type fakeAnalytics struct {
	report *analytics.Report
	err    error
}

func (f *fakeAnalytics) Report() (*analytics.Report, error) {
	return f.report, f.err
}

func newTestApp(t *testing.T, cat *fakeCatalog, prod *fakeProducts, an *fakeAnalytics) *fiber.App {
	t.Helper()

	Initialize(cat, prod, an, false)

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Get(constants.CatalogRoute, HandleCatalogIndex)
	app.Post(constants.CheckoutRoute, HandleCatalogCheckout)
	app.Get(constants.ProductNewRoute, HandleProductNew)
	app.Post(constants.ProductCreateRoute, HandleProductCreate)
	app.Get(constants.AnalyticsRoute, HandleAnalytics)

	return app
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func TestHandleCatalogIndex(t *testing.T) {
	t.Run("renders cards", func(t *testing.T) {
		cat := &fakeCatalog{cards: []catalog.Card{{
			ProductID:      "prod_1",
			ProductName:    "Pro Plan",
			Description:    "Monthly access",
			ImageURL:       catalog.PlaceholderImage,
			PriceID:        "price_1",
			FormattedPrice: "$19.99 USD",
			Label:          catalog.LabelSubscription,
			Recurring:      true,
		}}}
		app := newTestApp(t, cat, &fakeProducts{}, &fakeAnalytics{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyOf(t, resp)
		assert.Contains(t, body, "Pro Plan")
		assert.Contains(t, body, "$19.99 USD")
		assert.Contains(t, body, "Subscription")
		assert.Contains(t, body, `value="price_1"`)
	})

	t.Run("empty catalog", func(t *testing.T) {
		app := newTestApp(t, &fakeCatalog{}, &fakeProducts{}, &fakeAnalytics{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)

		assert.Contains(t, bodyOf(t, resp), "No products found in your Stripe account.")
	})

	t.Run("fetch failure renders banner with zero cards", func(t *testing.T) {
		cat := &fakeCatalog{cardsErr: errors.New("api down")}
		app := newTestApp(t, cat, &fakeProducts{}, &fakeAnalytics{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "page still renders")

		body := bodyOf(t, resp)
		assert.Contains(t, body, "Error fetching Stripe products:")
		assert.NotContains(t, body, "api down", "internal detail must not leak")
	})

	t.Run("success banner from return url", func(t *testing.T) {
		app := newTestApp(t, &fakeCatalog{}, &fakeProducts{}, &fakeAnalytics{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?success=true", nil), -1)
		require.NoError(t, err)
		assert.Contains(t, bodyOf(t, resp), "Payment completed successfully")

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?canceled=true", nil), -1)
		require.NoError(t, err)
		assert.Contains(t, bodyOf(t, resp), "Payment canceled.")
	})
}

func TestHandleCatalogCheckout(t *testing.T) {
	t.Run("redirects to the hosted page", func(t *testing.T) {
		cat := &fakeCatalog{checkoutURL: "https://checkout.stripe.com/pay/cs_1"}
		app := newTestApp(t, cat, &fakeProducts{}, &fakeAnalytics{})

		resp, err := app.Test(postForm("/checkout", url.Values{
			"price_id":  {"price_1"},
			"recurring": {"true"},
		}), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "https://checkout.stripe.com/pay/cs_1", resp.Header.Get(fiber.HeaderLocation))
		assert.Equal(t, "price_1", cat.checkoutPriceID)
		assert.True(t, cat.checkoutRecurring)
	})

	t.Run("failure flashes back to the catalog", func(t *testing.T) {
		cat := &fakeCatalog{checkoutErr: errors.New("invalid price")}
		app := newTestApp(t, cat, &fakeProducts{}, &fakeAnalytics{})

		resp, err := app.Test(postForm("/checkout", url.Values{"price_id": {"price_1"}}), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, constants.CatalogRoute, resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("missing price id never reaches the service", func(t *testing.T) {
		cat := &fakeCatalog{}
		app := newTestApp(t, cat, &fakeProducts{}, &fakeAnalytics{})

		resp, err := app.Test(postForm("/checkout", url.Values{}), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, constants.CatalogRoute, resp.Header.Get(fiber.HeaderLocation))
		assert.Empty(t, cat.checkoutPriceID)
	})
}

func TestHandleProductNew(t *testing.T) {
	prod := &fakeProducts{recent: []products.RecentItem{
		{Product: models.Product{ID: "prod_1", Name: "Existing"}},
	}}
	app := newTestApp(t, &fakeCatalog{}, prod, &fakeAnalytics{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/products/new", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "Create New Product")
	assert.Contains(t, body, "Existing")
	assert.Contains(t, body, "No price set")
}

func TestHandleProductCreate(t *testing.T) {
	t.Run("success clears the form via redirect", func(t *testing.T) {
		prod := &fakeProducts{result: &products.CreateResult{
			Product: models.Product{ID: "prod_new", Name: "Widget"},
			Price:   models.Price{ID: "price_new", UnitAmount: 1250, Currency: "usd"},
		}}
		app := newTestApp(t, &fakeCatalog{}, prod, &fakeAnalytics{})

		resp, err := app.Test(postForm("/products", url.Values{
			"name":     {"Widget"},
			"amount":   {"12.50"},
			"currency": {"usd"},
		}), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, constants.ProductNewRoute, resp.Header.Get(fiber.HeaderLocation))
		assert.Equal(t, "Widget", prod.createForm.Name)
		assert.Equal(t, "12.50", prod.createForm.Amount)
	})

	t.Run("validation failure re-renders with values preserved", func(t *testing.T) {
		prod := &fakeProducts{createErr: products.ErrInvalid}
		app := newTestApp(t, &fakeCatalog{}, prod, &fakeAnalytics{})

		resp, err := app.Test(postForm("/products", url.Values{
			"description": {"kept on re-render"},
			"amount":      {"12.50"},
		}), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyOf(t, resp)
		assert.Contains(t, body, "Error: Product name and price amount are required.")
		assert.Contains(t, body, "kept on re-render")
		assert.Contains(t, body, `value="12.50"`)
	})

	t.Run("amount too small", func(t *testing.T) {
		prod := &fakeProducts{createErr: models.ErrAmountTooSmall}
		app := newTestApp(t, &fakeCatalog{}, prod, &fakeAnalytics{})

		resp, err := app.Test(postForm("/products", url.Values{
			"name":   {"Widget"},
			"amount": {"0.10"},
		}), -1)
		require.NoError(t, err)

		assert.Contains(t, bodyOf(t, resp), "Error: Price amount must be at least $0.50.")
	})

	t.Run("orphaned product is named in the error", func(t *testing.T) {
		prod := &fakeProducts{createErr: &products.PartialError{
			ProductID: "prod_orphan",
			Err:       errors.New("price rejected"),
		}}
		app := newTestApp(t, &fakeCatalog{}, prod, &fakeAnalytics{})

		resp, err := app.Test(postForm("/products", url.Values{
			"name":   {"Widget"},
			"amount": {"12.50"},
		}), -1)
		require.NoError(t, err)

		body := bodyOf(t, resp)
		assert.Contains(t, body, "Stripe Error: price creation failed, product prod_orphan was created without a price:")
	})

	t.Run("recent list failure stays inline", func(t *testing.T) {
		prod := &fakeProducts{createErr: products.ErrInvalid, recentErr: errors.New("timeout")}
		app := newTestApp(t, &fakeCatalog{}, prod, &fakeAnalytics{})

		resp, err := app.Test(postForm("/products", url.Values{}), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Contains(t, bodyOf(t, resp), "Error fetching products:")
	})
}

func TestHandleAnalytics(t *testing.T) {
	t.Run("renders report", func(t *testing.T) {
		an := &fakeAnalytics{report: &analytics.Report{
			Days: []analytics.DayStat{
				{Date: "2026-08-10", Revenue: 3500, Count: 2},
				{Date: "2026-08-12", Revenue: 9000, Count: 1},
			},
			TotalRevenue:    12500,
			TotalCount:      3,
			BusiestDayCount: 2,
			BestDayRevenue:  9000,
		}}
		app := newTestApp(t, &fakeCatalog{}, &fakeProducts{}, an)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/analytics", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyOf(t, resp)
		assert.Contains(t, body, "$125.00")
		assert.Contains(t, body, "busiest day had 2 transactions")
		assert.Contains(t, body, "$90.00")
		assert.Contains(t, body, `"2026-08-10"`)
		assert.Contains(t, body, "revenue-chart")
	})

	t.Run("no data placeholder", func(t *testing.T) {
		an := &fakeAnalytics{report: &analytics.Report{}}
		app := newTestApp(t, &fakeCatalog{}, &fakeProducts{}, an)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/analytics", nil), -1)
		require.NoError(t, err)

		body := bodyOf(t, resp)
		assert.Contains(t, body, "No payment data found in the last 30 days")
		assert.Contains(t, body, "$0.00")
		assert.NotContains(t, body, "revenue-chart")
	})

	t.Run("fetch failure renders banner with zero metrics", func(t *testing.T) {
		an := &fakeAnalytics{err: errors.New("api down")}
		app := newTestApp(t, &fakeCatalog{}, &fakeProducts{}, an)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/analytics", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyOf(t, resp)
		assert.Contains(t, body, "Error fetching Stripe revenue data:")
		assert.Contains(t, body, "$0.00")
	})
}
