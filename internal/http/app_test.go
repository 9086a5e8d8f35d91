package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"luxemarket/internal/config"
	"luxemarket/internal/domain"
	"luxemarket/internal/http/handlers"
	"luxemarket/internal/metrics"
	"luxemarket/internal/repos"
)

func testConfig() config.Config {
	return config.Config{
		Port:        "0",
		MediaDir:    "../../web/static",
		TemplateDir: "../../web/templates",
		LogLevel:    "debug",
		SearchDelay: 0,
		SessionTTL:  time.Minute,
		JobTTL:      time.Minute,
		RateLimit:   1000,
	}
}

type testApp struct {
	app     *fiber.App
	deps    *handlers.Deps
	metrics *metrics.Metrics
}

// newTestApp wires the real app over the embedded catalog, or over products
// when given.
func newTestApp(t *testing.T, products ...domain.Product) *testApp {
	t.Helper()
	cfg := testConfig()

	var (
		cat *repos.CatalogRepo
		err error
	)
	if len(products) > 0 {
		cat, err = repos.NewCatalogRepo(products)
	} else {
		cat, err = repos.LoadCatalog()
	}
	require.NoError(t, err)

	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := metrics.New()
	deps := handlers.NewDeps(db, cfg, cat, m, nil)
	t.Cleanup(deps.Runner.Close)
	return &testApp{app: handlers.NewApp(cfg, deps, m), deps: deps, metrics: m}
}

// browser keeps cookies between requests like a real client.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func (a *testApp) browser(t *testing.T) *browser {
	return &browser{t: t, app: a.app, cookies: map[string]string{}}
}

func (b *browser) do(req *http.Request) (*http.Response, string) {
	b.t.Helper()
	for k, v := range b.cookies {
		req.AddCookie(&http.Cookie{Name: k, Value: v})
	}
	resp, err := b.app.Test(req, 5000)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		b.cookies[c.Name] = c.Value
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func (b *browser) get(path string) (*http.Response, string) {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// post submits a form with the CSRF token the previous page handed out.
func (b *browser) post(path string, form url.Values) (*http.Response, string) {
	if form == nil {
		form = url.Values{}
	}
	if tok := b.cookies["csrf_"]; tok != "" {
		form.Set("csrf", tok)
	}
	return b.do(newFormRequest(path, form))
}

func newFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func fixtureProduct(id int, name string, offers ...domain.Offer) domain.Product {
	return domain.Product{
		ID:           id,
		Name:         name,
		Brand:        "Cartier",
		Category:     domain.CategoryJewelry,
		Condition:    "Excellent",
		Rarity:       domain.RarityRare,
		Authenticity: domain.AuthenticityVerified,
		Offers:       offers,
	}
}

func fixtureOffer(seller string, price float64) domain.Offer {
	return domain.Offer{Seller: domain.Seller{Name: seller, Rating: 4.5, Verified: true}, Price: price, Stock: 3}
}
