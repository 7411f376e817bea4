package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
)

// HTTPGateway talks JSON over HTTP to the gateway server.
type HTTPGateway struct {
	baseURL string
	timeout time.Duration
}

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{baseURL: baseURL, timeout: timeout}
}

// do runs a prepared gout request, reads the raw body and status code and
// decodes the body into out when the call succeeded. Transport failures
// are reported as common.ErrUnavailable so callers can fall back to
// cached data.
func (g *HTTPGateway) do(ctx context.Context, df *dataflow.DataFlow, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var code int
	var body []byte

	if err := df.WithContext(ctx).Code(&code).BindBody(&body).Do(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if err := statusToError(code, body); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// statusToError maps non-2xx responses back to the sentinel errors the
// server encoded them from. The response body is {"error": "..."}.
func statusToError(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}

	msg := "request failed"
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		msg = e.Error
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrInsufficientStock, msg)
	default:
		return fmt.Errorf("%w: %s", common.ErrorInternal, msg)
	}
}

func (g *HTTPGateway) url(path string) string {
	return g.baseURL + path
}

func (g *HTTPGateway) Ping(ctx context.Context) error {
	return g.do(ctx, gout.GET(g.url("/api/health")), nil)
}

func (g *HTTPGateway) AddProduct(ctx context.Context, in models.ProductInput) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	err := g.do(ctx, gout.POST(g.url("/api/products")).SetJSON(in), &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (g *HTTPGateway) UpdateProduct(ctx context.Context, id int64, in models.ProductInput) error {
	return g.do(ctx, gout.PUT(g.url(fmt.Sprintf("/api/products/%d", id))).SetJSON(in), nil)
}

func (g *HTTPGateway) DeleteProduct(ctx context.Context, id int64) error {
	return g.do(ctx, gout.DELETE(g.url(fmt.Sprintf("/api/products/%d", id))), nil)
}

func (g *HTTPGateway) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	var resp []*models.Product
	if err := g.do(ctx, gout.GET(g.url("/api/products")), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *HTTPGateway) GetLowStockProducts(ctx context.Context) ([]*models.Product, error) {
	var resp []*models.Product
	if err := g.do(ctx, gout.GET(g.url("/api/products/low-stock")), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *HTTPGateway) RecordSale(ctx context.Context, productID, quantity int64) (int64, error) {
	req := map[string]int64{"productId": productID, "quantity": quantity}
	var resp struct {
		ID int64 `json:"id"`
	}
	err := g.do(ctx, gout.POST(g.url("/api/sales")).SetJSON(req), &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (g *HTTPGateway) GetSalesByDateRange(ctx context.Context, start, end int64) ([]*models.Sale, error) {
	var resp []*models.Sale
	df := gout.GET(g.url("/api/sales")).SetQuery(gout.H{"start": start, "end": end})
	if err := g.do(ctx, df, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *HTTPGateway) GetSettings(ctx context.Context) (*models.Settings, error) {
	var resp models.Settings
	if err := g.do(ctx, gout.GET(g.url("/api/settings")), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *HTTPGateway) UpdatePin(ctx context.Context, newPin string) error {
	req := map[string]string{"pin": newPin}
	return g.do(ctx, gout.PUT(g.url("/api/settings/pin")).SetJSON(req), nil)
}

func (g *HTTPGateway) ToggleLock(ctx context.Context) error {
	return g.do(ctx, gout.POST(g.url("/api/settings/lock/toggle")), nil)
}

func (g *HTTPGateway) RestoreBackup(ctx context.Context, b *models.Backup) error {
	return g.do(ctx, gout.POST(g.url("/api/backup/restore")).SetJSON(b), nil)
}

// Close is a no-op for the HTTP transport; it exists so the interface can
// hide transports that hold connections.
func (g *HTTPGateway) Close() error {
	return nil
}
