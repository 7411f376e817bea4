// Package api exposes the gateway operations over JSON/REST.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/logging"
	"github.com/avarenkov/stockpos/internal/models"
	"github.com/labstack/echo/v4"
)

// CatalogService, SaleService, SettingsService and BackupService are the
// narrow surfaces the handlers need; the concrete implementations live
// in internal/server/services, tests provide fakes.
type CatalogService interface {
	AddProduct(ctx context.Context, in models.ProductInput) (int64, error)
	UpdateProduct(ctx context.Context, id int64, in models.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
	GetLowStockProducts(ctx context.Context) ([]*models.Product, error)
}

type SaleService interface {
	RecordSale(ctx context.Context, productID, quantity int64) (int64, error)
	GetSalesByDateRange(ctx context.Context, start, end int64) ([]*models.Sale, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdatePin(ctx context.Context, newPin string) error
	ToggleLock(ctx context.Context) error
}

type BackupService interface {
	Restore(ctx context.Context, b *models.Backup) error
}

type Handler struct {
	logger   logging.Logger
	catalog  CatalogService
	sales    SaleService
	settings SettingsService
	backup   BackupService
}

func NewHandler(logger logging.Logger, catalog CatalogService, sales SaleService, settings SettingsService, backup BackupService) *Handler {
	return &Handler{logger: logger, catalog: catalog, sales: sales, settings: settings, backup: backup}
}

func (h *Handler) Register(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/health", h.Health)

	g.GET("/products", h.GetAllProducts)
	g.GET("/products/low-stock", h.GetLowStockProducts)
	g.POST("/products", h.AddProduct)
	g.PUT("/products/:id", h.UpdateProduct)
	g.DELETE("/products/:id", h.DeleteProduct)

	g.GET("/sales", h.GetSalesByDateRange)
	g.POST("/sales", h.RecordSale)

	g.GET("/settings", h.GetSettings)
	g.PUT("/settings/pin", h.UpdatePin)
	g.POST("/settings/lock/toggle", h.ToggleLock)

	g.POST("/backup/restore", h.RestoreBackup)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

func (h *Handler) GetAllProducts(c echo.Context) error {
	result, err := h.catalog.GetAllProducts(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	if result == nil {
		result = []*models.Product{}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetLowStockProducts(c echo.Context) error {
	result, err := h.catalog.GetLowStockProducts(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	if result == nil {
		result = []*models.Product{}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) AddProduct(c echo.Context) error {
	var in models.ProductInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	id, err := h.catalog.AddProduct(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	var in models.ProductInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid request payload")
	}
	if err := h.catalog.UpdateProduct(c.Request().Context(), id, in); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetSalesByDateRange(c echo.Context) error {
	start, err := strconv.ParseInt(c.QueryParam("start"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid start")
	}
	end, err := strconv.ParseInt(c.QueryParam("end"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid end")
	}
	result, err := h.sales.GetSalesByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return h.fail(c, err)
	}
	if result == nil {
		result = []*models.Sale{}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) RecordSale(c echo.Context) error {
	var req struct {
		ProductID int64 `json:"productId"`
		Quantity  int64 `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request payload")
	}
	id, err := h.sales.RecordSale(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) GetSettings(c echo.Context) error {
	s, err := h.settings.GetSettings(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) UpdatePin(c echo.Context) error {
	var req struct {
		Pin string `json:"pin"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request payload")
	}
	if err := h.settings.UpdatePin(c.Request().Context(), req.Pin); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleLock(c echo.Context) error {
	if err := h.settings.ToggleLock(c.Request().Context()); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RestoreBackup(c echo.Context) error {
	var b models.Backup
	if err := c.Bind(&b); err != nil {
		return badRequest(c, "invalid backup payload")
	}
	if err := h.backup.Restore(c.Request().Context(), &b); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// fail maps sentinel errors to HTTP status codes. Anything unrecognized
// is logged and reported as a 500 without leaking internals.
func (h *Handler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, common.ErrInsufficientStock):
		return c.JSON(http.StatusConflict, map[string]string{"error": "insufficient stock"})
	default:
		h.logger.Error(c.Request().Context(), "request failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
