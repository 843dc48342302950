package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweetshop-api/internal/api/metrics"
	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog operations.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

// Create handles POST /api/sweets.
//
// @Summary      Create a new sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
	}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}

	sweet, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sweetResponse{Success: true, Data: sweet})
}

// List handles GET /api/sweets.
//
// @Summary      List all sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sweetListResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweetListResponse{Success: true, Count: len(sweets), Data: sweets})
}

// Search handles GET /api/sweets/search.
//
// @Summary      Search sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        name      query     string  false  "Case-insensitive substring on name"
// @Param        category  query     string  false  "Case-insensitive substring on category"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {object}  sweetListResponse
// @Failure      400       {object}  map[string]any
// @Failure      401       {object}  map[string]any
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	filter := ports.SearchSweetsFilter{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	var err error
	if filter.MinPrice, err = parsePriceParam(c.QueryParam("minPrice")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "minPrice must be a number")
	}
	if filter.MaxPrice, err = parsePriceParam(c.QueryParam("maxPrice")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "maxPrice must be a number")
	}

	sweets, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweetListResponse{Success: true, Count: len(sweets), Data: sweets})
}

// Update handles PUT /api/sweets/:id (admin only).
//
// @Summary      Update a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to change"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweetResponse{Success: true, Data: sweet})
}

// Delete handles DELETE /api/sweets/:id (admin only).
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  emptyResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyResponse{Success: true})
}

// Purchase handles POST /api/sweets/:id/purchase.
//
// @Summary      Purchase one unit of a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  sweetResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	sweet, err := h.service.Purchase(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			metrics.PurchasesRejectedTotal.Inc()
		}
		return err
	}

	metrics.PurchasesTotal.WithLabelValues(sweet.Category).Inc()
	return c.JSON(http.StatusOK, sweetResponse{Success: true, Data: sweet})
}

// Restock handles POST /api/sweets/:id/restock (admin only).
//
// @Summary      Restock a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sweet id"
// @Param        body  body      restockRequest  true  "Restock amount"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	amount := 0
	if req.Amount != nil {
		amount = *req.Amount
	}

	sweet, err := h.service.Restock(c.Request().Context(), c.Param("id"), amount)
	if err != nil {
		return err
	}

	metrics.RestocksTotal.WithLabelValues(sweet.Category).Inc()
	return c.JSON(http.StatusOK, sweetResponse{Success: true, Data: sweet})
}

// parsePriceParam converts an optional query value to a price bound.
func parsePriceParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
