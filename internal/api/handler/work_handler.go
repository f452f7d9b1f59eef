package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontridge/frontridge-api/internal/api/metrics"
	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

// WorkHandler handles HTTP requests for portfolio works.
type WorkHandler struct {
	service ports.WorkService
}

func NewWorkHandler(service ports.WorkService) *WorkHandler {
	return &WorkHandler{service: service}
}

// List handles GET /api/works. Intentionally unauthenticated: the public
// site reads the portfolio through this endpoint.
//
// @Summary      List portfolio works
// @Tags         works
// @Produce      json
// @Success      200  {object}  listWorksResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/works [get]
func (h *WorkHandler) List(c echo.Context) error {
	works, err := h.service.List(c.Request().Context())
	if err != nil {
		metrics.WorksOperationsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	items := make([]workResponse, 0, len(works))
	for _, w := range works {
		items = append(items, toWorkResponse(w))
	}

	metrics.WorksOperationsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, listWorksResponse{Works: items})
}

// Create handles POST /api/works. The title and gallery images must already
// have been uploaded; this endpoint receives URLs, never bytes.
//
// @Summary      Create a work
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        body  body      createWorkRequest  true  "Work details"
// @Success      200   {object}  workEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/works [post]
func (h *WorkHandler) Create(c echo.Context) error {
	var req createWorkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	work, err := h.service.Create(c.Request().Context(), ports.CreateWorkInput{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		TitleImageURL:    req.TitleImageURL,
		GalleryImageURLs: req.GalleryImageURLs,
	})
	if err != nil {
		metrics.WorksOperationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.WorksOperationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusOK, workEnvelope{Work: toWorkResponse(work)})
}

// Update handles PUT /api/works/:id with partial-patch semantics.
//
// @Summary      Update a work
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Work id"
// @Param        body  body      updateWorkRequest  true  "Fields to update"
// @Success      200   {object}  workEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/works/{id} [put]
func (h *WorkHandler) Update(c echo.Context) error {
	var req updateWorkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdateWorkInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		TitleImageURL: req.TitleImageURL,
	}
	if req.GalleryImageURLs != nil {
		input.GalleryImageURLs = *req.GalleryImageURLs
		input.HasGallery = true
	}

	work, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		metrics.WorksOperationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.WorksOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, workEnvelope{Work: toWorkResponse(work)})
}

// Delete handles DELETE /api/works/:id. The delete is irreversible.
//
// @Summary      Delete a work
// @Tags         works
// @Produce      json
// @Param        id  path      string  true  "Work id"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/works/{id} [delete]
func (h *WorkHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		metrics.WorksOperationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.WorksOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
