package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontridge/frontridge-api/internal/api/metrics"
	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

// ImageHandler handles multipart image uploads from the admin panel.
type ImageHandler struct {
	service ports.ImageService
}

func NewImageHandler(service ports.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

type uploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Bytes    int64  `json:"bytes"`
	Format   string `json:"format"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// Upload handles POST /api/images/upload. The file buffer lives for this
// request only; the store receives the resulting URL in a later call.
//
// @Summary      Upload an image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "Image file (max 50MB)"
// @Param        folder  formData  string  false  "Target folder"
// @Success      200     {object}  uploadResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/images/upload [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewValidationError("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	result, err := h.service.Upload(c.Request().Context(), ports.UploadInput{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
		Folder:      c.FormValue("folder"),
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.UploadsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	metrics.UploadBytes.Observe(float64(result.Bytes))

	return c.JSON(http.StatusOK, uploadResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
		Bytes:    result.Bytes,
		Format:   result.Format,
		Width:    result.Width,
		Height:   result.Height,
	})
}
