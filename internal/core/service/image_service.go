package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

// MaxUploadBytes is the authoritative server-side size cap. The admin UI
// rejects files above 20 MiB before they reach the API.
const MaxUploadBytes = 50 << 20

const defaultFolder = "uploads"

// formatByContentType maps accepted image MIME types to their canonical
// format name (and storage extension).
var formatByContentType = map[string]string{
	"image/jpeg":               "jpg",
	"image/jpg":                "jpg",
	"image/pjpeg":              "jpeg",
	"image/png":                "png",
	"image/gif":                "gif",
	"image/webp":               "webp",
	"image/bmp":                "bmp",
	"image/x-ms-bmp":           "bmp",
	"image/tiff":               "tiff",
	"image/svg+xml":            "svg",
	"image/x-icon":             "ico",
	"image/vnd.microsoft.icon": "ico",
	"image/heic":               "heic",
	"image/heif":               "heif",
}

// ImageService validates admin uploads and hands them to object storage.
// A nil storage means the provider credentials were not configured; uploads
// then fail before any network activity.
type ImageService struct {
	storage ports.ImageStorage
	logger  zerolog.Logger

	now func() time.Time
}

func NewImageService(storage ports.ImageStorage, logger zerolog.Logger) *ImageService {
	return &ImageService{storage: storage, logger: logger, now: time.Now}
}

// Upload performs one provider round trip for a validated image.
func (s *ImageService) Upload(ctx context.Context, input ports.UploadInput) (*ports.UploadResult, error) {
	if len(input.Data) == 0 {
		return nil, domain.NewValidationError("file is required")
	}
	if len(input.Data) > MaxUploadBytes {
		return nil, domain.NewValidationError("file exceeds the %dMB limit", MaxUploadBytes>>20)
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.NewValidationError("unsupported file type; allowed formats: %s", allowedFormats())
	}
	format, ok := formatByContentType[contentType]
	if !ok {
		return nil, domain.NewValidationError("unsupported file type; allowed formats: %s", allowedFormats())
	}

	if s.storage == nil {
		return nil, domain.ErrNotConfigured
	}

	// Dimensions are best-effort: formats Go cannot decode are stored anyway.
	width, height := probeDimensions(input.Data)

	key := s.objectKey(input.Folder, input.Data, format)
	url, err := s.storage.Put(ctx, key, contentType, input.Data)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("image upload failed")
		return nil, &domain.UploadError{Message: providerMessage(err), Err: err}
	}

	s.logger.Info().
		Str("key", key).
		Str("format", format).
		Int("bytes", len(input.Data)).
		Msg("image uploaded")

	return &ports.UploadResult{
		URL:      url,
		PublicID: key,
		Bytes:    int64(len(input.Data)),
		Format:   format,
		Width:    width,
		Height:   height,
	}, nil
}

// objectKey builds a content-addressed key: <folder>/<yyyy/mm/dd>/<sha256>.<ext>.
func (s *ImageService) objectKey(folder string, data []byte, format string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = defaultFolder
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s/%s/%s.%s",
		folder, s.now().UTC().Format("2006/01/02"), hex.EncodeToString(sum[:]), format)
}

func probeDimensions(data []byte) (width, height int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

func providerMessage(err error) string {
	if err == nil {
		return ""
	}
	return "image upload failed: " + err.Error()
}

func allowedFormats() string {
	seen := make(map[string]struct{})
	formats := make([]string, 0, len(formatByContentType))
	for _, f := range formatByContentType {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return strings.Join(formats, ", ")
}
