package ports

import "context"

// UploadInput is one validated admin upload.
type UploadInput struct {
	Data        []byte
	ContentType string
	Filename    string
	Folder      string
}

// UploadResult describes a stored image. Width and Height are zero when the
// format could not be decoded server-side.
type UploadResult struct {
	URL      string
	PublicID string
	Bytes    int64
	Format   string
	Width    int
	Height   int
}

// ImageService validates an upload and delegates it to object storage.
type ImageService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
}

// ImageStorage is the object storage boundary: one external round trip per
// call, returning the public URL of the stored object.
type ImageStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (url string, err error)
}
