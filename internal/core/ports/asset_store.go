package ports

import (
	"context"
	"io"
)

// Upload is an image file received from a client.
type Upload struct {
	Filename string
	Content  io.Reader
}

// AssetStore manages uploaded product images.
type AssetStore interface {
	// Store saves the upload under a freshly generated name and returns its reference.
	Store(ctx context.Context, upload Upload) (string, error)
	// TryDelete removes a managed asset. Unknown or unmanaged references are a
	// no-op. Callers log a returned error and carry on.
	TryDelete(ctx context.Context, ref string) error
}
