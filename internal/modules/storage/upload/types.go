package upload

import "context"

// Uploader writes raw bytes under a key and returns the public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, payload []byte, contentType string) (string, error)
}
