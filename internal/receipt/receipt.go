package receipt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// MaxUploadSize is the receipt image ceiling, checked before any network
// call.
const MaxUploadSize = 2 << 20

var (
	ErrTooLarge = errors.New("receipt image exceeds 2 MB")
	ErrNotImage = errors.New("receipt must be an image")
)

// ValidateImage rejects oversized or non-image payloads. The content type
// is sniffed from the bytes, not trusted from the request.
func ValidateImage(data []byte) error {
	if len(data) > MaxUploadSize {
		return ErrTooLarge
	}

	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return ErrNotImage
	}

	return nil
}

// Uploader pushes receipt images to an object-storage HTTP endpoint and
// returns their public URI. Transient failures are retried once after a
// fixed delay before surfacing.
type Uploader struct {
	client   *resty.Client
	endpoint string
	bucket   string
}

func NewUploader(endpoint, apiKey, bucket string) *Uploader {
	endpoint = strings.TrimRight(endpoint, "/")

	client := resty.New().
		SetBaseURL(endpoint).
		SetAuthToken(apiKey).
		SetTimeout(30 * time.Second).
		SetRetryCount(1).
		SetRetryWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Uploader{client: client, endpoint: endpoint, bucket: bucket}
}

// Upload validates and stores the image. An object uploaded here is not
// rolled back if the caller's subsequent backend call fails.
func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ValidateImage(data); err != nil {
		return "", err
	}

	object := fmt.Sprintf("%d-%s", time.Now().UnixNano(), path.Base(filename))

	resp, err := u.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", http.DetectContentType(data)).
		SetBody(data).
		Post("/object/" + u.bucket + "/" + object)
	if err != nil {
		return "", fmt.Errorf("uploading receipt: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("uploading receipt: storage returned %s", resp.Status())
	}

	return fmt.Sprintf("%s/object/public/%s/%s", u.endpoint, u.bucket, object), nil
}
