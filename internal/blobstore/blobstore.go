// Package blobstore performs the single authenticated-by-URL PUT that pushes
// a replay payload to the pre-signed object-storage endpoint.
package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/imalento/Arcane-Tracker/internal/common"
)

// Uploader PUTs a payload to a pre-signed URL. Any 2xx response is success.
// No retry is performed; retry policy, if any, belongs to the caller.
type Uploader interface {
	Put(ctx context.Context, url string, body []byte, contentType string) error
}

// HTTPUploader implements Uploader over net/http.
type HTTPUploader struct {
	client    *http.Client
	userAgent string
}

// NewHTTPUploader returns an uploader with the given per-request timeout.
func NewHTTPUploader(userAgent string, timeout time.Duration) *HTTPUploader {
	return &HTTPUploader{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Put uploads body to url. Transport failures wrap common.ErrNetwork;
// non-2xx responses are reported as *common.RemoteError.
func (u *HTTPUploader) Put(ctx context.Context, url string, body []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", u.userAgent)

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &common.RemoteError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	return nil
}

var _ Uploader = (*HTTPUploader)(nil)
