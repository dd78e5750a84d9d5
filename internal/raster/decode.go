package raster

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// maxImageBytes caps remote downloads.
const maxImageBytes = 32 << 20

var httpClient = &http.Client{Timeout: 30 * time.Second}

// LoadImage decodes a png, jpeg, gif, webp or bmp image from a file path or
// an http(s) URL.
func LoadImage(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		r   io.ReadCloser
		err error
	)
	if isURL(src) {
		r, err = fetch(ctx, src)
	} else {
		r, err = os.Open(src)
	}
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", src, err)
	}
	defer r.Close()
	return Decode(r, src)
}

// Decode reads one image from r; name only labels errors.
func Decode(r io.Reader, name string) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, name)
	}
	return img, nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

type limitedBody struct {
	io.Reader
	io.Closer
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return limitedBody{Reader: io.LimitReader(resp.Body, maxImageBytes), Closer: resp.Body}, nil
}
