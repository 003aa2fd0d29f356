// Package images fetches and re-encodes the pictures referenced by report
// items. Failures are isolated per image: a fetch or decode error becomes a
// typed result the layout engine turns into a placeholder, never an error
// that aborts the document.
package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"time"

	// Register the decoders for the formats the bulletin platform accepts.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/rs/zerolog"
)

const maxImageBytes = 20 << 20

// EmbedResult is the outcome of one image embed. Err is set on failure and
// PNG/Width/Height on success; the two are mutually exclusive.
type EmbedResult struct {
	Ref    string
	PNG    []byte
	Width  int
	Height int
	Err    error
}

// Failed reports whether the image could not be embedded.
func (r EmbedResult) Failed() bool {
	return r.Err != nil
}

// Embedder fetches one image and re-encodes it to an embeddable format.
type Embedder interface {
	Embed(ctx context.Context, ref string) EmbedResult
}

// HTTPEmbedder fetches images over HTTP and re-encodes them as PNG at their
// natural dimensions.
type HTTPEmbedder struct {
	client *http.Client
}

func NewHTTPEmbedder(timeout time.Duration) *HTTPEmbedder {
	return &HTTPEmbedder{client: &http.Client{Timeout: timeout}}
}

func (e *HTTPEmbedder) Embed(ctx context.Context, ref string) EmbedResult {
	fail := func(err error) EmbedResult {
		zerolog.Ctx(ctx).Warn().Err(err).Str("ref", ref).Msg("image embed failed")
		return EmbedResult{Ref: ref, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return fail(fmt.Errorf("building image request: %w", err))
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return fail(fmt.Errorf("fetching image: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Errorf("fetching image: unexpected status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return fail(fmt.Errorf("reading image body: %w", err))
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fail(fmt.Errorf("decoding image: %w", err))
	}

	// Redraw onto a fresh raster surface at natural size, then re-encode.
	// This strips exotic color models and metadata before embedding.
	bounds := src.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), src, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return fail(fmt.Errorf("encoding image: %w", err))
	}

	return EmbedResult{
		Ref:    ref,
		PNG:    buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}
