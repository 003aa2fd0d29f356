package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestHTTPEmbedder_ReencodesToPNG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(jpegBytes(t, 40, 25))
	}))
	defer srv.Close()

	res := NewHTTPEmbedder(5 * time.Second).Embed(context.Background(), srv.URL+"/photo.jpg")

	require.False(t, res.Failed())
	assert.Equal(t, 40, res.Width)
	assert.Equal(t, 25, res.Height)

	decoded, format, err := image.Decode(bytes.NewReader(res.PNG))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 40, decoded.Bounds().Dx())
}

func TestHTTPEmbedder_FailureIsTypedNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	res := NewHTTPEmbedder(5 * time.Second).Embed(context.Background(), srv.URL+"/missing.jpg")

	assert.True(t, res.Failed())
	assert.Empty(t, res.PNG)
	assert.Equal(t, srv.URL+"/missing.jpg", res.Ref)
}

func TestHTTPEmbedder_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	res := NewHTTPEmbedder(5 * time.Second).Embed(context.Background(), srv.URL+"/broken.png")
	assert.True(t, res.Failed())
}

// stubEmbedder resolves refs from a fixed table, optionally out of order.
type stubEmbedder struct {
	mu      sync.Mutex
	results map[string]EmbedResult
	calls   []string
}

func (s *stubEmbedder) Embed(_ context.Context, ref string) EmbedResult {
	s.mu.Lock()
	s.calls = append(s.calls, ref)
	s.mu.Unlock()
	if r, ok := s.results[ref]; ok {
		r.Ref = ref
		return r
	}
	return EmbedResult{Ref: ref, Err: context.Canceled}
}

func TestEmbedAll_ResultsInItemOrder(t *testing.T) {
	items := []domain.ReportItem{
		{ID: "a", Images: []string{"img-1", "img-2"}},
		{ID: "b"},
		{ID: "c", Images: []string{"img-3"}},
	}
	stub := &stubEmbedder{results: map[string]EmbedResult{
		"img-1": {Err: assert.AnError},
		"img-2": {PNG: []byte{1}, Width: 1, Height: 1},
		"img-3": {PNG: []byte{2}, Width: 1, Height: 1},
	}}

	got := EmbedAll(context.Background(), stub, items, 2)

	require.Len(t, got, 3)
	assert.Equal(t, 0, got[0].ItemIndex)
	assert.Equal(t, 0, got[0].ImageIndex)
	assert.True(t, got[0].Result.Failed())
	assert.Equal(t, 1, got[1].ImageIndex)
	assert.False(t, got[1].Result.Failed())
	assert.Equal(t, 2, got[2].ItemIndex)
	assert.Equal(t, "img-3", got[2].Result.Ref)
}

func TestEmbedAll_OneFailureNeverAbortsTheBatch(t *testing.T) {
	items := []domain.ReportItem{{ID: "a", Images: []string{"bad", "good"}}}
	stub := &stubEmbedder{results: map[string]EmbedResult{
		"bad":  {Err: assert.AnError},
		"good": {PNG: []byte{42}, Width: 10, Height: 10},
	}}

	got := EmbedAll(context.Background(), stub, items, 1)

	require.Len(t, got, 2)
	assert.True(t, got[0].Result.Failed())
	assert.False(t, got[1].Result.Failed())
}

func TestEmbedAll_NoImages(t *testing.T) {
	got := EmbedAll(context.Background(), &stubEmbedder{}, []domain.ReportItem{{ID: "a"}}, 0)
	assert.Empty(t, got)
}
