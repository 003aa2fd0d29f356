package images

import (
	"context"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps the parallel image fetches per generation.
const DefaultConcurrency = 4

// ItemImage pairs an embed result with the (item, image) slot it fills.
type ItemImage struct {
	ItemIndex  int
	ImageIndex int
	Result     EmbedResult
}

// EmbedAll resolves every image referenced by items. Fetches run
// concurrently up to limit, but results come back in item order so document
// placement stays deterministic regardless of completion order. Individual
// failures are carried inside the results; EmbedAll itself never fails.
func EmbedAll(ctx context.Context, emb Embedder, items []domain.ReportItem, limit int) []ItemImage {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var slots []ItemImage
	for i, item := range items {
		for j, ref := range item.Images {
			slots = append(slots, ItemImage{ItemIndex: i, ImageIndex: j, Result: EmbedResult{Ref: ref}})
		}
	}

	g := &errgroup.Group{}
	g.SetLimit(limit)
	for s := range slots {
		s := s
		g.Go(func() error {
			slots[s].Result = emb.Embed(ctx, slots[s].Result.Ref)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	return slots
}
