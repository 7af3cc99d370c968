// Package pipeline runs the fetch → normalize → filter → translate → cache
// sequence for one product query.
package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/maicaalmonte/nutricalculator/internal/cache"
	"github.com/maicaalmonte/nutricalculator/internal/model"
	"github.com/maicaalmonte/nutricalculator/internal/normalize"
	"github.com/maicaalmonte/nutricalculator/internal/translate"
)

// Sentinel errors distinguishing an empty result from an unreachable source.
var (
	// ErrNoProducts means the fetch completed but yielded zero records.
	ErrNoProducts = errors.New("no products were fetched")
	// ErrUpstream means the product API failed before any record arrived.
	ErrUpstream = errors.New("product source unavailable")
)

// Fetcher is the page-fetching capability the pipeline depends on. A non-nil
// error reports a mid-fetch failure; the returned slice still holds whatever
// pages arrived before it.
type Fetcher interface {
	Fetch(ctx context.Context, pageSize, maxPages int) ([]model.RawProduct, error)
}

// Service wires the pipeline stages around process-wide clients. Stages run
// strictly sequentially; records keep API order throughout.
type Service struct {
	fetcher    Fetcher
	translator translate.Translator
	cache      *cache.Cache
	group      singleflight.Group
	log        *zap.Logger
}

// New constructs a Service. translator may be nil, disabling translation.
func New(fetcher Fetcher, translator translate.Translator, c *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		translator: translator,
		cache:      c,
		log:        log,
	}
}

// Products returns the processed record list for params, serving from the
// cache when possible. Identical concurrent requests are coalesced per cache
// key, so only one of them runs the pipeline; the rest share its result.
func (s *Service) Products(ctx context.Context, params model.Params) ([]model.ProductRecord, error) {
	params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	key := cache.Key(params)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.products(ctx, key, params)
	})
	if err != nil {
		return nil, err
	}
	// Shared across coalesced callers; records are immutable by contract.
	return v.([]model.ProductRecord), nil
}

func (s *Service) products(ctx context.Context, key string, params model.Params) ([]model.ProductRecord, error) {
	if records, ok := s.cache.Get(ctx, key); ok {
		s.log.Debug("cache hit", zap.String("key", key), zap.Int("records", len(records)))
		return records, nil
	}

	raws, fetchErr := s.fetcher.Fetch(ctx, params.Limit, params.MaxPages)
	if len(raws) == 0 {
		if fetchErr != nil {
			s.log.Warn("fetch failed with no data", zap.Error(fetchErr))
			return nil, ErrUpstream
		}
		return nil, ErrNoProducts
	}
	if fetchErr != nil {
		// Partial data is still usable; the fetch error degrades to a warning.
		s.log.Warn("fetch ended early, continuing with partial data",
			zap.Int("records", len(raws)), zap.Error(fetchErr))
	}

	records := normalize.Records(raws)
	records = applyFilters(records, params)
	if s.translator != nil {
		records = translate.Apply(ctx, s.translator, records, params.Language, s.log)
	}

	// Only a fully fetched result is cached; a partial one would otherwise be
	// served until the TTL runs out. The next request retries the fetch.
	if fetchErr == nil {
		s.cache.Set(ctx, key, records)
	}
	return records, nil
}
