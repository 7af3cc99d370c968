package cache_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/cache"
	"github.com/maicaalmonte/nutricalculator/internal/model"
)

// memStore is a cache.Store over a map with an injectable clock, so expiry
// can be simulated without sleeping.
type memStore struct {
	now     time.Time
	entries map[string]memEntry
}

type memEntry struct {
	value    []byte
	expireAt time.Time
}

func newMemStore() *memStore {
	return &memStore{now: time.Unix(1700000000, 0), entries: map[string]memEntry{}}
}

func (s *memStore) advance(d time.Duration) { s.now = s.now.Add(d) }

func (s *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.entries[key]
	if !ok || !s.now.Before(e.expireAt) {
		return nil, false, nil
	}
	return e.value, true, nil
}

func (s *memStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.entries[key] = memEntry{value: value, expireAt: s.now.Add(ttl)}
	return nil
}

// ── Key derivation ─────────────────────────────────────────────────────────

func TestKey_Deterministic(t *testing.T) {
	p := model.Params{Page: 1, Limit: 100, MaxPages: 10, Language: "en", Brand: "Acme"}
	if cache.Key(p) != cache.Key(p) {
		t.Error("identical params must produce identical keys")
	}
}

func TestKey_DiffersPerParameter(t *testing.T) {
	base := model.Params{Page: 1, Limit: 100, MaxPages: 10, Language: "en"}

	variants := map[string]model.Params{
		"page":         {Page: 2, Limit: 100, MaxPages: 10, Language: "en"},
		"limit":        {Page: 1, Limit: 50, MaxPages: 10, Language: "en"},
		"max_pages":    {Page: 1, Limit: 100, MaxPages: 5, Language: "en"},
		"language":     {Page: 1, Limit: 100, MaxPages: 10, Language: "fr"},
		"category":     {Page: 1, Limit: 100, MaxPages: 10, Language: "en", Category: "snacks"},
		"brand":        {Page: 1, Limit: 100, MaxPages: 10, Language: "en", Brand: "Acme"},
		"product_name": {Page: 1, Limit: 100, MaxPages: 10, Language: "en", ProductName: "Bar"},
	}

	baseKey := cache.Key(base)
	seen := map[string]string{"base": baseKey}
	for name, p := range variants {
		k := cache.Key(p)
		for other, otherKey := range seen {
			if k == otherKey {
				t.Errorf("params differing in %s collided with %s", name, other)
			}
		}
		seen[name] = k
	}
}

// ── Round trip and expiry ──────────────────────────────────────────────────

func TestCache_RoundTrip(t *testing.T) {
	store := newMemStore()
	c := cache.New(store, time.Hour, zap.NewNop())
	ctx := context.Background()

	records := []model.ProductRecord{
		{Code: "1", ProductName: "Energy Bar", EnergyKcal: 385},
		{Code: "2", ProductName: "Chips"},
	}

	c.Set(ctx, "k", records)
	got, ok := c.Get(ctx, "k")
	if !ok {
		t.Fatal("expected a hit immediately after Set")
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("got %+v, want %+v", got, records)
	}
}

func TestCache_ExpiredEntryIsAbsent(t *testing.T) {
	store := newMemStore()
	c := cache.New(store, time.Hour, zap.NewNop())
	ctx := context.Background()

	c.Set(ctx, "k", []model.ProductRecord{{Code: "1"}})

	store.advance(time.Hour)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("entry must read as absent once past its expiry")
	}
}

func TestCache_SetOverwrites(t *testing.T) {
	store := newMemStore()
	c := cache.New(store, time.Hour, zap.NewNop())
	ctx := context.Background()

	c.Set(ctx, "k", []model.ProductRecord{{Code: "old"}})
	c.Set(ctx, "k", []model.ProductRecord{{Code: "new"}})

	got, ok := c.Get(ctx, "k")
	if !ok || len(got) != 1 || got[0].Code != "new" {
		t.Errorf("got %+v, want the overwritten value", got)
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := cache.New(newMemStore(), time.Hour, zap.NewNop())
	if _, ok := c.Get(context.Background(), "nope"); ok {
		t.Error("unknown key must miss")
	}
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	store := newMemStore()
	c := cache.New(store, time.Hour, zap.NewNop())
	ctx := context.Background()

	_ = store.SetWithTTL(ctx, "k", []byte("{not json"), time.Hour)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("corrupt entry must read as a miss")
	}
}
