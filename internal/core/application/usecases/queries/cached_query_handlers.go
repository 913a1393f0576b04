package queries

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/application/readthrough"
)

const (
	DefaultShipmentDetailsTTL = 120 * time.Second
	DefaultUserByEmailTTL     = 5 * time.Second
)

type ShipmentDetailsReader interface {
	Handle(ctx context.Context, query GetShipmentDetailsQuery) (ShipmentDetails, error)
}

type UserByEmailReader interface {
	Handle(ctx context.Context, query FindUserByEmailQuery) (UserView, error)
}

// CachedGetShipmentDetailsQueryHandler serves details from the read-through cache
// under shipment-status:<id>. Writes do not invalidate entries, so a cached
// aggregate may be stale for up to the TTL.
type CachedGetShipmentDetailsQueryHandler struct {
	inner ShipmentDetailsReader
	cache *readthrough.Cache
	ttl   time.Duration
}

func NewCachedGetShipmentDetailsQueryHandler(
	inner ShipmentDetailsReader,
	cache *readthrough.Cache,
	ttl time.Duration,
) CachedGetShipmentDetailsQueryHandler {
	if ttl <= 0 {
		ttl = DefaultShipmentDetailsTTL
	}
	return CachedGetShipmentDetailsQueryHandler{inner: inner, cache: cache, ttl: ttl}
}

func (h CachedGetShipmentDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentDetailsQuery,
) (ShipmentDetails, error) {
	if err := query.Validate(); err != nil {
		return ShipmentDetails{}, err
	}

	key := fmt.Sprintf("shipment-status:%d", query.ShipmentID())
	return readthrough.GetOrPopulate(ctx, h.cache, key, h.ttl, func(ctx context.Context) (ShipmentDetails, error) {
		return h.inner.Handle(ctx, query)
	})
}

// CachedFindUserByEmailQueryHandler caches user lookups under find-user:<email>.
type CachedFindUserByEmailQueryHandler struct {
	inner UserByEmailReader
	cache *readthrough.Cache
	ttl   time.Duration
}

func NewCachedFindUserByEmailQueryHandler(
	inner UserByEmailReader,
	cache *readthrough.Cache,
	ttl time.Duration,
) CachedFindUserByEmailQueryHandler {
	if ttl <= 0 {
		ttl = DefaultUserByEmailTTL
	}
	return CachedFindUserByEmailQueryHandler{inner: inner, cache: cache, ttl: ttl}
}

func (h CachedFindUserByEmailQueryHandler) Handle(ctx context.Context, query FindUserByEmailQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	return readthrough.GetOrPopulate(ctx, h.cache, "find-user:"+query.Email(), h.ttl,
		func(ctx context.Context) (UserView, error) {
			return h.inner.Handle(ctx, query)
		})
}
