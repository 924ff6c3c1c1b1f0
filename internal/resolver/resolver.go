package resolver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"boardscout/server/internal/catalog"
	"boardscout/server/internal/database"
	"boardscout/server/internal/models"
)

var (
	// ErrNotFound means every lookup strategy was exhausted without a match.
	ErrNotFound = errors.New("billboard not found")

	// ErrStoreUnavailable means a strategy failed for a reason other than a
	// clean miss and the chain was aborted.
	ErrStoreUnavailable = errors.New("billboard store unavailable")
)

// Store is the billboard collection the resolver queries. A clean miss is
// signalled with database.ErrNotFound; any other error aborts the chain.
type Store interface {
	GetBillboardByID(ctx context.Context, id int64) (*models.Billboard, error)
	FindBillboardByLocation(ctx context.Context, text string) (*models.Billboard, error)
	FindBillboardAcrossFields(ctx context.Context, text string) (*models.Billboard, error)
	FindAnyBillboard(ctx context.Context) (*models.Billboard, error)
}

// Resolver turns a request identifier into a single complete billboard by
// running a fixed sequence of lookup strategies, from most to least specific.
type Resolver struct {
	store           Store
	catalog         catalog.Catalog
	completer       *Completer
	logger          *logrus.Logger
	strategyTimeout time.Duration
}

func New(store Store, cat catalog.Catalog, completer *Completer, logger *logrus.Logger, strategyTimeout time.Duration) *Resolver {
	if cat == nil {
		cat = catalog.Disabled{}
	}
	return &Resolver{
		store:           store,
		catalog:         cat,
		completer:       completer,
		logger:          logger,
		strategyTimeout: strategyTimeout,
	}
}

// Resolve looks up the billboard for identifier. The identifier may be a
// record key, a location fragment, or free text; each strategy that misses
// hands over to the next. Returns ErrNotFound after the last strategy, or
// ErrStoreUnavailable if a strategy failed hard.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*models.Billboard, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil && id > 0 {
		b, err := r.try(ctx, "exact_key", identifier, func(ctx context.Context) (*models.Billboard, error) {
			return r.store.GetBillboardByID(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		if b != nil {
			return r.finish(b), nil
		}
	} else {
		r.logger.WithField("identifier", identifier).Debug("Identifier is not a record key, skipping exact lookup")
	}

	b, err := r.try(ctx, "location_match", identifier, func(ctx context.Context) (*models.Billboard, error) {
		return r.store.FindBillboardByLocation(ctx, identifier)
	})
	if err != nil {
		return nil, err
	}
	if b != nil {
		return r.finish(b), nil
	}

	b, err = r.try(ctx, "multi_field_match", identifier, func(ctx context.Context) (*models.Billboard, error) {
		return r.store.FindBillboardAcrossFields(ctx, identifier)
	})
	if err != nil {
		return nil, err
	}
	if b != nil {
		return r.finish(b), nil
	}

	if b := r.catalog.FindByID(identifier); b != nil {
		r.logHit("catalog_key", identifier)
		return r.finish(b), nil
	}
	if b := r.catalog.MatchKeyword(identifier); b != nil {
		r.logHit("catalog_keyword", identifier)
		return r.finish(b), nil
	}

	b, err = r.try(ctx, "any_record", identifier, func(ctx context.Context) (*models.Billboard, error) {
		return r.store.FindAnyBillboard(ctx)
	})
	if err != nil {
		return nil, err
	}
	if b != nil {
		return r.finish(b), nil
	}

	r.logger.WithField("identifier", identifier).Info("All lookup strategies exhausted")
	return nil, ErrNotFound
}

// try runs one store-backed strategy under the per-strategy timeout. A slow
// strategy counts as a miss so the chain can continue; any error other than a
// clean miss aborts the chain.
func (r *Resolver) try(ctx context.Context, strategy, identifier string, fn func(ctx context.Context) (*models.Billboard, error)) (*models.Billboard, error) {
	sctx, cancel := context.WithTimeout(ctx, r.strategyTimeout)
	defer cancel()

	b, err := fn(sctx)
	switch {
	case err == nil:
		r.logHit(strategy, identifier)
		return b, nil
	case errors.Is(err, database.ErrNotFound):
		return nil, nil
	case errors.Is(err, context.DeadlineExceeded):
		r.logger.WithFields(logrus.Fields{
			"strategy":   strategy,
			"identifier": identifier,
		}).Warn("Lookup strategy timed out, moving on")
		return nil, nil
	default:
		r.logger.WithError(err).WithFields(logrus.Fields{
			"strategy":   strategy,
			"identifier": identifier,
		}).Error("Lookup strategy failed")
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, strategy, err)
	}
}

func (r *Resolver) finish(b *models.Billboard) *models.Billboard {
	completed := r.completer.Complete(*b)
	return &completed
}

func (r *Resolver) logHit(strategy, identifier string) {
	r.logger.WithFields(logrus.Fields{
		"strategy":   strategy,
		"identifier": identifier,
	}).Info("Billboard resolved")
}
