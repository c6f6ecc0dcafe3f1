// Package listing collapses identical concurrent list fetches into one
// platform request.
package listing

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/sdk/platform"
)

// Fetcher de-duplicates list calls that share a key. Callers that join an
// in-flight call receive the same result; a slow early call cannot overwrite a
// newer one because both callers observe the single shared response.
type Fetcher struct {
	group singleflight.Group
}

func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Do runs fn once per key among concurrent callers. The token bound to ctx is
// part of the key so staff sessions never share responses.
func Do[T any](ctx context.Context, f *Fetcher, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	if tok, ok := platform.TokenFromContext(ctx); ok {
		key = tok + "|" + key
	}

	ch := f.group.DoChan(key, func() (any, error) {
		// the shared call must survive the cancellation of whichever caller started it
		return fn(context.WithoutCancel(ctx))
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Key builds a stable key for resource and query. Values are URL-encoded and
// filters are namespaced, so no search text can spell another query's key.
func Key(resource string, q dto.ListQuery) string {
	q = q.Normalize()

	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.PageSize))
	v.Set("search", q.Search)
	for k, val := range q.Filters {
		v.Set("f."+k, val)
	}
	return resource + "?" + v.Encode()
}
