package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Navigator opens catalog pages.
type Navigator interface {
	Open(ctx context.Context, token string) (*page.Page, error)
	SearchPage(ctx context.Context, query string) (*page.Page, error)
}

// ItemsFilter narrows the items of the opened page.
type ItemsFilter func([]*page.Item) ([]*page.Item, error)

type Options struct {
	Out       io.Writer
	Navigator Navigator

	// Token is opened when set, otherwise Query is searched.
	Token string
	Query string

	// Batches is how many extra batches to load on paginated pages.
	// A negative value loads everything.
	Batches int

	ItemsFilter mo.Option[ItemsFilter]

	// Videos opens every video item and reports its sources.
	Videos bool
	Json   bool
}

// ParseItemsFilter parses a filter description:
//
//	all, first, last    the obvious
//	videos, directories items of that kind
//	N                   the item at index N
//	N-M                 the items from N to M, inclusive
//	@text@              the items whose title contains text
func ParseItemsFilter(description string) (ItemsFilter, error) {
	switch description {
	case "all":
		return func(items []*page.Item) ([]*page.Item, error) {
			return items, nil
		}, nil
	case "first":
		return func(items []*page.Item) ([]*page.Item, error) {
			return lo.Slice(items, 0, 1), nil
		}, nil
	case "last":
		return func(items []*page.Item) ([]*page.Item, error) {
			return lo.Slice(items, len(items)-1, len(items)), nil
		}, nil
	case "videos":
		return ofKind(page.KindVideo), nil
	case "directories":
		return ofKind(page.KindDirectory), nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(items []*page.Item) ([]*page.Item, error) {
			return lo.Filter(items, func(item *page.Item, _ int) bool {
				return strings.Contains(strings.ToLower(item.Title), sub)
			}), nil
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.Atoi(from)
		end, err2 := strconv.Atoi(to)
		if err1 != nil || err2 != nil || start < 0 || end < 0 {
			return nil, fmt.Errorf("invalid items range: %s", description)
		}

		return func(items []*page.Item) ([]*page.Item, error) {
			if start > end {
				return []*page.Item{}, nil
			}
			return lo.Slice(items, start, util.Min(end+1, len(items))), nil
		}, nil
	}

	if index, err := strconv.Atoi(description); err == nil && index >= 0 {
		return func(items []*page.Item) ([]*page.Item, error) {
			return lo.Slice(items, index, index+1), nil
		}, nil
	}

	return nil, fmt.Errorf("invalid items filter: %s", description)
}

func ofKind(kind page.Kind) ItemsFilter {
	return func(items []*page.Item) ([]*page.Item, error) {
		return lo.Filter(items, func(item *page.Item, _ int) bool {
			return item.Kind == kind
		}), nil
	}
}
