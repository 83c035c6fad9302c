// Package query keeps the search history used for query suggestions.
package query

import (
	"strings"
	"sync"

	"github.com/atres-cli/atres/filesystem"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is a remembered query and how often it was searched.
type Record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu      sync.Mutex
	history = gache.New[map[string]*Record](
		&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
	matches = make(map[string][]*Record)
)

func load() map[string]*Record {
	cached, expired, err := history.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*Record)
	}
	return cached
}

// Remember adds weight to the query rank, recording it if new.
func Remember(q string, weight int) error {
	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if record, ok := records[q]; ok {
		record.Rank += weight
	} else {
		records[q] = &Record{Rank: weight, Query: q}
	}

	clear(matches)
	return history.Set(records)
}

// Forget removes a single query from the history.
func Forget(q string) error {
	q = normalize(q)

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if _, ok := records[q]; !ok {
		return nil
	}

	delete(records, q)
	clear(matches)
	return history.Set(records)
}

// Clear drops the whole history.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	clear(matches)
	return history.Set(make(map[string]*Record))
}

// Suggest returns the best ranked query matching q.
func Suggest(q string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(q)))
}

// SuggestMany returns the remembered queries fuzzy matching q, highest rank first.
// It returns nothing when suggestions are disabled.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = normalize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := matches[q]
	if !ok {
		records = lo.Filter(lo.Values(load()), func(r *Record, _ int) bool {
			return fuzzy.Match(q, r.Query)
		})

		slices.SortFunc(records, func(a, b *Record) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		matches[q] = records
	}

	return lo.Map(records, func(r *Record, _ int) string {
		return r.Query
	})
}

func normalize(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
