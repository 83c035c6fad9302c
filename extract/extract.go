// Package extract turns the raw markup and JSON served by the catalog into typed entities.
//
// Every entity kind has its own Strategy. The markup based ones share a shape: bound a region of
// the document with literal anchors, split it into fragments on a literal delimiter and match
// each fragment against a pattern. Fragments that do not match are dropped without error;
// Stats records how many were seen and how many matched so the drift stays observable.
package extract

import (
	"regexp"
	"strings"

	"github.com/atres-cli/atres/log"
)

// Stats counts the fragments a strategy looked at.
type Stats struct {
	Seen    int `json:"seen"`
	Matched int `json:"matched"`
}

// Dropped returns the number of fragments that failed to match.
func (s Stats) Dropped() int {
	return s.Seen - s.Matched
}

// Result is the outcome of one extraction.
type Result[T any] struct {
	Items []T
	Stats Stats
}

// Strategy extracts the entities of one kind from a raw document.
type Strategy[T any] interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract parses raw. Only a document that cannot be read at all is an error;
	// unmatched fragments are reported through Stats.
	Extract(raw string) (Result[T], error)
}

// Region bounds the part of a document holding the repeated items.
type Region struct {
	// Start anchors are searched in sequence, each one from the position of the previous.
	// The region begins at the last one.
	Start []string
	// End terminates the region. When absent from the document the region runs to its end.
	End string
}

// Slice returns the bounded region of doc. A missing start anchor means there is no region.
func (r Region) Slice(doc string) (string, bool) {
	pos := 0
	for _, anchor := range r.Start {
		i := strings.Index(doc[pos:], anchor)
		if i < 0 {
			return "", false
		}
		pos += i
	}

	end := len(doc)
	if r.End != "" {
		if i := strings.Index(doc[pos:], r.End); i >= 0 {
			end = pos + i
		}
	}

	return doc[pos:end], true
}

var lineBreaks = strings.NewReplacer("\r", " ", "\n", " ")

// fragments splits region on delimiter, dropping blank pieces.
func fragments(region, delimiter string) []string {
	region = lineBreaks.Replace(region)

	var out []string
	for _, f := range strings.Split(region, delimiter) {
		if strings.TrimSpace(f) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// markup is the regex-over-markup strategy shared by programs, seasons and search results.
type markup[T any] struct {
	name      string
	region    Region
	delimiter string
	pattern   *regexp.Regexp
	build     func(groups []string) T
}

func (m *markup[T]) Name() string {
	return m.name
}

func (m *markup[T]) Extract(raw string) (Result[T], error) {
	var result Result[T]

	region, ok := m.region.Slice(raw)
	if !ok {
		log.Debugf("%s: region not found", m.name)
		return result, nil
	}

	for _, fragment := range fragments(region, m.delimiter) {
		result.Stats.Seen++

		groups := m.pattern.FindStringSubmatch(fragment)
		if groups == nil {
			continue
		}

		result.Stats.Matched++
		result.Items = append(result.Items, m.build(groups))
	}

	if dropped := result.Stats.Dropped(); dropped > 0 {
		log.Warnf("%s: dropped %d of %d fragments", m.name, dropped, result.Stats.Seen)
	} else {
		log.Debugf("%s: matched %d fragments", m.name, result.Stats.Matched)
	}

	return result, nil
}
