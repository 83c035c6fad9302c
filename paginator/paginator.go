// Package paginator drives incremental listings: repeated fetch and emit cycles pulled one batch
// at a time by the consumer.
package paginator

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned by Start when the cursor was already advanced.
var ErrExhausted = errors.New("cursor already started")

// FetchFunc produces the batch for key at page index.
type FetchFunc[K, T any] func(key K, index int) ([]T, error)

// EmitFunc receives every produced batch, in increasing index order.
type EmitFunc[T any] func(index int, batch []T)

type mode int

const (
	bounded mode = iota
	unbounded
)

// Cursor is a single use, pull based listing. Each call to Advance performs one fetch and
// emits one batch. Once done, a cursor never fetches again.
type Cursor[K, T any] struct {
	mode    mode
	keys    []K
	index   int
	done    bool
	batches int
	err     error

	fetch FetchFunc[K, T]
	emit  EmitFunc[T]
}

// Bounded returns a cursor producing exactly one batch per key, in key order.
// It is done once the known keys are exhausted, whatever the fetch returns.
func Bounded[K, T any](keys []K, fetch FetchFunc[K, T], emit EmitFunc[T]) *Cursor[K, T] {
	return &Cursor[K, T]{
		mode:  bounded,
		keys:  keys,
		fetch: fetch,
		emit:  emit,
		done:  len(keys) == 0,
	}
}

// Unbounded returns a cursor asking for pages of the same key, starting at firstPage,
// until a page comes back empty.
func Unbounded[K, T any](key K, firstPage int, fetch FetchFunc[K, T], emit EmitFunc[T]) *Cursor[K, T] {
	return &Cursor[K, T]{
		mode:  unbounded,
		keys:  []K{key},
		index: firstPage,
		fetch: fetch,
		emit:  emit,
	}
}

// Start produces the first batch eagerly, so that a consumer never receives a cursor
// with pending work and nothing shown. The returned error is the one of that first fetch.
func Start[K, T any](c *Cursor[K, T]) (*Cursor[K, T], error) {
	if c.batches > 0 || c.err != nil {
		return c, ErrExhausted
	}

	c.Advance()
	return c, c.err
}

// Advance fetches and emits the next batch. It reports whether more batches are available.
func (c *Cursor[K, T]) Advance() bool {
	if c.done {
		return false
	}

	key := c.keys[0]
	if c.mode == bounded {
		key = c.keys[c.index]
	}

	batch, err := c.fetch(key, c.index)
	if err != nil {
		c.err = fmt.Errorf("page %d: %w", c.index, err)
		c.done = true
		return false
	}

	c.index++

	if c.mode == unbounded && len(batch) == 0 {
		c.done = true
		return false
	}

	c.batches++
	if c.emit != nil {
		c.emit(c.index-1, batch)
	}

	if c.mode == bounded && c.index >= len(c.keys) {
		c.done = true
	}

	return !c.done
}

// More reports whether Advance may still produce a batch.
func (c *Cursor[K, T]) More() bool {
	return !c.done
}

// Err returns the fetch error that ended the cursor, if any.
func (c *Cursor[K, T]) Err() error {
	return c.err
}

// Batches returns the number of batches emitted so far.
func (c *Cursor[K, T]) Batches() int {
	return c.batches
}

// Index returns the index of the next batch.
func (c *Cursor[K, T]) Index() int {
	return c.index
}

// Drain advances the cursor until it is done and returns the error that ended it, if any.
func (c *Cursor[K, T]) Drain() error {
	for c.Advance() {
	}
	return c.err
}
