// Package filestore implements a JSON-file-backed collection used for the
// product and post resources. The whole collection lives in memory and is
// rewritten to disk after every mutation, so the file always mirrors the
// cached state. A single mutex serializes all access; the file write goes
// through a temp file and rename so a crash mid-write cannot leave a
// half-written collection behind.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound is returned when no record with the requested id exists.
var ErrNotFound = errors.New("record not found")

// Record is any entity that can live in a Collection.
type Record interface {
	RecordID() int64
}

// Collection is a file-backed list of records of one entity type.
type Collection[T Record] struct {
	mu     sync.Mutex
	path   string
	items  []T
	lastID int64
}

// Open loads the collection at path. A missing file yields an empty
// collection; malformed content is reported as an error rather than
// aborting the process.
func Open[T Record](path string) (*Collection[T], error) {
	c := &Collection[T]{
		path:  path,
		items: make([]T, 0),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read collection file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		return nil, fmt.Errorf("malformed collection file %s: %w", path, err)
	}
	if c.items == nil {
		c.items = make([]T, 0)
	}
	for _, item := range c.items {
		if id := item.RecordID(); id > c.lastID {
			c.lastID = id
		}
	}
	return c, nil
}

// NextID hands out a millisecond-timestamp identifier, bumped past the
// last issued id so rapid successive creates never collide.
func (c *Collection[T]) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

// All returns a copy of the collection in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the record with the given id, if present.
func (c *Collection[T]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends a record and persists the collection.
func (c *Collection[T]) Insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	if err := c.save(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return err
	}
	return nil
}

// Replace overwrites the record with the given id and persists the
// collection. Returns ErrNotFound if no such record exists.
func (c *Collection[T]) Replace(id int64, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.RecordID() == id {
			old := c.items[i]
			c.items[i] = item
			if err := c.save(); err != nil {
				c.items[i] = old
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the record with the given id and persists the collection.
// An absent id is not an error; the file is rewritten either way.
func (c *Collection[T]) Remove(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	old := c.items
	c.items = kept
	if err := c.save(); err != nil {
		c.items = old
		return err
	}
	return nil
}

// save rewrites the backing file from the in-memory collection. Callers
// must hold c.mu.
func (c *Collection[T]) save() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection file %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close collection file %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection file %s: %w", c.path, err)
	}
	return nil
}
