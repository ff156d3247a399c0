// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/tga"
)

// Fingerprint returns a content hash of img covering its size and pixels.
// Images with equal fingerprints upload to identical textures. A nil img
// has fingerprint 0.
func Fingerprint(img *tga.Image) uint64 {
	if img == nil {
		return 0
	}
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:], uint32(img.Width()))  //nolint:gosec // 16-bit source
	binary.LittleEndian.PutUint32(dims[4:], uint32(img.Height())) //nolint:gosec // 16-bit source

	d := xxhash.New()
	_, _ = d.Write(dims[:]) // xxhash.Digest.Write never returns an error
	_, _ = d.Write(img.Pix())
	return d.Sum64()
}

// Cache uploads images through a Queue and skips uploads of content that
// was already uploaded. Safe for concurrent use.
type Cache struct {
	q Queue

	mu      sync.Mutex
	entries map[uint64]*Descriptor

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats holds cache counters.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// NewCache returns an empty Cache writing through q.
func NewCache(q Queue) *Cache {
	return &Cache{
		q:       q,
		entries: make(map[uint64]*Descriptor),
	}
}

// Upload returns the descriptor of a texture holding img's content,
// uploading it only if no identical content was uploaded before.
// reused reports whether an earlier upload was returned; the label of an
// earlier upload is kept.
func (c *Cache) Upload(label string, img *tga.Image) (desc *Descriptor, reused bool, err error) {
	if err := checkImage(img); err != nil {
		return nil, false, err
	}
	key := Fingerprint(img)

	// Held across the upload so the same content is never written twice.
	c.mu.Lock()
	defer c.mu.Unlock()

	if desc, ok := c.entries[key]; ok {
		c.hits.Add(1)
		return desc, true, nil
	}

	desc, err = Upload(c.q, label, img)
	if err != nil {
		return nil, false, err
	}
	c.entries[key] = desc
	c.misses.Add(1)
	return desc, false, nil
}

// Forget removes img's content from the cache so the next Upload writes it
// again. It reports whether an entry was removed.
func (c *Cache) Forget(img *tga.Image) bool {
	if img == nil {
		return false
	}
	key := Fingerprint(img)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Stats returns the current counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()
	return CacheStats{
		Entries: n,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
