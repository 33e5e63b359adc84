// Package document keeps the latest scan of each open text document.
//
// Each document has exactly one Snapshot. An edit never patches the cached
// match list; Update rescans the full text and swaps in a new Snapshot.
// Snapshots are never modified after they are published, so readers may use
// them without holding any lock.
package document

import (
	"sync"
	"time"

	"github.com/ironsheep/color-notation-mcp/internal/scanner"
)

// Snapshot is the scan of one version of a document.
type Snapshot struct {
	URI       string
	Version   int
	Text      string
	Matches   []scanner.Match
	ScannedAt time.Time
}

// CodeActions returns the quick-fixes for the selection [start, end] of the
// snapshot's text.
func (s *Snapshot) CodeActions(start, end int) []scanner.CodeAction {
	return scanner.CodeActions(s.Text, s.Matches, start, end)
}

// Cache holds one Snapshot per document URI.
//
// Cache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	docs := document.NewCache()
//	snap, _ := docs.Update("file:///site.css", 1, text)
//	actions := snap.CodeActions(cursor, cursor)
//	docs.Evict("file:///site.css") // when the editor closes the file
type Cache struct {
	mu   sync.RWMutex
	docs map[string]*Snapshot
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		docs: make(map[string]*Snapshot),
	}
}

// Update scans text and replaces the snapshot stored for uri.
//
// Versions only move forward: if the cached snapshot has a higher version
// than the one given, the cache is left alone and Update returns the cached
// snapshot with false. Equal versions replace the snapshot.
func (c *Cache) Update(uri string, version int, text string) (*Snapshot, bool) {
	// Scan outside the lock; it only depends on text.
	snap := &Snapshot{
		URI:       uri,
		Version:   version,
		Text:      text,
		Matches:   scanner.Scan(text),
		ScannedAt: time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.docs[uri]; ok && cur.Version > version {
		return cur, false
	}
	c.docs[uri] = snap
	return snap, true
}

// Get returns the current snapshot for uri.
func (c *Cache) Get(uri string) (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.docs[uri]
	return snap, ok
}

// Evict removes the snapshot for uri. Unknown URIs are ignored.
func (c *Cache) Evict(uri string) {
	c.mu.Lock()
	delete(c.docs, uri)
	c.mu.Unlock()
}

// Clear removes every snapshot.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.docs = make(map[string]*Snapshot)
	c.mu.Unlock()
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
