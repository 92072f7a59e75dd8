// Package ports defines the interfaces (contracts) that adapters must
// implement. These are the boundaries of the hexagonal architecture: the
// CLI depends only on these interfaces, never on concrete implementations,
// and the scoring engine itself depends on neither.
package ports

// ResultCache stores serialized analysis results keyed by content hash.
// The engine is stateless; caching is purely an adapter concern used by
// batch and watch modes to skip rescoring unchanged text.
//
// Crash safety: Put must be transactional. A crash mid-write must not
// corrupt previously committed entries.
type ResultCache interface {
	// Get retrieves a cached result. The second return is false on a miss;
	// a miss is not an error.
	Get(key string) ([]byte, bool, error)

	// Put stores a result, overwriting any prior value for the key.
	Put(key string, value []byte) error

	// Close releases the underlying store.
	Close() error
}

// Watcher monitors a file for changes and fires a callback per change.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute
	// path of the changed file. Events are debounced — editors often
	// trigger multiple writes per save.
	Watch(path string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources.
	// Safe to call multiple times.
	Stop() error
}
