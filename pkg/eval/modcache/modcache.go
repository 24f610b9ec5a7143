// Package modcache caches directory-level `(use dir)` module loads within
// one evaluation run, so a repeated use of the same directory (e.g. inside
// a for_each body) does not re-lex/re-parse its files.
//
// The cache key and builder shape are adapted from the teacher repo's
// pkg/derivation's content-addressed hashing idiom (computeHash /
// computeStorePath via crypto/sha256) and its DerivationBuilder fluent
// builder: here the "inputs" being hashed are a directory's .tan file set
// (names, sizes, modification times) rather than a derivation's build
// inputs, and the "store path" is simply a cache key.
package modcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tan-lang/tan/internal/lang"
	"github.com/tan-lang/tan/pkg/parser"
)

// Entry is one cached module load: the parsed top-level forms of every
// .tan file in a directory, concatenated in file-name order.
type Entry struct {
	Forms []lang.Ann
}

// Cache maps a directory's content hash to its parsed forms. Zero value is
// not usable; create one with New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

func (c *Cache) get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]

	return e, ok
}

func (c *Cache) put(key string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = e
}

// Builder loads one directory's .tan modules, consulting and populating a
// Cache. Build with NewModuleSet, then call Load.
type Builder struct {
	dir   string
	cache *Cache
}

// NewModuleSet starts a module load for dir, backed by cache.
func NewModuleSet(dir string, cache *Cache) *Builder {
	return &Builder{dir: dir, cache: cache}
}

// Load returns dir's parsed top-level forms, from cache if an identical
// file set was already loaded this run.
func (b *Builder) Load() ([]lang.Ann, error) {
	files, err := tanFiles(b.dir)
	if err != nil {
		return nil, err
	}

	key, err := computeKey(b.dir, files)
	if err != nil {
		return nil, err
	}

	if entry, ok := b.cache.get(key); ok {
		return entry.Forms, nil
	}

	forms, err := parseAll(b.dir, files)
	if err != nil {
		return nil, err
	}

	b.cache.put(key, Entry{Forms: forms})

	return forms, nil
}

func tanFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".tan") {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)

	return files, nil
}

// computeKey hashes the directory's file set (name, size, mtime) to a
// stable cache key, mirroring computeHash's "join sorted parts, sha256"
// shape.
func computeKey(dir string, files []string) (string, error) {
	parts := make([]string, 0, len(files))

	for _, name := range files {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}

		parts = append(parts, fmt.Sprintf("%s:%d:%d", name, info.Size(), info.ModTime().UnixNano()))
	}

	content := dir + "\n" + strings.Join(parts, "\n")
	hash := sha256.Sum256([]byte(content))

	return hex.EncodeToString(hash[:]), nil
}

func parseAll(dir string, files []string) ([]lang.Ann, error) {
	var forms []lang.Ann

	for _, name := range files {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		parsed, err := parser.Parse(string(src))
		if err != nil {
			return nil, err
		}

		forms = append(forms, parsed...)
	}

	return forms, nil
}
