// Package id generates identifiers for events and recorded entries.
package id

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	Generate() string
}

var (
	generatorLock sync.Mutex
	generator     IDGenerator = NewIDGenerator()
)

// UseGenerator replaces the generator used by Generate.
func UseGenerator(g IDGenerator) {
	generatorLock.Lock()
	generator = g
	generatorLock.Unlock()
}

// Generate returns a new ID from the generator currently in use.
func Generate() string {
	generatorLock.Lock()
	g := generator
	generatorLock.Unlock()

	return g.Generate()
}

// NewIDGenerator returns a generator that produces "1", "2", "3", ...
func NewIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewXIDGenerator returns a generator that produces globally unique IDs.
// Recordings that are merged across sessions use it.
func NewXIDGenerator() IDGenerator {
	return xidGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	id := strconv.FormatUint(idNumber, 10)

	return id
}

type xidGenerator struct{}

func (xidGenerator) Generate() string {
	return xid.New().String()
}
