package usecase

import (
	"math/rand"
	"sync"
	"time"
)

// maxOrderID — верхняя граница случайных идентификаторов заказов.
const maxOrderID = 100_000

// RandIDGenerator выдаёт случайные идентификаторы заказов в [0, 100000).
// Уникальность не гарантируется — заказы не персистентны.
type RandIDGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandIDGenerator() *RandIDGenerator {
	return &RandIDGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *RandIDGenerator) NextOrderID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.Int63n(maxOrderID)
}

// SequenceIDGenerator выдаёт монотонную последовательность идентификаторов.
// Используется там, где нужна детерминированность.
type SequenceIDGenerator struct {
	mu   sync.Mutex
	next int64
}

func NewSequenceIDGenerator(start int64) *SequenceIDGenerator {
	return &SequenceIDGenerator{next: start}
}

func (g *SequenceIDGenerator) NextOrderID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.next
	g.next++

	return id
}
