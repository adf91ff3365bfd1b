package services

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

// Notifier tells other processes that a document changed.
type Notifier interface {
	Notify(ctx context.Context, docID string) error
}

// Broker fans committed snapshots out to in-process subscribers. Every
// subscriber gets its own copy.
type Broker struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(*domain.Snapshot)
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]func(*domain.Snapshot))}
}

// Subscribe registers fn and returns a func that removes it. Callbacks run on
// the publisher's goroutine and should return quickly.
func (b *Broker) Subscribe(fn func(*domain.Snapshot)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *Broker) Publish(snap *domain.Snapshot) {
	b.mu.RLock()
	subs := make([]func(*domain.Snapshot), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(snap.Clone())
	}
}

func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
