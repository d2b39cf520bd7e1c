package boltdb

import (
	"sync"

	"github.com/iudanet/ledgersync/internal/models"
)

// notifier рассылает сигналы об изменениях коллекции подписчикам.
// Канал подписчика имеет ёмкость 1, лишние сигналы схлопываются.
type notifier struct {
	subs map[models.EntityType]map[uint64]chan struct{}
	mu   sync.Mutex
	next uint64
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[models.EntityType]map[uint64]chan struct{})}
}

func (n *notifier) subscribe(entity models.EntityType) (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++

	ch := make(chan struct{}, 1)
	if n.subs[entity] == nil {
		n.subs[entity] = make(map[uint64]chan struct{})
	}
	n.subs[entity][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs[entity], id)
		})
	}
	return ch, cancel
}

func (n *notifier) notify(entity models.EntityType) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs[entity] {
		select {
		case ch <- struct{}{}:
		default:
			// сигнал уже ожидает обработки
		}
	}
}
