package infrastructure

import (
	"strconv"
	"sync/atomic"

	"forecastsync.app/internal/ports"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// ChangeNotifier fans "changed" signals out to topic subscribers.
// Each subscription holds at most one pending signal; Publish never blocks.
type ChangeNotifier struct {
	topics cmap.ConcurrentMap[string, cmap.ConcurrentMap[string, chan struct{}]]
	nextID atomic.Uint64
}

// NewChangeNotifier creates an empty notifier
func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{
		topics: cmap.New[cmap.ConcurrentMap[string, chan struct{}]](),
	}
}

var _ ports.ChangeNotifier = (*ChangeNotifier)(nil)

// Subscribe registers interest in topic. The returned function unsubscribes and may be called more than once.
func (n *ChangeNotifier) Subscribe(topic string) (<-chan struct{}, func()) {
	id := strconv.FormatUint(n.nextID.Add(1), 10)
	ch := make(chan struct{}, 1)

	n.topics.Upsert(topic, cmap.ConcurrentMap[string, chan struct{}]{},
		func(exist bool, current, _ cmap.ConcurrentMap[string, chan struct{}]) cmap.ConcurrentMap[string, chan struct{}] {
			if !exist {
				current = cmap.New[chan struct{}]()
			}
			current.Set(id, ch)
			return current
		})

	unsubscribe := func() {
		if subscribers, ok := n.topics.Get(topic); ok {
			subscribers.Remove(id)
			n.topics.RemoveCb(topic, func(_ string, v cmap.ConcurrentMap[string, chan struct{}], exists bool) bool {
				return exists && v.IsEmpty()
			})
		}
	}
	return ch, unsubscribe
}

// Publish signals every current subscriber of topic
func (n *ChangeNotifier) Publish(topic string) {
	subscribers, ok := n.topics.Get(topic)
	if !ok {
		return
	}
	for _, ch := range subscribers.Items() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount returns the number of live subscriptions for topic
func (n *ChangeNotifier) SubscriberCount(topic string) int {
	subscribers, ok := n.topics.Get(topic)
	if !ok {
		return 0
	}
	return subscribers.Count()
}
