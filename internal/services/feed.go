package services

import (
	"sort"
	"sync"

	"tasklists/internal/logging"
)

// ChangeFeed fans task changes out to the observers of the affected list.
// Delivery is synchronous: Publish returns once every observer has run.
type ChangeFeed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int64]map[int]Observer
}

// NewChangeFeed creates an empty feed.
func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[int64]map[int]Observer)}
}

// Subscribe registers obs for changes to listID. The returned cancel func
// is safe to call more than once.
func (f *ChangeFeed) Subscribe(listID int64, obs Observer) (cancel func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	if f.subs[listID] == nil {
		f.subs[listID] = make(map[int]Observer)
	}
	f.subs[listID][id] = obs
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs[listID], id)
			if len(f.subs[listID]) == 0 {
				delete(f.subs, listID)
			}
			f.mu.Unlock()
		})
	}
}

// Publish delivers c to every observer of c.ListID in subscription order.
// Observers run without the feed lock held, so they may subscribe or cancel.
func (f *ChangeFeed) Publish(c Change) {
	f.mu.RLock()
	subs := f.subs[c.ListID]
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	observers := make([]Observer, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		observers = append(observers, subs[id])
	}
	f.mu.RUnlock()

	logging.Debugf("feed: %s task %d in list %d to %d observer(s)", c.Kind, c.Task.ID, c.ListID, len(observers))
	for _, obs := range observers {
		obs(c)
	}
}

// SubscriberCount returns the number of observers of listID.
func (f *ChangeFeed) SubscriberCount(listID int64) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs[listID])
}
