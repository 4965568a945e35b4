package memory

import (
	"sync"
	"time"

	"ai-notes-hub/internal/entity"

	"github.com/patrickmn/go-cache"
)

const allNotesKey = "notes:all"

// NoteListCache keeps the newest-first note listing in process memory.
// Writers must call Invalidate after creating a note. Readers take a
// Version before querying the store and pass it to Save, so a listing read
// before an Invalidate is never stored after it.
type NoteListCache struct {
	cache *cache.Cache

	mu      sync.Mutex
	version uint64
}

func NewNoteListCache(ttl time.Duration) *NoteListCache {
	// Purge expired items at twice the TTL
	c := cache.New(ttl, 2*ttl)
	return &NoteListCache{
		cache: c,
	}
}

func (r *NoteListCache) Version() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

// Save stores notes if no Invalidate happened since version was taken.
func (r *NoteListCache) Save(notes []*entity.Note, version uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if version != r.version {
		return false
	}
	r.cache.Set(allNotesKey, notes, cache.DefaultExpiration)
	return true
}

func (r *NoteListCache) Get() ([]*entity.Note, bool) {
	if x, found := r.cache.Get(allNotesKey); found {
		return x.([]*entity.Note), true
	}
	return nil, false
}

func (r *NoteListCache) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.version++
	r.cache.Delete(allNotesKey)
}
