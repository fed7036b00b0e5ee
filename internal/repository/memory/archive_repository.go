package memory

import (
	"sync"

	"ai-memoire-be/pkg/memoire"

	"github.com/patrickmn/go-cache"
)

// ArchiveRepository stores the most recently generated text for each
// (theme, section) pair. A later write overwrites a prior one; entries
// are never destroyed for the process lifetime.
type ArchiveRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewArchiveRepository() *ArchiveRepository {
	return &ArchiveRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Save archives the generated text for a section under its theme.
func (r *ArchiveRepository) Save(theme string, section memoire.SectionID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections := r.loadSections(theme)
	sections[section] = text
	r.cache.Set(theme, sections, cache.NoExpiration)
}

// Get returns the archived text for one (theme, section) pair.
func (r *ArchiveRepository) Get(theme string, section memoire.SectionID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	text, ok := r.loadSections(theme)[section]
	return text, ok
}

// GetAll returns a copy of every archived section for a theme,
// possibly empty.
func (r *ArchiveRepository) GetAll(theme string) map[memoire.SectionID]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	sections := r.loadSections(theme)
	out := make(map[memoire.SectionID]string, len(sections))
	for section, text := range sections {
		out[section] = text
	}
	return out
}

// loadSections must be called with the mutex held.
func (r *ArchiveRepository) loadSections(theme string) map[memoire.SectionID]string {
	if x, found := r.cache.Get(theme); found {
		return x.(map[memoire.SectionID]string)
	}
	return make(map[memoire.SectionID]string)
}
