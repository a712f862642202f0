package memory

import (
	"context"
	"strings"

	"github.com/nguyentranbao-ct/team-chat/internal/models"
)

type SearchRepo struct {
	store *Store
}

func NewSearchRepository(store *Store) Searcher {
	return &SearchRepo{store: store}
}

// Search scans the whole in-memory corpus for messages whose body or author
// name contains the query, case-insensitively. Results come back in corpus
// iteration order: channels in insertion order, threads in creation order,
// messages in arrival order. Nothing is cached; every call recomputes.
func (r *SearchRepo) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var results []models.SearchResult
	for _, channelID := range s.channelOrder {
		cs := s.channels[channelID]
		for _, ts := range cs.threads {
			for _, msg := range ts.messages {
				if !strings.Contains(strings.ToLower(msg.Body), needle) &&
					!strings.Contains(strings.ToLower(msg.AuthorName), needle) {
					continue
				}
				results = append(results, models.SearchResult{
					Message: cloneMessage(*msg),
					Thread:  cloneThread(ts.thread),
					Channel: cloneChannel(cs.channel),
				})
			}
		}
	}
	return results, nil
}
