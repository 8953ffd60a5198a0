package memory

import "github.com/secmon-lab/trendchat/pkg/domain/interfaces"

// New creates a new in-memory repository. It is the default backend when no
// external store is configured; contents vanish on process exit.
func New() interfaces.MemoryRepository {
	return &memoryRepository{
		users:    make(map[string][]*entryData),
		sessions: make(map[string][]*historyData),
	}
}
