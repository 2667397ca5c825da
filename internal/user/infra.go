package user

import (
	"context"
	"sync"
)

// in-memory registry, lost on restart
type infra struct {
	mu    sync.RWMutex
	users map[string]string
}

func NewInfra(seedUser, seedPassword string) Infra {
	users := make(map[string]string)
	if seedUser != "" {
		users[seedUser] = seedPassword
	}
	return &infra{users: users}
}

func (i *infra) GetPassword(ctx context.Context, username string) (string, bool, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	p, ok := i.users[username]
	return p, ok, nil
}

func (i *infra) Create(ctx context.Context, username, password string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.users[username]; ok {
		return ErrDuplicateUser
	}
	i.users[username] = password
	return nil
}
