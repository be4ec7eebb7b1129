package main

import (
	"strconv"
	"sync"

	"github.com/rdppathak/ferrox"
)

// userStore is the demo application's in-memory state. Handlers run
// concurrently, so any state they share needs its own locking.
type userStore struct {
	mu     sync.RWMutex
	nextID int
	users  map[string]map[string]any
}

func newUserStore() *userStore {
	return &userStore{
		nextID: 1,
		users:  make(map[string]map[string]any),
	}
}

// registerRoutes declares the demo API on the given collector.
func registerRoutes(c *ferrox.Collector) {
	store := newUserStore()

	c.Get("/", func(path, query, body ferrox.Value) ferrox.Value {
		return map[string]any{"service": "ferrox demo", "version": version}
	})

	c.Get("/users", func(path, query, body ferrox.Value) ferrox.Value {
		store.mu.RLock()
		defer store.mu.RUnlock()

		list := make([]any, 0, len(store.users))
		for _, u := range store.users {
			list = append(list, u)
		}
		return map[string]any{"users": list, "count": len(list)}
	})

	c.Get("/users/new", func(path, query, body ferrox.Value) ferrox.Value {
		return map[string]any{"form": map[string]any{"name": "", "email": ""}}
	})

	c.Get("/users/:id", func(path, query, body ferrox.Value) ferrox.Value {
		id := path.(map[string]any)["id"].(string)

		store.mu.RLock()
		defer store.mu.RUnlock()

		user, ok := store.users[id]
		if !ok {
			return map[string]any{"found": false, "id": id}
		}
		return map[string]any{"found": true, "user": user}
	})

	c.Post("/users", func(path, query, body ferrox.Value) ferrox.Value {
		store.mu.Lock()
		defer store.mu.Unlock()

		id := strconv.Itoa(store.nextID)
		store.nextID++

		user := map[string]any{"id": id}
		if fields, ok := body.(map[string]any); ok {
			for k, v := range fields {
				user[k] = v
			}
			user["id"] = id
		}
		store.users[id] = user
		return map[string]any{"created": true, "user": user}
	})

	c.Put("/users/:id", func(path, query, body ferrox.Value) ferrox.Value {
		id := path.(map[string]any)["id"].(string)

		store.mu.Lock()
		defer store.mu.Unlock()

		user, ok := store.users[id]
		if !ok {
			return map[string]any{"updated": false, "id": id}
		}
		if fields, okBody := body.(map[string]any); okBody {
			for k, v := range fields {
				user[k] = v
			}
			user["id"] = id
		}
		return map[string]any{"updated": true, "user": user}
	})

	c.Delete("/users/:id", func(path, query, body ferrox.Value) ferrox.Value {
		id := path.(map[string]any)["id"].(string)

		store.mu.Lock()
		defer store.mu.Unlock()

		_, ok := store.users[id]
		delete(store.users, id)
		return map[string]any{"deleted": ok, "id": id}
	})
}
