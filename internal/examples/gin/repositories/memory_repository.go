package repositories

import "sync"

// MemoryRepository keeps entities in a map. Entities are copied on the way
// in and on the way out.
type MemoryRepository[T any] struct {
	mu       sync.Mutex
	lastID   int64
	entities map[int64]T
}

func NewMemoryRepository[T any]() *MemoryRepository[T] {
	return &MemoryRepository[T]{
		entities: map[int64]T{},
	}
}

func (r *MemoryRepository[T]) Create(entity *T) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	r.entities[r.lastID] = *entity
	return r.lastID, nil
}

func (r *MemoryRepository[T]) GetByID(id int64) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, found := r.entities[id]
	if !found {
		return nil, nil
	}
	return &entity, nil
}

func (r *MemoryRepository[T]) Update(id int64, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.entities[id]; !found {
		return ErrNotFound
	}
	r.entities[id] = *entity
	return nil
}

func (r *MemoryRepository[T]) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.entities[id]; !found {
		return ErrNotFound
	}
	delete(r.entities, id)
	return nil
}
