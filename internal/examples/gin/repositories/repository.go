//go:generate mockgen -source=repository.go -destination=../mocks/repository.go -package=mocks
package repositories

import "errors"

// Repository stores entities of type T by id.
//
// The container is registered with the open form of Repository, so any
// Repository[T] is specialized to the storage chosen at startup.
type Repository[T any] interface {
	Create(entity *T) (int64, error)
	// Returns nil, nil when there is no entity with the id.
	GetByID(id int64) (*T, error)
	Update(id int64, entity *T) error
	Delete(id int64) error
}

var ErrNotFound = errors.New("entity not found")
