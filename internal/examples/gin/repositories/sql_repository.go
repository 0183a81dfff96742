package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// SqlRepository stores every entity as a JSON document in the documents
// table, tagged with the name of T.
type SqlRepository[T any] struct {
	db   *sql.DB
	kind string
}

func NewSqlRepository[T any](db *sql.DB) *SqlRepository[T] {
	return &SqlRepository[T]{
		db:   db,
		kind: reflect.TypeFor[T]().String(),
	}
}

func (r *SqlRepository[T]) Create(entity *T) (int64, error) {
	body, err := json.Marshal(entity)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", r.kind, err)
	}

	query := `INSERT INTO documents (kind, body) VALUES (?, ?)`
	result, err := r.db.Exec(query, r.kind, string(body))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *SqlRepository[T]) GetByID(id int64) (*T, error) {
	query := `SELECT body FROM documents WHERE kind = ? AND id = ?`
	row := r.db.QueryRow(query, r.kind, id)

	var body string
	err := row.Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entity T
	if err := json.Unmarshal([]byte(body), &entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s %d: %w", r.kind, id, err)
	}
	return &entity, nil
}

func (r *SqlRepository[T]) Update(id int64, entity *T) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.kind, err)
	}

	query := `UPDATE documents SET body = ? WHERE kind = ? AND id = ?`
	result, err := r.db.Exec(query, string(body), r.kind, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *SqlRepository[T]) Delete(id int64) error {
	query := `DELETE FROM documents WHERE kind = ? AND id = ?`
	result, err := r.db.Exec(query, r.kind, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
