package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victormf2/serviceprovider/internal/examples/gin/infra"
	"github.com/victormf2/serviceprovider/internal/examples/gin/repositories"
)

type Vehicle struct {
	Plate string `json:"plate"`
}

func TestRepositories(t *testing.T) {
	t.Parallel()

	implementations := map[string]func(t *testing.T) repositories.Repository[repositories.User]{
		"memory": func(t *testing.T) repositories.Repository[repositories.User] {
			return repositories.NewMemoryRepository[repositories.User]()
		},
		"sqlite": func(t *testing.T) repositories.Repository[repositories.User] {
			config := infra.DefaultConfig()
			config.DBPath = filepath.Join(t.TempDir(), "test.db")
			db, err := infra.NewDB(config)
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })
			return repositories.NewSqlRepository[repositories.User](db)
		},
	}

	for name, newRepository := range implementations {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("should create and get", func(t *testing.T) {
				t.Parallel()

				repository := newRepository(t)
				id, err := repository.Create(&repositories.User{Name: "John Doe", Email: "john.doe@example.com"})
				require.NoError(t, err)

				user, err := repository.GetByID(id)
				require.NoError(t, err)
				assert.Equal(t, "John Doe", user.Name)
				assert.Equal(t, "john.doe@example.com", user.Email)
			})

			t.Run("should return nil for missing entities", func(t *testing.T) {
				t.Parallel()

				repository := newRepository(t)
				user, err := repository.GetByID(42)
				require.NoError(t, err)
				assert.Nil(t, user)
			})

			t.Run("should update and delete", func(t *testing.T) {
				t.Parallel()

				repository := newRepository(t)
				id, err := repository.Create(&repositories.User{Name: "John Doe"})
				require.NoError(t, err)

				require.NoError(t, repository.Update(id, &repositories.User{Name: "Jane Doe"}))
				user, err := repository.GetByID(id)
				require.NoError(t, err)
				assert.Equal(t, "Jane Doe", user.Name)

				require.NoError(t, repository.Delete(id))
				require.ErrorIs(t, repository.Delete(id), repositories.ErrNotFound)
				require.ErrorIs(t, repository.Update(id, &repositories.User{}), repositories.ErrNotFound)
			})
		})
	}
}

func TestSqlRepositoryKinds(t *testing.T) {
	t.Parallel()

	config := infra.DefaultConfig()
	config.DBPath = filepath.Join(t.TempDir(), "test.db")
	db, err := infra.NewDB(config)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := repositories.NewSqlRepository[repositories.User](db)
	vehicles := repositories.NewSqlRepository[Vehicle](db)

	id, err := vehicles.Create(&Vehicle{Plate: "ABC-1234"})
	require.NoError(t, err)

	user, err := users.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, user)

	vehicle, err := vehicles.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", vehicle.Plate)
}
