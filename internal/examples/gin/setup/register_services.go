package setup

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider"
	"github.com/victormf2/serviceprovider/internal/examples/gin/handlers"
	"github.com/victormf2/serviceprovider/internal/examples/gin/infra"
	"github.com/victormf2/serviceprovider/internal/examples/gin/repositories"
)

func RegisterServices(c *serviceprovider.Container, config infra.Config) {
	serviceprovider.AddInstance(c, config)

	serviceprovider.AddSelf[*logrus.Entry](c)
	serviceprovider.Provide[*logrus.Entry](c, infra.NewLogger)

	serviceprovider.AddSelf[*sql.DB](c)
	serviceprovider.Provide[*sql.DB](c, infra.NewDB)

	registerRepositories(c, config.Storage)

	serviceprovider.AddSelf[*handlers.GetUserByIDHandler](c)
	serviceprovider.Provide[*handlers.GetUserByIDHandler](c, handlers.NewGetUserByIDHandler)
	serviceprovider.AddSelf[*handlers.CreateUserHandler](c)
	serviceprovider.Provide[*handlers.CreateUserHandler](c, handlers.NewCreateUserHandler)
	serviceprovider.AddSelf[*handlers.UpdateUserHandler](c)
	serviceprovider.Provide[*handlers.UpdateUserHandler](c, handlers.NewUpdateUserHandler)
	serviceprovider.AddSelf[*handlers.DeleteUserHandler](c)
	serviceprovider.Provide[*handlers.DeleteUserHandler](c, handlers.NewDeleteUserHandler)
}

// Every Repository[T] is specialized from the open registration. Each entity
// type still has to be declared, since Go can't instantiate generics at runtime.
func registerRepositories(c *serviceprovider.Container, storage string) {
	repository := serviceprovider.OpenTypeOf[repositories.Repository[any]]()

	switch storage {
	case infra.StorageMemory:
		c.AddOpen(repository, serviceprovider.OpenTypeOf[*repositories.MemoryRepository[any]]())
		serviceprovider.Provide[*repositories.MemoryRepository[repositories.User]](c, repositories.NewMemoryRepository[repositories.User])
	default:
		c.AddOpen(repository, serviceprovider.OpenTypeOf[*repositories.SqlRepository[any]]())
		serviceprovider.Provide[*repositories.SqlRepository[repositories.User]](c, repositories.NewSqlRepository[repositories.User])
	}
}
