package handlers_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/victormf2/serviceprovider"
	"github.com/victormf2/serviceprovider/internal/examples/gin/handlers"
	"github.com/victormf2/serviceprovider/internal/examples/gin/mocks"
	"github.com/victormf2/serviceprovider/internal/examples/gin/repositories"
	"go.uber.org/mock/gomock"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	t.Run("Test user creation", func(t *testing.T) {
		t.Parallel()

		c := serviceprovider.NewContainer()
		mocks.RegisterTestServices(c)
		ctrl := gomock.NewController(t)

		// See how you don't need to provide every dependency for CreateUserHandler
		// as they are already provided by the Container.
		//
		// You just have to override those you want to control in your test.
		mockUserRepository := mocks.NewMockRepository[repositories.User](ctrl)
		serviceprovider.AddInstance[repositories.Repository[repositories.User]](c, mockUserRepository)
		mockUserRepository.EXPECT().Create(&repositories.User{
			Name:  "John Doe",
			Email: "john.doe@example.com",
		}).Return(int64(1), nil)

		handler, err := serviceprovider.Get[*handlers.CreateUserHandler](c)
		assert.NoError(t, err)

		input := &handlers.CreateUserInput{
			Name:  "John Doe",
			Email: "john.doe@example.com",
		}
		out, err := handler.Handle(input)
		assert.NoError(t, err)

		assert.Equal(t, &handlers.CreateUserOutput{ID: 1}, out)
	})

	t.Run("Test repository failure", func(t *testing.T) {
		t.Parallel()

		c := serviceprovider.NewContainer()
		mocks.RegisterTestServices(c)
		ctrl := gomock.NewController(t)

		failure := errors.New("disk full")
		mockUserRepository := mocks.NewMockRepository[repositories.User](ctrl)
		serviceprovider.AddInstance[repositories.Repository[repositories.User]](c, mockUserRepository)
		mockUserRepository.EXPECT().Create(gomock.Any()).Return(int64(0), failure)

		handler, err := serviceprovider.Get[*handlers.CreateUserHandler](c)
		assert.NoError(t, err)

		_, err = handler.Handle(&handlers.CreateUserInput{Name: "John Doe", Email: "john.doe@example.com"})
		assert.ErrorIs(t, err, failure)
	})
}
