package handlers

import (
	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider/internal/examples/gin/repositories"
)

type CreateUserHandler struct {
	logger         *logrus.Entry
	userRepository repositories.Repository[repositories.User]
}

func NewCreateUserHandler(logger *logrus.Entry, userRepository repositories.Repository[repositories.User]) *CreateUserHandler {
	return &CreateUserHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

type CreateUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateUserOutput struct {
	ID int64 `json:"id"`
}

func (h *CreateUserHandler) Handle(input *CreateUserInput) (*CreateUserOutput, error) {
	h.logger.Infof("Creating user")
	user := &repositories.User{
		Name:  input.Name,
		Email: input.Email,
	}
	id, err := h.userRepository.Create(user)
	if err != nil {
		h.logger.WithError(err).Errorf("Failed to create user")
		return nil, err
	}

	h.logger.WithField("user_id", id).Infof("User created")
	output := &CreateUserOutput{
		ID: id,
	}

	return output, nil
}
