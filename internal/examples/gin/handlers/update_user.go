package handlers

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider/internal/examples/gin/repositories"
)

type UpdateUserHandler struct {
	logger         *logrus.Entry
	userRepository repositories.Repository[repositories.User]
}

func NewUpdateUserHandler(logger *logrus.Entry, userRepository repositories.Repository[repositories.User]) *UpdateUserHandler {
	return &UpdateUserHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

type UpdateUserInput struct {
	ID    int64  `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserOutput struct{}

func (h *UpdateUserHandler) Handle(input *UpdateUserInput) (*UpdateUserOutput, error) {
	h.logger.WithField("user_id", input.ID).Infof("Updating user")
	user := &repositories.User{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
	}
	err := h.userRepository.Update(input.ID, user)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		h.logger.WithError(err).Errorf("Failed to update user")
		return nil, err
	}

	h.logger.Infof("User updated")
	output := &UpdateUserOutput{}

	return output, nil
}
