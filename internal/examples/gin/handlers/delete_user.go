package handlers

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider/internal/examples/gin/repositories"
)

type DeleteUserHandler struct {
	logger         *logrus.Entry
	userRepository repositories.Repository[repositories.User]
}

func NewDeleteUserHandler(logger *logrus.Entry, userRepository repositories.Repository[repositories.User]) *DeleteUserHandler {
	return &DeleteUserHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

type DeleteUserInput struct {
	ID int64 `uri:"id" binding:"required"`
}

type DeleteUserOutput struct{}

func (h *DeleteUserHandler) Handle(input *DeleteUserInput) (*DeleteUserOutput, error) {
	h.logger.WithField("user_id", input.ID).Infof("Deleting user")

	err := h.userRepository.Delete(input.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		h.logger.WithError(err).Errorf("Failed to delete user")
		return nil, err
	}

	h.logger.Infof("User deleted")
	output := &DeleteUserOutput{}

	return output, nil
}
