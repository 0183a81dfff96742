package mocks

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider"
	"github.com/victormf2/serviceprovider/internal/examples/gin/infra"
	"github.com/victormf2/serviceprovider/internal/examples/gin/setup"
)

// RegisterTestServices registers the application services on in memory
// storage, with a logger that writes nowhere.
func RegisterTestServices(c *serviceprovider.Container) {
	config := infra.DefaultConfig()
	config.Storage = infra.StorageMemory
	setup.RegisterServices(c, config)

	logger := logrus.New()
	logger.Out = io.Discard
	serviceprovider.AddInstance(c, logrus.NewEntry(logger))
}
