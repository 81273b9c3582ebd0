package main

import (
	"net/http"
	"os"

	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/cmd"
	"github.com/estrys/fediprofile/internal"
	"github.com/estrys/fediprofile/internal/config"
	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/logger"
)

func main() {
	appContext, _, err := cmd.Bootstrap()
	if err != nil {
		panic(err)
	}
	log := dic.GetService[logger.Logger]()
	conf := dic.GetService[config.Config]()

	err = internal.StartServer(appContext, internal.Config{Address: conf.Address})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("server failed")
		os.Exit(1)
	}
	log.Info("http server stopped")
	os.Exit(0)
}
