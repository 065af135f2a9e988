package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/BKSpurgeon/rinku/tmpstore"
	"github.com/BKSpurgeon/rinku/util"
)

const (
	// api routes
	PingURL    = "/ping"
	LinkifyURL = "/linkify"
)

var (
	// api errors
	ErrInvalidParams = errors.New("invalid request parameters")
	ErrInvalidMode   = errors.New("invalid linking mode (possible values are all, urls, email_addresses)")
)

type Service struct {
	config util.Config
	store  tmpstore.Store
	server *http.Server
}

// Returns new service instance with provided config and cache store.
func NewService(config util.Config, store tmpstore.Store) (*Service, error) {
	service := &Service{
		config: config,
		store:  store,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time spent writing the response (no forever hanging clients).
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
