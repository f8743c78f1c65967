package server

import (
	"context"
	"github.com/bokysan/vspace/internal/version"
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// DefaultShutdownTimeout is used if no timeout is configured
const DefaultShutdownTimeout = 5 * time.Second

type HttpServer struct {
	Address         string        `json:"address"`
	ShutdownTimeout time.Duration `json:"shutdown-timeout"`
	MaxBodySize     int64         `json:"max-body-size"`

	// RequestLogger is added to the middleware chain, if set
	RequestLogger NextHandlerFunc

	codec    *vspace.Codec
	server   *http.Server
	listener net.Listener
	done     chan error
}

func NewHttpServer(address string, codec *vspace.Codec) *HttpServer {
	return &HttpServer{
		Address:         address,
		ShutdownTimeout: DefaultShutdownTimeout,
		codec:           codec,
	}
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return "http://" + ws.listener.Addr().String()
	}
	return "http://" + ws.Address
}

// Handler returns the router serving the API
func (ws *HttpServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
	)
	if ws.RequestLogger != nil {
		router.Use(ws.RequestLogger)
	}
	router.Use(
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	api := &api{
		codec:       ws.codec,
		maxBodySize: ws.MaxBodySize,
	}
	router.Post("/encode", api.encode)
	router.Post("/decode", api.decode)
	router.Get("/info", api.info)

	return router
}

// Startup starts listening in the background. Errors while binding to the address are returned immediately.
func (ws *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", ws.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	ws.listener = ln
	ws.server = &http.Server{
		Handler:           ws.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ws.done = make(chan error, 1)

	go func() {
		log.Infof("Starting %v HTTP server at %v", version.Summary(), ws)
		err := ws.server.Serve(ln)
		if err != nil && err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Server %v stopped: %v", ws, err)
			ws.done <- err
		}
		close(ws.done)
	}()

	return nil
}

// Done is closed when the server stops. If it stopped because of an error, the error is sent first.
func (ws *HttpServer) Done() <-chan error {
	return ws.done
}

func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	timeout := ws.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
