package serve

import (
	"github.com/bokysan/vspace/internal/args"
	"github.com/bokysan/vspace/internal/logging"
	"github.com/bokysan/vspace/internal/server"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type Command struct {
	Codec           args.CodecOptions `json:"codec"            group:"Codec Options"`
	Listen          []string          `json:"listen"           short:"L" long:"listen"           env:"VSPACE_LISTEN" env-delim:" " description:"Address to listen on. May be given multiple times." default:"127.0.0.1:8080"`
	ShutdownTimeout time.Duration     `json:"shutdown-timeout"           long:"shutdown-timeout" env:"VSPACE_SHUTDOWN_TIMEOUT"        description:"How long to wait for requests to finish on shutdown" default:"5s"`
	MaxBodySize     int64             `json:"max-body-size"              long:"max-body-size"    env:"VSPACE_MAX_BODY_SIZE"           description:"Maximum size of a request body, in bytes" default:"1048576"`

	servers []*server.HttpServer
}

func NewCommand() *Command {
	return &Command{}
}

// Startup starts all listeners. If any of them fails, the ones already started are stopped again.
func (s *Command) Startup() error {
	codec, err := s.Codec.NewCodec()
	if err != nil {
		return err
	}
	if len(s.Listen) == 0 {
		return errors.New("no listen address given")
	}

	logger := server.GetRequestLogger(args.General.LogFormat, args.General.LogColor)

	var errs error
	for _, address := range s.Listen {
		srv := server.NewHttpServer(address, codec)
		srv.ShutdownTimeout = s.ShutdownTimeout
		srv.MaxBodySize = s.MaxBodySize
		srv.RequestLogger = logger
		if err := srv.Startup(); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		s.servers = append(s.servers, srv)
	}

	if errs != nil {
		if err := s.Shutdown(); err != nil {
			errs = multierror.Append(errs, err)
		}
		return errs
	}
	return nil
}

func (s *Command) Shutdown() error {
	var errs error

	log.Infof("Graceful server shutdown...")
	for _, srv := range s.servers {
		log.Debugf("[Server] Shutting down %v", srv)
		if err := srv.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v", srv))
		}
	}
	s.servers = nil

	return errs
}

// failed returns a channel which receives the first error of any of the running servers
func (s *Command) failed() <-chan error {
	res := make(chan error, len(s.servers))
	for _, srv := range s.servers {
		go func(srv *server.HttpServer) {
			if err, ok := <-srv.Done(); ok && err != nil {
				res <- err
			}
		}(srv)
	}
	return res
}

func (s *Command) Execute(args []string) error {
	defer logging.SetupLogging()()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	if err := s.Startup(); err != nil {
		return err
	}

	select {
	case <-interrupted:
		return s.Shutdown()
	case err := <-s.failed():
		if shutdownErr := s.Shutdown(); shutdownErr != nil {
			err = multierror.Append(err, shutdownErr)
		}
		return err
	}
}
