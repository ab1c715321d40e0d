package server

import (
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nhdewitt/tiny-httpd/internal/request"
	"github.com/nhdewitt/tiny-httpd/internal/response"
	"github.com/sirupsen/logrus"
)

// Server accepts connections one at a time and answers each with a single
// response before accepting the next. A client that stalls on read or
// write stalls the whole server.
type Server struct {
	addr        Addr
	listener    net.Listener
	isListening atomic.Bool
	logger      logrus.FieldLogger
	bufferSize  int
	sleep       func(time.Duration)
}

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

type Option func(*Server)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithBufferSize changes how many bytes are read from each connection.
func WithBufferSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.bufferSize = n
		}
	}
}

// New validates addr and binds a TCP listener on it. It does not start
// accepting; call Run for that.
func New(addr string, opts ...Option) (*Server, error) {
	a, err := ParseAddr(addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:       a,
		logger:     logrus.StandardLogger(),
		bufferSize: request.BufferSize,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}

	listener, err := net.Listen("tcp", a.String())
	if err != nil {
		return nil, fmt.Errorf("error binding %s: %w", a, err)
	}
	s.listener = listener
	s.isListening.Store(true)

	return s, nil
}

// Addr is the bound address, which differs from the configured one when
// port 0 was requested.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

// Run serves connections until Close is called.
func (s *Server) Run(handler Handler) {
	s.logger.WithFields(logrus.Fields{
		"host": s.addr.Host,
		"port": s.addr.Port,
		"addr": s.Addr().String(),
	}).Info("Server listening")

	var delay time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			// Repeated failures (EMFILE and the like) back off up to a second.
			if delay == 0 {
				delay = minAcceptDelay
			} else {
				delay = min(delay*2, maxAcceptDelay)
			}
			s.logger.WithError(err).WithField("retry_in", delay).Error("Failed to accept connection")
			s.sleep(delay)
			continue
		}
		delay = 0

		s.handle(conn, handler)
	}
}

func (s *Server) handle(conn net.Conn, handler Handler) {
	defer conn.Close()

	logger := s.logger.WithFields(logrus.Fields{
		"conn_id": uuid.NewString(),
		"remote":  conn.RemoteAddr().String(),
	})

	var resp *response.Response
	req, err := request.RequestFromReaderSize(conn, s.bufferSize)
	switch {
	case err == nil:
		logger = logger.WithFields(logrus.Fields{
			"method": req.Method(),
			"path":   req.Path(),
		})
		logger.Debugf("Received a request: %s", req)
		resp = handler.HandleRequest(req)
	case errors.As(err, new(request.ParseError)):
		resp = handler.HandleBadRequest(err)
	default:
		logger.WithError(err).Error("Failed to read from connection")
		return
	}
	if resp == nil {
		resp = response.New(response.StatusInternalServerError, nil)
	}

	logger = logger.WithField("status", int(resp.Status))
	if err := resp.Send(conn); err != nil {
		logger.WithError(err).Error("Failed to send a response")
		return
	}
	logger.Info("Request served")
}
