// Package server runs a fixed-size worker pool over a single shared UDP
// socket, decoding each datagram with the wire package and handing it to a
// Service for a response.
package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/haukened/dnswire/internal/dns/common/log"
	"github.com/haukened/dnswire/internal/dns/wire"
)

// maxDatagramSize matches the classic RFC 1035 UDP payload limit. EDNS0 and
// TCP fallback are out of scope: an oversize datagram is truncated by the
// kernel and will typically fail to parse, which the worker silently drops.
const maxDatagramSize = 512

// Service answers a single decoded query. Implementations MUST be safe to
// call concurrently from every worker; any mutable state inside a Service
// is that Service's own responsibility to synchronize.
//
// A false second return means "no reply": the worker sends nothing back and
// loops to its next receive.
type Service interface {
	Run(src *net.UDPAddr, query wire.Packet) (reply wire.Packet, ok bool)
}

// Server is a pre-bind configuration object. It is never runnable directly:
// Bind is the only way to obtain something that can Serve, so misuse
// (serving before a socket exists) cannot be expressed in this package's
// types.
type Server struct {
	threads int
	logger  log.Logger
}

// New returns a Server configured to run a single worker, the default pool
// size.
func New() *Server {
	return &Server{threads: 1, logger: log.GetLogger()}
}

// Threads sets the worker pool size. n < 1 is clamped to 1.
func (s *Server) Threads(n int) *Server {
	if n < 1 {
		n = 1
	}
	s.threads = n
	return s
}

// Logger overrides the logger used by the bound server and its workers.
func (s *Server) Logger(l log.Logger) *Server {
	s.logger = l
	return s
}

// Bind resolves and opens addr as a UDP socket, returning a BoundServer on
// success. The returned value, not s, is what can Serve.
func (s *Server) Bind(addr string) (*BoundServer, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("server: failed to resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("server: failed to bind %s: %w", addr, err)
	}
	logger := s.logger
	if logger == nil {
		logger = log.GetLogger()
	}
	return &BoundServer{
		conn:    conn,
		threads: s.threads,
		logger:  logger,
	}, nil
}

// BoundServer owns a live UDP socket and can Serve. It is produced only by
// Server.Bind.
type BoundServer struct {
	conn    *net.UDPConn
	threads int
	logger  log.Logger
}

// Addr returns the socket's local address.
func (b *BoundServer) Addr() net.Addr {
	return b.conn.LocalAddr()
}

// Close releases the underlying socket, unblocking every worker's pending
// receive with an I/O error.
func (b *BoundServer) Close() error {
	return b.conn.Close()
}

// Serve spawns the configured number of workers sharing this socket and
// blocks until every worker has exited. A worker exits only on a socket
// I/O error (including Close being called from elsewhere); Serve returns
// the first such error observed.
func (b *BoundServer) Serve(svc Service) error {
	var wg sync.WaitGroup
	errs := make(chan error, b.threads)

	for i := 0; i < b.threads; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			errs <- b.runWorker(worker, svc)
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// runWorker is the per-goroutine receive loop. Each worker owns its own
// fixed-size receive buffer and a logger pre-scoped with its worker ID;
// parse failures drop the datagram silently and the worker loops without
// sending a reply.
func (b *BoundServer) runWorker(id int, svc Service) error {
	wlog := b.logger.With(map[string]any{"worker": id})
	var buf [maxDatagramSize]byte

	for {
		n, src, err := b.conn.ReadFromUDP(buf[:])
		if err != nil {
			wlog.Error("worker receive failed", map[string]any{
				"error": err.Error(),
			})
			return fmt.Errorf("server: worker %d receive failed: %w", id, err)
		}

		query, err := wire.ParsePacket(buf[:n])
		if err != nil {
			wlog.Debug("dropped malformed datagram", map[string]any{
				"client": src.String(),
				"error":  err.Error(),
			})
			continue
		}

		reply, ok := svc.Run(src, query)
		if !ok {
			continue
		}

		if _, err := b.conn.WriteToUDP(reply.Serialize(), src); err != nil {
			wlog.Error("worker send failed", map[string]any{
				"client": src.String(),
				"error":  err.Error(),
			})
			return fmt.Errorf("server: worker %d send failed: %w", id, err)
		}
	}
}
