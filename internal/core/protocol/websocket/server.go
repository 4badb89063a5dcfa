package websocket

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
	"github.com/zeusync/actorproxy/internal/core/protocol"
)

const shutdownGrace = 5 * time.Second

// Server exposes a protocol.Host to bridge clients. Every connection is a
// session; requests on one session are answered in order.
type Server struct {
	config Config
	host   protocol.Host
	codec  protocol.Codec
	events bus.EventBus
	logger log.Log

	upgrader websocket.Upgrader
	sessions *xsync.MapOf[string, *session]
	running  atomic.Bool

	frames   atomic.Uint64
	rejected atomic.Uint64
}

type session struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
	opened  time.Time
}

// NewServer builds a server for host. events may be nil.
func NewServer(config Config, host protocol.Host, events bus.EventBus, logger log.Log) *Server {
	config = config.withDefaults()
	if logger == nil {
		logger = log.NewNop()
	}
	return &Server{
		config: config,
		host:   host,
		codec:  protocol.JSONCodec{},
		events: events,
		logger: logger.With(log.String("component", "bridge-server")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// the bridge is meant for local controllers, not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
		sessions: xsync.NewMapOf[string, *session](),
	}
}

// Handler serves the bridge endpoint and a health probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleBridge)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// ListenAndServe listens on config.Listen and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.config.Listen)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// HTTP server down and closes every session.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("bridge server is already running")
	}
	defer s.running.Store(false)

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.config.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("bridge listening", log.String("address", ln.Addr().String()), log.String("path", s.config.Path))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "bridge server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.closeSessions()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to shutdown HTTP server")
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info("bridge stopped")
	return err
}

// Sessions is the number of connected clients.
func (s *Server) Sessions() int { return s.sessions.Size() }

// Stats reports frames answered and frames rejected.
func (s *Server) Stats() (frames, rejected uint64) {
	return s.frames.Load(), s.rejected.Load()
}

func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", log.Error(err))
		return
	}
	conn.SetReadLimit(s.config.MaxFrameSize)

	sess := &session{id: uuid.NewString(), conn: conn, opened: time.Now()}
	s.sessions.Store(sess.id, sess)
	s.publish(bus.TypeSessionOpened, sess, map[string]any{"remote": conn.RemoteAddr().String()})
	s.logger.Info("bridge session opened", log.String("session", sess.id), log.String("remote", conn.RemoteAddr().String()))

	defer func() {
		s.sessions.Delete(sess.id)
		_ = conn.Close()
		s.publish(bus.TypeSessionClosed, sess, map[string]any{"duration": time.Since(sess.opened).String()})
		s.logger.Info("bridge session closed", log.String("session", sess.id))
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("bridge session read failed", log.String("session", sess.id), log.Error(err))
			}
			return
		}
		if err = s.serveFrame(sess, data); err != nil {
			s.logger.Warn("bridge session write failed", log.String("session", sess.id), log.Error(err))
			return
		}
	}
}

func (s *Server) serveFrame(sess *session, data []byte) error {
	s.frames.Add(1)
	req, err := s.codec.DecodeRequest(data)
	var resp protocol.Response
	if err != nil {
		resp = protocol.Response{Err: err.Error()}
	} else {
		resp = protocol.Dispatch(s.host, req)
	}
	if resp.Err != "" {
		s.rejected.Add(1)
		s.logger.Debug("bridge frame rejected", log.String("session", sess.id), log.String("reason", resp.Err))
	}
	return s.write(sess, resp)
}

func (s *Server) write(sess *session, resp protocol.Response) error {
	data, err := s.codec.EncodeResponse(resp)
	if err != nil {
		return errors.Wrap(err, "failed to encode response")
	}
	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	_ = sess.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err = sess.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return errors.Wrap(err, "failed to write response")
	}
	return nil
}

func (s *Server) closeSessions() {
	s.sessions.Range(func(_ string, sess *session) bool {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "bridge shutting down")
		_ = sess.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = sess.conn.Close()
		return true
	})
}

func (s *Server) publish(typ string, sess *session, data map[string]any) {
	if s.events == nil {
		return
	}
	data["session"] = sess.id
	if err := s.events.Publish(bus.NewEvent(typ, "bridge", 0, data)); err != nil {
		s.logger.Warn("event handler failed", log.String("type", typ), log.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	frames, rejected := s.Stats()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, `{"status":"healthy","sessions":%d,"frames":%d,"rejected":%d}`,
		s.Sessions(), frames, rejected)
}
