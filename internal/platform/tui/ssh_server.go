package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// shutdownGrace bounds how long Serve waits for sessions to end.
const shutdownGrace = 10 * time.Second

// SSHServerConfig configures Serve.
type SSHServerConfig struct {
	Address     string        // host:port
	HostKeyPath string        // generated on first start when missing; "" means ~/.arcade/host_key
	IdleTimeout time.Duration // 0 disables
	TickRate    int           // 0 means core.DefaultTickRate
}

// DefaultSSHServerConfig listens on :23234 with a 30 minute idle timeout.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultTickRate,
	}
}

// SSHServer serves one menu session per SSH connection. All sessions
// share the store, so the scoreboard is per server. Sound is never
// played for remote sessions.
type SSHServer struct {
	cfg    SSHServerConfig
	store  *storage.Store
	logger *log.Logger
	srv    *ssh.Server
}

// NewSSHServer prepares the host key and the wish middleware chain.
// store and logger may be nil. The caller keeps ownership of store.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "flappy-ssh"})
	}
	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, store: store, logger: logger}
	// wish runs the last middleware first
	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and creates its directory.
func hostKeyPath(p string) (string, error) {
	if p == "" {
		p = "~/.arcade/host_key"
	}
	p, err := storage.ExpandPath(p)
	if err != nil {
		return "", fmt.Errorf("tui: host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key dir: %w", err)
	}
	return p, nil
}

// newSession builds the program for one connection. activeterm has
// already rejected sessions without a PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	opts := Options{
		Store:    s.store,
		Logger:   s.logger.With("user", sess.User()),
		Renderer: bubbletea.MakeRenderer(sess),
	}
	return NewSessionModel(cfg, opts), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		l.Info("session started")
		next(sess)
		l.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// Serve accepts connections until ctx is cancelled, then shuts down,
// giving open sessions shutdownGrace to finish.
func (s *SSHServer) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("tui: listen %s: %w", s.cfg.Address, err)
	}
	s.logger.Info("listening", "address", ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("tui: shutdown: %w", err)
	}
	return nil
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
