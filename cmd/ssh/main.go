package main

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/pkg/errors"

	"github.com/tomz197/wheel/internal/config"
	"github.com/tomz197/wheel/internal/draw"
	"github.com/tomz197/wheel/internal/loop"
	gameconfig "github.com/tomz197/wheel/internal/loop/config"
	"github.com/tomz197/wheel/internal/sprite"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ssh",
	})

	if err := run(logger); err != nil {
		logger.Fatal("ssh server", "err", err)
	}
}

func run(logger *log.Logger) error {
	debug, err := config.GetEnvBool("WHEEL_DEBUG", false)
	if err != nil {
		return err
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	spritePath := config.GetEnv("WHEEL_SPRITE", "")
	seed, err := config.GetEnvInt64("WHEEL_SEED", time.Now().UnixNano())
	if err != nil {
		return err
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "seed", seed)

	img, err := sprite.Load(spritePath, gameconfig.SpriteScaleDivisor)
	if err != nil {
		return errors.Wrap(err, "load wheel sprite")
	}

	games := &sessionGames{
		sprite: img,
		seed:   seed,
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return errors.Wrap(err, "create server")
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-done:
	case err := <-serveErr:
		return errors.Wrap(err, "serve")
	}
	logger.Info("Shutting down server...", "activeSessions", games.active.Load())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

// sessionGames starts an independent game for every SSH session.
type sessionGames struct {
	sprite image.Image
	seed   int64
	logger *log.Logger

	nextID atomic.Int64
	active atomic.Int64
}

// sessionRand derives a per-session RNG so sessions never share random state.
func (g *sessionGames) sessionRand(id int64) *rand.Rand {
	return rand.New(rand.NewSource(g.seed + id*7919))
}

// middleware handles SSH sessions and runs one game per session.
func (g *sessionGames) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id := g.nextID.Add(1)
		g.active.Add(1)
		defer g.active.Add(-1)

		logger := g.logger.With("session", id, "user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		game := loop.NewGame(loop.GameOptions{
			Rand:   g.sessionRand(id),
			Sprite: g.sprite,
			Logger: logger,
		})
		if err := game.Run(bufio.NewReader(sess), sess, sizeTracker.getSize); err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended", "score", game.State.Score)
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
