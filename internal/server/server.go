package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"formwarp/internal/addon"
	"formwarp/internal/sim"
	"formwarp/internal/ui"
)

// Server fronts one shared world over SSH. Every session joins as a
// player; the menu addon is registered once at construction time.
type Server struct {
	addr        string
	hostKeyPath string
	tick        time.Duration
	cfg         addon.Config
	world       *sim.World
	logger      *log.Logger
}

func New(addr, hostKeyPath string, tick time.Duration) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "formwarp",
	})

	world := sim.New(logger)
	cfg := addon.DefaultConfig()
	addon.New(world, cfg).Register(world)

	return &Server{
		addr:        addr,
		hostKeyPath: hostKeyPath,
		tick:        tick,
		cfg:         cfg,
		world:       world,
		logger:      logger,
	}
}

func (s *Server) Start() error {
	srv, err := wish.NewServer(
		wish.WithAddress(s.addr),
		wish.WithHostKeyPath(s.hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	worldCtx, stopWorld := context.WithCancel(context.Background())
	defer stopWorld()
	go s.world.Run(worldCtx, s.tick)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	s.logger.Info("Starting SSH server", "address", s.addr, "tick", s.tick)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

func (s *Server) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	user := sshSession.User()
	if user == "" {
		user = "guest"
	}

	p := s.world.Join(user)
	p.SetHeldItem(s.cfg.TriggerItem)

	// The UI leaves the world on a clean quit; this covers dropped
	// connections. Leave is safe to call twice.
	go func() {
		<-sshSession.Context().Done()
		s.world.Leave(p)
	}()

	renderer := bubbletea.MakeRenderer(sshSession)
	model := ui.New(renderer, p)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}
