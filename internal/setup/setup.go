package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/itchan-dev/threadboard/internal/handler"
	"github.com/itchan-dev/threadboard/internal/service"
	"github.com/itchan-dev/threadboard/internal/storage/memory"
	"github.com/itchan-dev/threadboard/internal/templates"
	"github.com/itchan-dev/threadboard/shared/config"
	"github.com/itchan-dev/threadboard/shared/middleware/ratelimiter"
	"github.com/itchan-dev/threadboard/shared/validation"
)

type Dependencies struct {
	Config        *config.Config
	Handler       *handler.Handler
	Sessions      *memory.Sessions
	SubmitLimiter *ratelimiter.UserRateLimiter
	CancelFunc    context.CancelFunc
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	// Create cancellable context for background tasks
	ctx, cancel := context.WithCancel(context.Background())

	tmpls, err := templates.Load(templates.FS)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	forum := cfg.Public.Forum
	sessions := memory.NewSessions(forum.Seed(), cfg.Public.Session.TTL, cfg.Public.Session.MaxSessions, time.Now)
	sessions.StartBackgroundSweep(ctx, cfg.Public.Session.SweepInterval)

	threadService := service.NewThread(validation.NewPostValidator(), forum.PlaceholderAuthor)

	return &Dependencies{
		Config:        cfg,
		Handler:       handler.New(tmpls, cfg.Public, threadService),
		Sessions:      sessions,
		SubmitLimiter: ratelimiter.PerMinute(forum.SubmissionsPerMinute, forum.SubmissionBurst),
		CancelFunc:    cancel,
	}, nil
}

// Close stops background work started by SetupDependencies.
func (d *Dependencies) Close() {
	d.CancelFunc()
	d.SubmitLimiter.Stop()
}
