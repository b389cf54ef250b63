// Package notifier turns completed scan runs into per-user release emails.
package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/store"
)

// Config holds dispatcher settings
type Config struct {
	// DashboardURL is linked from every email when set
	DashboardURL string
}

// Result summarizes one dispatch
type Result struct {
	// Users is how many users had at least one eligible release
	Users int
	// Sent is how many emails went out
	Sent int
	// Skipped is how many users were filtered out by their settings
	Skipped int
	// Failed is how many sends errored
	Failed int
}

// Dispatcher defines the interface for fanning out release notifications
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch groups the event's releases by user, applies each user's
	// notification settings and sends at most one email per user.
	// Per-user failures are logged and skipped; the dispatch keeps going.
	Dispatch(ctx context.Context, event *domain.ScanCompleted) (*Result, error)
}

type dispatcher struct {
	store store.Store
	email adapter.EmailClient
	cfg   Config
}

// New creates a notification dispatcher
func New(st store.Store, email adapter.EmailClient, cfg Config) Dispatcher {
	return &dispatcher{
		store: st,
		email: email,
		cfg:   cfg,
	}
}

// Dispatch groups the event's releases by user and sends the emails
func (d *dispatcher) Dispatch(ctx context.Context, event *domain.ScanCompleted) (*Result, error) {
	if event == nil || len(event.Releases) == 0 {
		return &Result{}, nil
	}

	byUser := groupByUser(event.Releases)
	result := &Result{Users: len(byUser)}

	logger.InfoCtx(ctx, "Dispatching release notifications",
		zap.String("run_id", event.RunID),
		zap.Int("releases", len(event.Releases)),
		zap.Int("users", len(byUser)),
	)

	for userID, releases := range byUser {
		sent, err := d.notifyUser(ctx, userID, releases)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to notify user: %w", err),
				zap.String("run_id", event.RunID),
				zap.String("user_id", userID),
			)
			result.Failed++
			continue
		}
		if sent {
			result.Sent++
		} else {
			result.Skipped++
		}
	}

	logger.InfoCtx(ctx, "Notification dispatch finished",
		zap.String("run_id", event.RunID),
		zap.Int("sent", result.Sent),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

// notifyUser applies the user's settings and sends at most one email.
// Returns false when the user's settings filtered everything out.
func (d *dispatcher) notifyUser(ctx context.Context, userID string, releases []domain.ReleaseEvent) (bool, error) {
	settings, err := d.store.GetOrCreateNotificationSettings(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load notification settings: %w", err)
	}

	if !settings.EmailEnabled || settings.Frequency != domain.FrequencyImmediate {
		return false, nil
	}

	eligible := make([]domain.ReleaseEvent, 0, len(releases))
	for _, r := range releases {
		switch r.Type {
		case domain.ReleaseTypeArtist:
			if settings.ArtistEnabled {
				eligible = append(eligible, r)
			}
		case domain.ReleaseTypeGame:
			if settings.GameEnabled {
				eligible = append(eligible, r)
			}
		}
	}
	if len(eligible) == 0 {
		return false, nil
	}

	user, err := d.store.GetUserByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}

	subject, textBody, htmlBody, err := renderEmail(templateData{
		DisplayName:  user.DisplayName,
		Releases:     eligible,
		DashboardURL: d.cfg.DashboardURL,
	})
	if err != nil {
		return false, err
	}

	err = d.email.Send(ctx, adapter.Email{
		ToName:   user.DisplayName,
		ToEmail:  user.Email,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return false, fmt.Errorf("failed to send email: %w", err)
	}

	return true, nil
}

// groupByUser buckets releases by owning user, preserving event order
func groupByUser(releases []domain.ReleaseEvent) map[string][]domain.ReleaseEvent {
	byUser := make(map[string][]domain.ReleaseEvent)
	for _, r := range releases {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}
	return byUser
}
