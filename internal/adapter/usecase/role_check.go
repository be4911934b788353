package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
	"ad-exchange/internal/metrics"
)

// roleCheck is a fire-and-forget role query. It starts pending and resolves
// exactly once to granted or denied; errors and panics resolve to denied.
type roleCheck struct {
	done    chan struct{}
	state   domain.RoleCheckState
	started time.Time
}

func startRoleCheck(
	profiles port.ProfileProvider,
	logger *slog.Logger,
	userID string,
	role domain.Role,
	timeout time.Duration,
	now time.Time,
) *roleCheck {
	c := &roleCheck{
		done:    make(chan struct{}),
		state:   domain.RoleCheckPending,
		started: now,
	}
	go func() {
		state := domain.RoleCheckDenied
		defer func() {
			if r := recover(); r != nil {
				logger.Error("role check panicked",
					slog.String("user_id", userID),
					slog.Any("error", fmt.Errorf("%v", r)))
				state = domain.RoleCheckDenied
			}
			c.state = state
			metrics.RoleChecks.WithLabelValues(string(state)).Inc()
			close(c.done)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ok, err := profiles.HasRole(ctx, userID, role)
		if err != nil {
			logger.Warn("error checking role",
				slog.String("user_id", userID),
				slog.String("role", string(role)),
				slog.Any("error", err))
			return
		}
		if ok {
			state = domain.RoleCheckGranted
		}
	}()
	return c
}

// Await waits up to wait for the check to resolve and returns its state.
// It returns RoleCheckPending when the check is still running.
func (c *roleCheck) Await(ctx context.Context, wait time.Duration) domain.RoleCheckState {
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-c.done:
		return c.state
	case <-ctx.Done():
	case <-t.C:
	}
	return domain.RoleCheckPending
}

func (c *roleCheck) resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
