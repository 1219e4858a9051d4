package rollover

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/stalkmarket/stalkbot/internal/ledger"
	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

// ErrUnauthorized is returned when the invoking user lacks the admin
// capability. No state is touched.
var ErrUnauthorized = errors.New("reset requires admin")

// ErrResetInProgress is returned when a reset is already running.
var ErrResetInProgress = errors.New("reset already in progress")

// State is the coordinator lifecycle state.
type State int

const (
	Idle State = iota
	Resetting
)

// Result describes a completed rollover.
type Result struct {
	BackupPath string             // Where the pre-reset ledger was archived
	Kept       int                // Buy events retained
	Dropped    int                // Events removed
	Before     []model.PriceEvent // Full pre-reset ledger, for graph regeneration
}

// Coordinator runs resets one at a time.
type Coordinator struct {
	prices *ledger.PriceLog
	admins map[string]bool
	logger *slog.Logger

	// Regenerate rebuilds the last-week graph artifact from the
	// pre-rollover rows. Optional; failures are logged, not fatal, since
	// the ledger rollover already committed.
	Regenerate func(before []model.PriceEvent) error

	mu    sync.Mutex
	state State
}

// New creates a coordinator. adminIDs lists user ids granted the reset
// capability in addition to users the platform flags as admin.
func New(prices *ledger.PriceLog, adminIDs []string, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	admins := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Coordinator{
		prices: prices,
		admins: admins,
		logger: logger,
	}
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Authorized reports whether user may run a reset.
func (c *Coordinator) Authorized(user transport.User) bool {
	return user.Admin || c.admins[user.ID]
}

// Reset runs the full rollover on behalf of user, with now supplying the
// backup date tag. The sequence is authorization, backup, prune; the
// overwrite is atomic, so callers either see the old ledger or the fully
// rolled-over one.
func (c *Coordinator) Reset(user transport.User, now time.Time) (Result, error) {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return Result{}, ErrResetInProgress
	}
	c.state = Resetting
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.state = Idle
		c.mu.Unlock()
	}()

	if !c.Authorized(user) {
		c.logger.Warn("unauthorized reset attempt", "user", user.ID)
		return Result{}, ErrUnauthorized
	}

	before, err := c.prices.Load()
	if err != nil {
		return Result{}, fmt.Errorf("load price ledger: %w", err)
	}

	backupPath, err := c.prices.Backup(now.UTC().Format("2006-01-02"))
	if err != nil {
		return Result{}, fmt.Errorf("backup price ledger: %w", err)
	}

	kept := latestBuys(before)
	if err := c.prices.Overwrite(kept); err != nil {
		return Result{}, fmt.Errorf("roll over price ledger: %w", err)
	}

	result := Result{
		BackupPath: backupPath,
		Kept:       len(kept),
		Dropped:    len(before) - len(kept),
		Before:     before,
	}

	c.logger.Info("price ledger rolled over",
		"backup", backupPath,
		"kept", result.Kept,
		"dropped", result.Dropped,
	)

	if c.Regenerate != nil {
		if err := c.Regenerate(before); err != nil {
			c.logger.Warn("last-week graph regeneration failed", "error", err)
		}
	}

	return result, nil
}

// latestBuys keeps the single most recent buy event per author, in the
// order the authors first appear in the ledger. Users without buys drop
// out entirely.
func latestBuys(events []model.PriceEvent) []model.PriceEvent {
	latest := make(map[string]model.PriceEvent)
	var order []string
	for _, ev := range events {
		if ev.Kind != model.KindBuy {
			continue
		}
		cur, seen := latest[ev.Author]
		if !seen {
			order = append(order, ev.Author)
		}
		if !seen || !ev.Timestamp.Before(cur.Timestamp) {
			latest[ev.Author] = ev
		}
	}
	kept := make([]model.PriceEvent, 0, len(order))
	for _, author := range order {
		kept = append(kept, latest[author])
	}
	return kept
}
