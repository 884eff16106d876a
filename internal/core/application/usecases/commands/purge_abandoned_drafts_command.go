package commands

import (
	"errors"
	"time"

	"treats/internal/pkg/guard"
)

var (
	ErrPurgeAbandonedDraftsCommandIsNotConstructed = errors.New(
		"PurgeAbandonedDraftsCommand must be created via NewPurgeAbandonedDraftsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeAbandonedDraftsCommand represents a request to drop unsubmitted drafts
// that have not been touched within the retention window.
type PurgeAbandonedDraftsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeAbandonedDraftsCommand creates a command to purge stale drafts.
// The retention window must be positive.
func NewPurgeAbandonedDraftsCommand(retention time.Duration) (PurgeAbandonedDraftsCommand, error) {
	purgeCommand := PurgeAbandonedDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setRetention(retention); err != nil {
		return PurgeAbandonedDraftsCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeAbandonedDraftsCommandIsNotConstructed if validation fails.
func (c PurgeAbandonedDraftsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAbandonedDraftsCommandIsNotConstructed)
}

// Retention returns how long an unsubmitted draft may stay idle before it is
// considered abandoned.
func (c PurgeAbandonedDraftsCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeAbandonedDraftsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}
