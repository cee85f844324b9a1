package providers

import (
	"context"

	"github.com/medora/tenant-seeder/internal/domain/entities"
)

// RunEventPublisher announces finished seeding runs
type RunEventPublisher interface {
	PublishRunCompleted(ctx context.Context, event *entities.SeedRunEvent) error
}
