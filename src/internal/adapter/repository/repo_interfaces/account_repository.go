package repo_interfaces

import (
	"context"

	"github.com/api-sage/fund-transfer-service/src/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, accountID string, initialBalance domain.Money) (*domain.Account, error)
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Clear(ctx context.Context)
}
