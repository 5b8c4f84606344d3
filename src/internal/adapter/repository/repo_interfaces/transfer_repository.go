package repo_interfaces

import (
	"context"

	"github.com/api-sage/fund-transfer-service/src/internal/domain"
)

type TransferRepository interface {
	Create(ctx context.Context, record domain.TransferRecord) (domain.TransferRecord, error)
	GetByID(ctx context.Context, transferID string) (domain.TransferRecord, error)
	List(ctx context.Context) ([]domain.TransferRecord, error)
	Clear(ctx context.Context)
}
