package repository

import (
	"context"

	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
)

// LicenseRepository define o porto de persistência para License.
type LicenseRepository interface {
	Create(ctx context.Context, license *entity.License) error
	GetByID(ctx context.Context, id string) (*entity.License, error)
	GetByNumero(ctx context.Context, numero string) (*entity.License, error)
	List(ctx context.Context) ([]*entity.License, error)
	Update(ctx context.Context, license *entity.License) error
	// Delete remove a licença e devolve o registro removido.
	Delete(ctx context.Context, id string) (*entity.License, error)
}
