package repository

import (
	"context"

	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
)

// CompanyRepository define o porto de persistência para Company (DIP).
// A implementação vive em infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	// List devolve todas as empresas; com withLicenses carrega as licenças de cada uma.
	List(ctx context.Context, withLicenses bool) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// Delete remove a empresa e devolve o registro removido (com licenças).
	// As licenças são removidas em cascata pelo próprio store.
	Delete(ctx context.Context, id string) (*entity.Company, error)
}
