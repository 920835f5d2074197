package usecase

import (
	"context"

	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
)

// Mocks de repositório por campo de função: cada teste injeta só o que usa.
// Função não configurada devolve zero (registro ausente, sem erro).

type companyRepoMock struct {
	CreateFn    func(ctx context.Context, c *entity.Company) error
	GetByIDFn   func(ctx context.Context, id string) (*entity.Company, error)
	GetByCNPJFn func(ctx context.Context, cnpj string) (*entity.Company, error)
	ListFn      func(ctx context.Context, withLicenses bool) ([]*entity.Company, error)
	UpdateFn    func(ctx context.Context, c *entity.Company) error
	DeleteFn    func(ctx context.Context, id string) (*entity.Company, error)
}

func (m *companyRepoMock) Create(ctx context.Context, c *entity.Company) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, c)
}

func (m *companyRepoMock) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *companyRepoMock) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	if m.GetByCNPJFn == nil {
		return nil, nil
	}
	return m.GetByCNPJFn(ctx, cnpj)
}

func (m *companyRepoMock) List(ctx context.Context, withLicenses bool) ([]*entity.Company, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx, withLicenses)
}

func (m *companyRepoMock) Update(ctx context.Context, c *entity.Company) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, c)
}

func (m *companyRepoMock) Delete(ctx context.Context, id string) (*entity.Company, error) {
	if m.DeleteFn == nil {
		return nil, nil
	}
	return m.DeleteFn(ctx, id)
}

type licenseRepoMock struct {
	CreateFn      func(ctx context.Context, l *entity.License) error
	GetByIDFn     func(ctx context.Context, id string) (*entity.License, error)
	GetByNumeroFn func(ctx context.Context, numero string) (*entity.License, error)
	ListFn        func(ctx context.Context) ([]*entity.License, error)
	UpdateFn      func(ctx context.Context, l *entity.License) error
	DeleteFn      func(ctx context.Context, id string) (*entity.License, error)
}

func (m *licenseRepoMock) Create(ctx context.Context, l *entity.License) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(ctx, l)
}

func (m *licenseRepoMock) GetByID(ctx context.Context, id string) (*entity.License, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(ctx, id)
}

func (m *licenseRepoMock) GetByNumero(ctx context.Context, numero string) (*entity.License, error) {
	if m.GetByNumeroFn == nil {
		return nil, nil
	}
	return m.GetByNumeroFn(ctx, numero)
}

func (m *licenseRepoMock) List(ctx context.Context) ([]*entity.License, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(ctx)
}

func (m *licenseRepoMock) Update(ctx context.Context, l *entity.License) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, l)
}

func (m *licenseRepoMock) Delete(ctx context.Context, id string) (*entity.License, error) {
	if m.DeleteFn == nil {
		return nil, nil
	}
	return m.DeleteFn(ctx, id)
}

// pubMock registra os eventos publicados.
type pubMock struct {
	events []string
	err    error
}

func (p *pubMock) Publish(ctx context.Context, event string, payload any) error {
	p.events = append(p.events, event)
	return p.err
}
