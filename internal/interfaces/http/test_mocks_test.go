package http_test

import (
	"context"
	"sync"

	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
)

// memStore é um armazenamento em memória para os testes de handler: preserva
// a semântica relacional (unicidade fica por conta dos casos de uso, cascade
// de licenças na remoção da empresa fica aqui, como no banco).
type memStore struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
	licenses  map[string]*entity.License
}

func newMemStore() *memStore {
	return &memStore{
		companies: make(map[string]*entity.Company),
		licenses:  make(map[string]*entity.License),
	}
}

func (s *memStore) licencasDe(empresaID string) []entity.License {
	out := []entity.License{}
	for _, l := range s.licenses {
		if l.EmpresaID == empresaID {
			out = append(out, *l)
		}
	}
	return out
}

// companyStore implementa repository.CompanyRepository sobre o memStore.
type companyStore struct{ s *memStore }

func (r *companyStore) Create(ctx context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r *companyStore) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Licencas = r.s.licencasDe(id)
	return &cp, nil
}

func (r *companyStore) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.CNPJ == cnpj {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *companyStore) List(ctx context.Context, withLicenses bool) ([]*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Company{}
	for _, c := range r.s.companies {
		cp := *c
		if withLicenses {
			cp.Licencas = r.s.licencasDe(c.ID)
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (r *companyStore) Update(ctx context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r *companyStore) Delete(ctx context.Context, id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Licencas = r.s.licencasDe(id)
	delete(r.s.companies, id)
	// cascade, como o ON DELETE CASCADE do banco
	for lid, l := range r.s.licenses {
		if l.EmpresaID == id {
			delete(r.s.licenses, lid)
		}
	}
	return &cp, nil
}

// licenseStore implementa repository.LicenseRepository sobre o memStore.
type licenseStore struct{ s *memStore }

func (r *licenseStore) Create(ctx context.Context, l *entity.License) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *l
	r.s.licenses[l.ID] = &cp
	return nil
}

func (r *licenseStore) GetByID(ctx context.Context, id string) (*entity.License, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.licenses[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *licenseStore) GetByNumero(ctx context.Context, numero string) (*entity.License, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.licenses {
		if l.Numero == numero {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *licenseStore) List(ctx context.Context) ([]*entity.License, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.License{}
	for _, l := range r.s.licenses {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *licenseStore) Update(ctx context.Context, l *entity.License) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *l
	r.s.licenses[l.ID] = &cp
	return nil
}

func (r *licenseStore) Delete(ctx context.Context, id string) (*entity.License, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.licenses[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	delete(r.s.licenses, id)
	return &cp, nil
}
