package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Matthzin/ambisis-teste/internal/domain"
	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
	"github.com/Matthzin/ambisis-teste/internal/domain/repository"
)

// Garante que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, razao_social, cnpj, cep, cidade, estado, bairro, complemento, created_at, updated_at`

// CompanyRepo implementação do porto CompanyRepository sobre PostgreSQL.
// O índice único em cnpj é a fonte de verdade para duplicidade: violações
// 23505 viram domain.ErrDuplicateCNPJ tanto na criação quanto na atualização.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository constrói o adaptador de persistência para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste uma nova empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO empresas (id, razao_social, cnpj, cep, cidade, estado, bairro, complemento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.RazaoSocial, c.CNPJ, c.CEP, c.Cidade, c.Estado, c.Bairro,
		c.Complemento, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCNPJ
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID, com suas licenças. ID fora da forma de
// UUID equivale a registro inexistente.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + companyColumns + ` FROM empresas WHERE id = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.RazaoSocial, &c.CNPJ, &c.CEP, &c.Cidade, &c.Estado, &c.Bairro,
		&c.Complemento, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	licenses, err := r.licensesFor(ctx, []string{c.ID})
	if err != nil {
		return nil, err
	}
	c.Licencas = licenses[c.ID]
	if c.Licencas == nil {
		c.Licencas = []entity.License{}
	}
	return &c, nil
}

// GetByCNPJ obtém uma empresa por CNPJ (sem licenças; usado só na checagem de unicidade).
func (r *CompanyRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM empresas WHERE cnpj = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, cnpj).Scan(
		&c.ID, &c.RazaoSocial, &c.CNPJ, &c.CEP, &c.Cidade, &c.Estado, &c.Bairro,
		&c.Complemento, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa por CNPJ: %w", err)
	}
	return &c, nil
}

// List devolve todas as empresas; com withLicenses carrega as licenças de cada
// uma em uma única consulta adicional.
func (r *CompanyRepo) List(ctx context.Context, withLicenses bool) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM empresas ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	var ids []string
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.RazaoSocial, &c.CNPJ, &c.CEP, &c.Cidade, &c.Estado, &c.Bairro,
			&c.Complemento, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if withLicenses && len(ids) > 0 {
		byEmpresa, err := r.licensesFor(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			c.Licencas = byEmpresa[c.ID]
			if c.Licencas == nil {
				c.Licencas = []entity.License{}
			}
		}
	}
	return list, nil
}

// Update atualiza o registro completo da empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	if !isUUID(c.ID) {
		return domain.ErrCompanyNotFound
	}
	query := `
		UPDATE empresas
		   SET razao_social = $2, cnpj = $3, cep = $4, cidade = $5, estado = $6,
		       bairro = $7, complemento = $8, updated_at = $9
		 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		c.ID, c.RazaoSocial, c.CNPJ, c.CEP, c.Cidade, c.Estado, c.Bairro,
		c.Complemento, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCNPJ
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// Delete remove a empresa e devolve o registro removido (com licenças).
// As licenças caem junto via ON DELETE CASCADE.
func (r *CompanyRepo) Delete(ctx context.Context, id string) (*entity.Company, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return c, nil
}

// licensesFor carrega as licenças de um conjunto de empresas, agrupadas por empresa.
func (r *CompanyRepo) licensesFor(ctx context.Context, empresaIDs []string) (map[string][]entity.License, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+licenseColumns+`
		  FROM licencas
		 WHERE empresa_id = ANY($1)
		 ORDER BY created_at`, empresaIDs)
	if err != nil {
		return nil, fmt.Errorf("list licencas da empresa: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.License)
	for rows.Next() {
		var l entity.License
		if err := scanLicense(rows.Scan, &l); err != nil {
			return nil, err
		}
		out[l.EmpresaID] = append(out[l.EmpresaID], l)
	}
	return out, rows.Err()
}
