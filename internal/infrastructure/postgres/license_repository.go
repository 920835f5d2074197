package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Matthzin/ambisis-teste/internal/domain"
	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
	"github.com/Matthzin/ambisis-teste/internal/domain/repository"
)

// Garante que LicenseRepo implementa repository.LicenseRepository.
var _ repository.LicenseRepository = (*LicenseRepo)(nil)

const licenseColumns = `id, empresa_id, numero, orgao_ambiental, emissao, validade, created_at, updated_at`

// LicenseRepo implementação do porto LicenseRepository sobre PostgreSQL.
// O índice único em numero e a FK para empresas são a fonte de verdade:
// 23505 vira domain.ErrDuplicateLicenseNumber e 23503 vira
// domain.ErrCompanyNotFound, mesmo se a pré-checagem do caso de uso passou.
type LicenseRepo struct {
	pool *pgxpool.Pool
}

// NewLicenseRepository constrói o adaptador de persistência para licenças.
func NewLicenseRepository(pool *pgxpool.Pool) *LicenseRepo {
	return &LicenseRepo{pool: pool}
}

// Create persiste uma nova licença.
func (r *LicenseRepo) Create(ctx context.Context, l *entity.License) error {
	query := `
		INSERT INTO licencas (id, empresa_id, numero, orgao_ambiental, emissao, validade, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		l.ID, l.EmpresaID, l.Numero, l.OrgaoAmbiental, l.Emissao, l.Validade,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateLicenseNumber
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("insert licenca: %w", err)
	}
	return nil
}

// GetByID obtém uma licença por ID. ID fora da forma de UUID equivale a
// registro inexistente.
func (r *LicenseRepo) GetByID(ctx context.Context, id string) (*entity.License, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + licenseColumns + ` FROM licencas WHERE id = $1`
	var l entity.License
	err := scanLicense(r.pool.QueryRow(ctx, query, id).Scan, &l)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// GetByNumero obtém uma licença pelo número (usado na checagem de unicidade).
func (r *LicenseRepo) GetByNumero(ctx context.Context, numero string) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licencas WHERE numero = $1`
	var l entity.License
	err := scanLicense(r.pool.QueryRow(ctx, query, numero).Scan, &l)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// List devolve todas as licenças.
func (r *LicenseRepo) List(ctx context.Context) ([]*entity.License, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+licenseColumns+` FROM licencas ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list licencas: %w", err)
	}
	defer rows.Close()

	var list []*entity.License
	for rows.Next() {
		var l entity.License
		if err := scanLicense(rows.Scan, &l); err != nil {
			return nil, err
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update atualiza o registro completo da licença (o vínculo com a empresa não muda).
func (r *LicenseRepo) Update(ctx context.Context, l *entity.License) error {
	if !isUUID(l.ID) {
		return domain.ErrLicenseNotFound
	}
	query := `
		UPDATE licencas
		   SET numero = $2, orgao_ambiental = $3, emissao = $4, validade = $5, updated_at = $6
		 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		l.ID, l.Numero, l.OrgaoAmbiental, l.Emissao, l.Validade, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateLicenseNumber
		}
		return fmt.Errorf("update licenca: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrLicenseNotFound
	}
	return nil
}

// Delete remove a licença e devolve o registro removido.
func (r *LicenseRepo) Delete(ctx context.Context, id string) (*entity.License, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `DELETE FROM licencas WHERE id = $1 RETURNING ` + licenseColumns
	var l entity.License
	err := scanLicense(r.pool.QueryRow(ctx, query, id).Scan, &l)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func scanLicense(scan func(dest ...any) error, l *entity.License) error {
	return scan(&l.ID, &l.EmpresaID, &l.Numero, &l.OrgaoAmbiental, &l.Emissao, &l.Validade, &l.CreatedAt, &l.UpdatedAt)
}
