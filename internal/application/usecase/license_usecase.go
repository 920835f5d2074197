package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Matthzin/ambisis-teste/internal/application/dto"
	"github.com/Matthzin/ambisis-teste/internal/application/ports"
	"github.com/Matthzin/ambisis-teste/internal/domain"
	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
	"github.com/Matthzin/ambisis-teste/internal/domain/repository"
	"github.com/Matthzin/ambisis-teste/pkg/config"
)

// dateLayouts aceitos para emissão e validade.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// LicenseUseCase aplica as regras de cadastro de licenças: campos
// obrigatórios primeiro, depois datas, referência à empresa e unicidade do
// número. O índice único do banco continua sendo a palavra final sobre
// números duplicados.
type LicenseUseCase struct {
	repo      repository.LicenseRepository
	companies repository.CompanyRepository
	pub       ports.EventPublisher
	rules     config.RulesConfig
}

// NewLicenseUseCase constrói o caso de uso. O repositório de empresas é
// usado na checagem de existência da empresa na criação.
func NewLicenseUseCase(repo repository.LicenseRepository, companies repository.CompanyRepository, pub ports.EventPublisher, rules config.RulesConfig) *LicenseUseCase {
	if pub == nil {
		pub = ports.NopPublisher{}
	}
	return &LicenseUseCase{repo: repo, companies: companies, pub: pub, rules: rules}
}

// Create cria uma nova licença. A empresa referenciada deve existir
// (domain.ErrCompanyNotFound) e o número deve ser inédito
// (domain.ErrDuplicateLicenseNumber).
func (uc *LicenseUseCase) Create(ctx context.Context, in dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	if in.EmpresaID == "" || in.Numero == "" || in.OrgaoAmbiental == "" || in.Emissao == "" || in.Validade == "" {
		return nil, domain.ErrMissingFields
	}
	emissao, validade, err := uc.parseDates(in.Emissao, in.Validade)
	if err != nil {
		return nil, err
	}

	if !isValidID(in.EmpresaID) {
		return nil, domain.ErrCompanyNotFound
	}
	company, err := uc.companies.GetByID(ctx, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	existing, err := uc.repo.GetByNumero(ctx, in.Numero)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateLicenseNumber
	}

	now := time.Now().UTC()
	license := &entity.License{
		ID:             uuid.New().String(),
		EmpresaID:      in.EmpresaID,
		Numero:         in.Numero,
		OrgaoAmbiental: in.OrgaoAmbiental,
		Emissao:        emissao,
		Validade:       validade,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, license); err != nil {
		return nil, err
	}
	uc.publishLicense(ctx, ports.EventLicenseCreated, license)
	return licenseToResponse(license), nil
}

// GetByID obtém uma licença por ID.
func (uc *LicenseUseCase) GetByID(ctx context.Context, id string) (*dto.LicenseResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrLicenseNotFound
	}
	license, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrLicenseNotFound
	}
	return licenseToResponse(license), nil
}

// List lista todas as licenças. Lista vazia é sucesso, nunca um erro.
func (uc *LicenseUseCase) List(ctx context.Context) ([]dto.LicenseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LicenseResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *licenseToResponse(l))
	}
	return items, nil
}

// Update atualiza o registro completo da licença. O vínculo com a empresa
// não muda após a criação.
func (uc *LicenseUseCase) Update(ctx context.Context, id string, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrLicenseNotFound
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrLicenseNotFound
	}
	if in.Numero == "" || in.OrgaoAmbiental == "" || in.Emissao == "" || in.Validade == "" {
		return nil, domain.ErrMissingFields
	}
	emissao, validade, err := uc.parseDates(in.Emissao, in.Validade)
	if err != nil {
		return nil, err
	}

	license := &entity.License{
		ID:             existing.ID,
		EmpresaID:      existing.EmpresaID,
		Numero:         in.Numero,
		OrgaoAmbiental: in.OrgaoAmbiental,
		Emissao:        emissao,
		Validade:       validade,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := uc.repo.Update(ctx, license); err != nil {
		return nil, err
	}
	uc.publishLicense(ctx, ports.EventLicenseUpdated, license)
	return licenseToResponse(license), nil
}

// Delete remove a licença e devolve o registro removido.
func (uc *LicenseUseCase) Delete(ctx context.Context, id string) (*dto.LicenseResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrLicenseNotFound
	}
	license, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrLicenseNotFound
	}
	uc.publishLicense(ctx, ports.EventLicenseDeleted, license)
	return licenseToResponse(license), nil
}

// parseDates interpreta emissão e validade e, conforme a política, exige
// validade >= emissão.
func (uc *LicenseUseCase) parseDates(emissaoStr, validadeStr string) (time.Time, time.Time, error) {
	emissao, err := parseDate(emissaoStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	validade, err := parseDate(validadeStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if uc.rules.EnforceDateOrder && validade.Before(emissao) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return emissao, validade, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.ErrInvalidDate
}

func (uc *LicenseUseCase) publishLicense(ctx context.Context, event string, payload any) {
	publishBestEffort(ctx, uc.pub, event, payload)
}

func licenseToResponse(l *entity.License) *dto.LicenseResponse {
	if l == nil {
		return nil
	}
	return &dto.LicenseResponse{
		ID:             l.ID,
		EmpresaID:      l.EmpresaID,
		Numero:         l.Numero,
		OrgaoAmbiental: l.OrgaoAmbiental,
		Emissao:        l.Emissao,
		Validade:       l.Validade,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
