package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Matthzin/ambisis-teste/internal/application/dto"
	"github.com/Matthzin/ambisis-teste/internal/application/ports"
	"github.com/Matthzin/ambisis-teste/internal/domain"
	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
	"github.com/Matthzin/ambisis-teste/internal/domain/repository"
	"github.com/Matthzin/ambisis-teste/pkg/cnpj"
	"github.com/Matthzin/ambisis-teste/pkg/config"
)

// CompanyUseCase aplica as regras de cadastro de empresas: campos obrigatórios,
// formato do CNPJ e unicidade. A verificação prévia de CNPJ duplicado é um
// atalho de UX; a palavra final é do índice único no banco, que o repositório
// traduz para domain.ErrDuplicateCNPJ.
type CompanyUseCase struct {
	repo  repository.CompanyRepository
	pub   ports.EventPublisher
	rules config.RulesConfig
}

// NewCompanyUseCase constrói o caso de uso com o porto de persistência,
// o publicador de eventos e as políticas de validação.
func NewCompanyUseCase(repo repository.CompanyRepository, pub ports.EventPublisher, rules config.RulesConfig) *CompanyUseCase {
	if pub == nil {
		pub = ports.NopPublisher{}
	}
	return &CompanyUseCase{repo: repo, pub: pub, rules: rules}
}

// Create cria uma nova empresa. Gera o ID e normaliza o complemento.
// Devolve domain.ErrDuplicateCNPJ se o CNPJ já existir.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := uc.validate(in.RazaoSocial, in.CNPJ, in.CEP, in.Cidade, in.Estado, in.Bairro); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCNPJ(ctx, in.CNPJ)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCNPJ
	}

	now := time.Now().UTC()
	company := &entity.Company{
		ID:          uuid.New().String(),
		RazaoSocial: in.RazaoSocial,
		CNPJ:        in.CNPJ,
		CEP:         in.CEP,
		Cidade:      in.Cidade,
		Estado:      in.Estado,
		Bairro:      in.Bairro,
		Complemento: normalizeComplemento(in.Complemento),
		Licencas:    []entity.License{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.EventCompanyCreated, company)
	return companyToResponse(company, true), nil
}

// GetByID obtém uma empresa por ID, com suas licenças.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrCompanyNotFound
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return companyToResponse(company, true), nil
}

// List lista todas as empresas com suas licenças. Lista vazia é sucesso,
// nunca um erro.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *companyToResponse(c, true))
	}
	return items, nil
}

// Update atualiza o registro completo da empresa, revalidando todos os
// campos obrigatórios e o formato do CNPJ (mesma regra da criação).
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrCompanyNotFound
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrCompanyNotFound
	}
	if err := uc.validate(in.RazaoSocial, in.CNPJ, in.CEP, in.Cidade, in.Estado, in.Bairro); err != nil {
		return nil, err
	}

	company := &entity.Company{
		ID:          existing.ID,
		RazaoSocial: in.RazaoSocial,
		CNPJ:        in.CNPJ,
		CEP:         in.CEP,
		Cidade:      in.Cidade,
		Estado:      in.Estado,
		Bairro:      in.Bairro,
		Complemento: normalizeComplemento(in.Complemento),
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.EventCompanyUpdated, company)
	return companyToResponse(company, false), nil
}

// Delete remove a empresa e devolve o registro removido. As licenças da
// empresa são removidas em cascata pelo store.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrCompanyNotFound
	}
	company, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	uc.publish(ctx, ports.EventCompanyDeleted, company)
	return companyToResponse(company, true), nil
}

// validate aplica presença dos obrigatórios e, conforme a política, o
// formato do CNPJ. Criação e atualização passam pelas mesmas regras.
func (uc *CompanyUseCase) validate(razaoSocial, taxID, cep, cidade, estado, bairro string) error {
	if razaoSocial == "" || taxID == "" || cep == "" || cidade == "" || estado == "" || bairro == "" {
		return domain.ErrMissingFields
	}
	if uc.rules.ValidateCNPJFormat && !cnpj.IsValidFormat(taxID) {
		return domain.ErrInvalidCNPJ
	}
	return nil
}

func (uc *CompanyUseCase) publish(ctx context.Context, event string, payload any) {
	publishBestEffort(ctx, uc.pub, event, payload)
}

// publishBestEffort publica sem abortar a operação; falha vira warn no log.
func publishBestEffort(ctx context.Context, pub ports.EventPublisher, event string, payload any) {
	if err := pub.Publish(ctx, event, payload); err != nil {
		log.Warn().Err(err).Str("event", event).Msg("falha ao publicar evento de cadastro")
	}
}

// isValidID informa se o id tem a forma de um UUID. Os IDs são sempre gerados
// aqui, então um id malformado equivale a registro inexistente; sem esse
// atalho ele chegaria ao banco como valor inválido para a coluna uuid.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// normalizeComplemento converte complemento vazio em nil para que o registro
// persista null, nunca string vazia.
func normalizeComplemento(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func companyToResponse(c *entity.Company, withLicenses bool) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CompanyResponse{
		ID:          c.ID,
		RazaoSocial: c.RazaoSocial,
		CNPJ:        c.CNPJ,
		CEP:         c.CEP,
		Cidade:      c.Cidade,
		Estado:      c.Estado,
		Bairro:      c.Bairro,
		Complemento: c.Complemento,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if withLicenses {
		resp.Licencas = make([]dto.LicenseResponse, 0, len(c.Licencas))
		for _, l := range c.Licencas {
			resp.Licencas = append(resp.Licencas, *licenseToResponse(&l))
		}
	}
	return resp
}
