package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthzin/ambisis-teste/internal/application/dto"
	"github.com/Matthzin/ambisis-teste/internal/application/ports"
	"github.com/Matthzin/ambisis-teste/internal/domain"
	"github.com/Matthzin/ambisis-teste/internal/domain/entity"
	"github.com/Matthzin/ambisis-teste/pkg/config"
)

func defaultRules() config.RulesConfig {
	return config.RulesConfig{ValidateCNPJFormat: true}
}

func validCompanyRequest() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		RazaoSocial: "Acme Ltda",
		CNPJ:        "12.345.678/0001-99",
		CEP:         "12345-678",
		Cidade:      "Springfield",
		Estado:      "SP",
		Bairro:      "Centro",
	}
}

func TestCompanyCreate_CamposObrigatorios(t *testing.T) {
	created := false
	repo := &companyRepoMock{
		CreateFn: func(ctx context.Context, c *entity.Company) error {
			created = true
			return nil
		},
	}
	uc := NewCompanyUseCase(repo, nil, defaultRules())

	mutations := []struct {
		name string
		mut  func(r *dto.CreateCompanyRequest)
	}{
		{"sem razaoSocial", func(r *dto.CreateCompanyRequest) { r.RazaoSocial = "" }},
		{"sem cnpj", func(r *dto.CreateCompanyRequest) { r.CNPJ = "" }},
		{"sem cep", func(r *dto.CreateCompanyRequest) { r.CEP = "" }},
		{"sem cidade", func(r *dto.CreateCompanyRequest) { r.Cidade = "" }},
		{"sem estado", func(r *dto.CreateCompanyRequest) { r.Estado = "" }},
		{"sem bairro", func(r *dto.CreateCompanyRequest) { r.Bairro = "" }},
	}
	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			in := validCompanyRequest()
			tc.mut(&in)
			out, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			assert.Nil(t, out)
			assert.False(t, created, "nenhum registro deve ser criado")
		})
	}
}

func TestCompanyCreate_CNPJInvalido(t *testing.T) {
	uc := NewCompanyUseCase(&companyRepoMock{}, nil, defaultRules())

	for _, bad := range []string{"12345678000199", "12.345.678/0001-9", "aa.bbb.ccc/dddd-ee"} {
		in := validCompanyRequest()
		in.CNPJ = bad
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidCNPJ, "cnpj %q", bad)
	}
}

func TestCompanyCreate_FormatoCNPJDesligado(t *testing.T) {
	// Política desligada: a máscara não é exigida.
	uc := NewCompanyUseCase(&companyRepoMock{}, nil, config.RulesConfig{ValidateCNPJFormat: false})

	in := validCompanyRequest()
	in.CNPJ = "12345678000199"
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "12345678000199", out.CNPJ)
}

func TestCompanyCreate_CNPJDuplicado(t *testing.T) {
	created := false
	repo := &companyRepoMock{
		GetByCNPJFn: func(ctx context.Context, cnpj string) (*entity.Company, error) {
			return &entity.Company{ID: "ja-existe", CNPJ: cnpj}, nil
		},
		CreateFn: func(ctx context.Context, c *entity.Company) error {
			created = true
			return nil
		},
	}
	uc := NewCompanyUseCase(repo, nil, defaultRules())

	_, err := uc.Create(context.Background(), validCompanyRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateCNPJ)
	assert.False(t, created, "store não deve ser alterado")
}

func TestCompanyCreate_Sucesso(t *testing.T) {
	var persisted *entity.Company
	repo := &companyRepoMock{
		CreateFn: func(ctx context.Context, c *entity.Company) error {
			persisted = c
			return nil
		},
	}
	pub := &pubMock{}
	uc := NewCompanyUseCase(repo, pub, defaultRules())

	out, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.NotEmpty(t, out.ID, "id é gerado pelo servidor")
	assert.Equal(t, persisted.ID, out.ID)
	assert.Nil(t, out.Complemento, "complemento omitido persiste como null")
	assert.NotNil(t, out.Licencas)
	assert.Empty(t, out.Licencas)
	assert.Equal(t, []string{ports.EventCompanyCreated}, pub.events)
}

func TestCompanyCreate_ComplementoPreenchido(t *testing.T) {
	uc := NewCompanyUseCase(&companyRepoMock{}, nil, defaultRules())

	in := validCompanyRequest()
	in.Complemento = "Sala 42"
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.Complemento)
	assert.Equal(t, "Sala 42", *out.Complemento)
}

func TestCompanyGetByID_NaoEncontrada(t *testing.T) {
	uc := NewCompanyUseCase(&companyRepoMock{}, nil, defaultRules())

	out, err := uc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.Nil(t, out)
}

func TestCompanyOps_IDMalformadoEhNaoEncontrada(t *testing.T) {
	// Um id fora da forma de UUID nunca corresponde a registro algum e não
	// deve chegar ao store (a coluna id é uuid).
	touched := false
	repo := &companyRepoMock{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Company, error) {
			touched = true
			return nil, nil
		},
		DeleteFn: func(ctx context.Context, id string) (*entity.Company, error) {
			touched = true
			return nil, nil
		},
	}
	uc := NewCompanyUseCase(repo, nil, defaultRules())

	_, err := uc.GetByID(context.Background(), "inexistente")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	_, err = uc.Update(context.Background(), "inexistente", dto.UpdateCompanyRequest(validCompanyRequest()))
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	_, err = uc.Delete(context.Background(), "inexistente")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	assert.False(t, touched, "o store não deve ser consultado")
}

func TestCompanyList_VaziaNaoEhErro(t *testing.T) {
	uc := NewCompanyUseCase(&companyRepoMock{}, nil, defaultRules())

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCompanyUpdate_NaoEncontrada(t *testing.T) {
	uc := NewCompanyUseCase(&companyRepoMock{}, nil, defaultRules())

	in := dto.UpdateCompanyRequest(validCompanyRequest())
	_, err := uc.Update(context.Background(), uuid.NewString(), in)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCompanyUpdate_RevalidaCNPJ(t *testing.T) {
	// A atualização passa pelas mesmas regras de formato da criação.
	repo := &companyRepoMock{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Company, error) {
			return &entity.Company{ID: id, CNPJ: "12.345.678/0001-99"}, nil
		},
	}
	uc := NewCompanyUseCase(repo, nil, defaultRules())

	in := dto.UpdateCompanyRequest(validCompanyRequest())
	in.CNPJ = "sem-mascara"
	_, err := uc.Update(context.Background(), uuid.NewString(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidCNPJ)
}

func TestCompanyUpdate_Sucesso(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var updated *entity.Company
	repo := &companyRepoMock{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Company, error) {
			return &entity.Company{ID: id, CNPJ: "12.345.678/0001-99", CreatedAt: createdAt}, nil
		},
		UpdateFn: func(ctx context.Context, c *entity.Company) error {
			updated = c
			return nil
		},
	}
	pub := &pubMock{}
	uc := NewCompanyUseCase(repo, pub, defaultRules())

	id := uuid.NewString()
	in := dto.UpdateCompanyRequest(validCompanyRequest())
	in.Cidade = "Shelbyville"
	out, err := uc.Update(context.Background(), id, in)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, id, updated.ID, "id é imutável")
	assert.Equal(t, createdAt, updated.CreatedAt, "createdAt preservado")
	assert.Equal(t, "Shelbyville", out.Cidade)
	assert.Equal(t, []string{ports.EventCompanyUpdated}, pub.events)
}

func TestCompanyDelete_NaoEncontrada(t *testing.T) {
	uc := NewCompanyUseCase(&companyRepoMock{}, nil, defaultRules())

	_, err := uc.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCompanyDelete_DevolveRegistroRemovido(t *testing.T) {
	repo := &companyRepoMock{
		DeleteFn: func(ctx context.Context, id string) (*entity.Company, error) {
			return &entity.Company{
				ID:          id,
				RazaoSocial: "Acme Ltda",
				Licencas:    []entity.License{{ID: "lic-1", Numero: "LIC-001"}},
			}, nil
		},
	}
	pub := &pubMock{}
	uc := NewCompanyUseCase(repo, pub, defaultRules())

	out, err := uc.Delete(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltda", out.RazaoSocial)
	assert.Len(t, out.Licencas, 1)
	assert.Equal(t, []string{ports.EventCompanyDeleted}, pub.events)
}

func TestCompanyCreate_FalhaDePublicacaoNaoAborta(t *testing.T) {
	pub := &pubMock{err: assert.AnError}
	uc := NewCompanyUseCase(&companyRepoMock{}, pub, defaultRules())

	out, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err, "evento é best-effort")
	assert.NotNil(t, out)
}
