// seed popula o banco com empresas e licenças de exemplo para desenvolvimento.
// Idempotente: registros já existentes (mesmo CNPJ/número) são pulados.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"os"

	"github.com/Matthzin/ambisis-teste/internal/application/dto"
	"github.com/Matthzin/ambisis-teste/internal/application/usecase"
	"github.com/Matthzin/ambisis-teste/internal/domain"
	"github.com/Matthzin/ambisis-teste/internal/infrastructure/postgres"
	"github.com/Matthzin/ambisis-teste/pkg/config"
	"github.com/Matthzin/ambisis-teste/pkg/logger"
)

var empresas = []dto.CreateCompanyRequest{
	{
		RazaoSocial: "Mineração Vale Verde Ltda",
		CNPJ:        "12.345.678/0001-99",
		CEP:         "30140-071",
		Cidade:      "Belo Horizonte",
		Estado:      "MG",
		Bairro:      "Funcionários",
		Complemento: "Conjunto 1201",
	},
	{
		RazaoSocial: "Agroindústria Rio Claro S.A.",
		CNPJ:        "98.765.432/0001-10",
		CEP:         "13500-210",
		Cidade:      "Rio Claro",
		Estado:      "SP",
		Bairro:      "Centro",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	companyUC := usecase.NewCompanyUseCase(companyRepo, nil, cfg.Rules)
	licenseUC := usecase.NewLicenseUseCase(licenseRepo, companyRepo, nil, cfg.Rules)

	for i, in := range empresas {
		created, err := companyUC.Create(ctx, in)
		if errors.Is(err, domain.ErrDuplicateCNPJ) {
			log.Info().Str("cnpj", in.CNPJ).Msg("empresa já existe, pulando")
			continue
		}
		if err != nil {
			log.Error().Err(err).Str("cnpj", in.CNPJ).Msg("seed da empresa")
			os.Exit(1)
		}
		log.Info().Str("id", created.ID).Str("razao_social", created.RazaoSocial).Msg("empresa criada")

		// Uma licença de exemplo por empresa
		lic, err := licenseUC.Create(ctx, dto.CreateLicenseRequest{
			EmpresaID:      created.ID,
			Numero:         licenseNumbers[i],
			OrgaoAmbiental: "IBAMA",
			Emissao:        "2024-03-01",
			Validade:       "2029-03-01",
		})
		if errors.Is(err, domain.ErrDuplicateLicenseNumber) {
			continue
		}
		if err != nil {
			log.Error().Err(err).Msg("seed da licença")
			os.Exit(1)
		}
		log.Info().Str("id", lic.ID).Str("numero", lic.Numero).Msg("licença criada")
	}

	log.Info().Msg("seed concluído")
}

var licenseNumbers = []string{"LO-2024-0001", "LO-2024-0002"}
