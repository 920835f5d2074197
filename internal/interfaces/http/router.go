package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Matthzin/ambisis-teste/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	LicenseUC *usecase.LicenseUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	licenses := api.Group("/licenses")
	licenseHandler := NewLicenseHandler(deps.LicenseUC)
	licenses.Get("/", licenseHandler.List)
	licenses.Post("/", licenseHandler.Create)
	licenses.Get("/:id", licenseHandler.GetByID)
	licenses.Put("/:id", licenseHandler.Update)
	licenses.Delete("/:id", licenseHandler.Delete)
}
