package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Matthzin/ambisis-teste/internal/application/dto"
	"github.com/Matthzin/ambisis-teste/internal/domain"
)

// writeError traduz erros de domínio para a resposta HTTP: 400 para validação
// e conflito (contrato original do cadastro), 404 para recurso ausente.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return respond(c, fiber.StatusBadRequest, "MISSING_FIELDS", err)
	case errors.Is(err, domain.ErrInvalidCNPJ):
		return respond(c, fiber.StatusBadRequest, "INVALID_CNPJ", err)
	case errors.Is(err, domain.ErrDuplicateCNPJ):
		return respond(c, fiber.StatusBadRequest, "DUPLICATE_CNPJ", err)
	case errors.Is(err, domain.ErrDuplicateLicenseNumber):
		return respond(c, fiber.StatusBadRequest, "DUPLICATE_LICENSE_NUMBER", err)
	case errors.Is(err, domain.ErrInvalidDate):
		return respond(c, fiber.StatusBadRequest, "INVALID_DATE", err)
	case errors.Is(err, domain.ErrInvalidDateRange):
		return respond(c, fiber.StatusBadRequest, "INVALID_DATE_RANGE", err)
	case errors.Is(err, domain.ErrCompanyNotFound):
		return respond(c, fiber.StatusNotFound, "COMPANY_NOT_FOUND", err)
	case errors.Is(err, domain.ErrLicenseNotFound):
		return respond(c, fiber.StatusNotFound, "LICENSE_NOT_FOUND", err)
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}
