package ports

import "context"

// Eventos emitidos pelo cadastro. O payload é o registro afetado serializado em JSON.
const (
	EventCompanyCreated = "company.created"
	EventCompanyUpdated = "company.updated"
	EventCompanyDeleted = "company.deleted"
	EventLicenseCreated = "license.created"
	EventLicenseUpdated = "license.updated"
	EventLicenseDeleted = "license.deleted"
)

// EventPublisher define o porto de saída para eventos de mudança de cadastro.
// Qualquer adaptador (RabbitMQ, mock, no-op) deve implementar esta interface.
// A publicação é best-effort: falhas são logadas e nunca abortam a operação.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
}

// NopPublisher descarta eventos; usado quando o broker está desligado.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event string, payload any) error { return nil }
