// Package builder arma un domain.Person a través de builders por faceta
// (empleo, domicilio, datos comunes) que comparten la misma instancia.
//
// Un builder pertenece a una sola goroutine; no es seguro para uso concurrente.
package builder

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"faceted-builder/internal/domain"
)

// Facets es la superficie común del builder raíz y de cada faceta.
type Facets interface {
	Employment() *EmploymentBuilder
	Address() *AddressBuilder
	CommonInfo() *CommonInfoBuilder
	Build() *domain.Person
}

var (
	_ Facets = (*PersonBuilder)(nil)
	_ Facets = (*EmploymentBuilder)(nil)
	_ Facets = (*AddressBuilder)(nil)
	_ Facets = (*CommonInfoBuilder)(nil)
)

// PersonBuilder es dueño de la persona en construcción.
type PersonBuilder struct {
	person    *domain.Person
	sessionID string
	logger    *zap.Logger
}

// Option configura un PersonBuilder.
type Option func(*PersonBuilder)

// WithLogger traza los cambios de faceta y los setters en nivel debug.
func WithLogger(logger *zap.Logger) Option {
	return func(b *PersonBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewPersonBuilder crea el builder raíz con una persona vacía.
func NewPersonBuilder(opts ...Option) *PersonBuilder {
	b := &PersonBuilder{
		person:    &domain.Person{},
		sessionID: uuid.NewString(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With(zap.String("session_id", b.sessionID))
	return b
}

// SessionID identifica la sesión de construcción en los logs.
func (b *PersonBuilder) SessionID() string {
	return b.sessionID
}

// Employment pasa a la faceta de empleo sobre la misma persona.
func (b *PersonBuilder) Employment() *EmploymentBuilder {
	b.logger.Debug("facet switch", zap.String("facet", "employment"))
	return &EmploymentBuilder{PersonBuilder: b}
}

// Address pasa a la faceta de domicilio sobre la misma persona.
func (b *PersonBuilder) Address() *AddressBuilder {
	b.logger.Debug("facet switch", zap.String("facet", "address"))
	return &AddressBuilder{PersonBuilder: b}
}

// CommonInfo pasa a la faceta de datos comunes sobre la misma persona.
func (b *PersonBuilder) CommonInfo() *CommonInfoBuilder {
	b.logger.Debug("facet switch", zap.String("facet", "common_info"))
	return &CommonInfoBuilder{PersonBuilder: b}
}

// Build expone la persona acumulada. No reinicia el estado: llamadas
// sucesivas devuelven el mismo puntero.
func (b *PersonBuilder) Build() *domain.Person {
	b.logger.Debug("person built")
	return b.person
}

func (b *PersonBuilder) set(field string, value zap.Field) {
	b.logger.Debug("field set", zap.String("field", field), value)
}
