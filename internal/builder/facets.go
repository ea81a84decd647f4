package builder

import "go.uber.org/zap"

// EmploymentBuilder setea los datos laborales.
type EmploymentBuilder struct {
	*PersonBuilder
}

// At setea el empleador.
func (b *EmploymentBuilder) At(companyName string) *EmploymentBuilder {
	b.person.CompanyName = companyName
	b.set("employer", zap.String("value", companyName))
	return b
}

// AsA setea el puesto.
func (b *EmploymentBuilder) AsA(position string) *EmploymentBuilder {
	b.person.Position = position
	b.set("position", zap.String("value", position))
	return b
}

// Earning setea el ingreso anual. No se valida el signo.
func (b *EmploymentBuilder) Earning(amount int) *EmploymentBuilder {
	b.person.AnnualIncome = amount
	b.set("annual_income", zap.Int("value", amount))
	return b
}

// AddressBuilder setea el domicilio.
type AddressBuilder struct {
	*PersonBuilder
}

// At setea la calle.
func (b *AddressBuilder) At(streetAddress string) *AddressBuilder {
	b.person.StreetAddress = streetAddress
	b.set("street_address", zap.String("value", streetAddress))
	return b
}

// WithPostalCode setea el código postal.
func (b *AddressBuilder) WithPostalCode(postalCode string) *AddressBuilder {
	b.person.PostalCode = postalCode
	b.set("postal_code", zap.String("value", postalCode))
	return b
}

// In setea la ciudad.
func (b *AddressBuilder) In(city string) *AddressBuilder {
	b.person.City = city
	b.set("city", zap.String("value", city))
	return b
}

// CommonInfoBuilder setea los datos que no pertenecen a otra faceta.
type CommonInfoBuilder struct {
	*PersonBuilder
}

// WithAge setea la edad. No se valida el signo.
func (b *CommonInfoBuilder) WithAge(age int) *CommonInfoBuilder {
	b.person.Age = age
	b.set("age", zap.Int("value", age))
	return b
}
