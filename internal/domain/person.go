package domain

import "encoding/json"

// Person agrupa los datos de identidad, domicilio y empleo de una persona.
type Person struct {
	// domicilio
	StreetAddress string `json:"streetAddress" yaml:"streetAddress"`
	PostalCode    string `json:"postalCode" yaml:"postalCode"`
	City          string `json:"city" yaml:"city"`
	// empleo
	Position     string `json:"position" yaml:"position"`
	CompanyName  string `json:"employer" yaml:"employer"`
	AnnualIncome int    `json:"annualIncome" yaml:"annualIncome"`
	// datos comunes
	Age int `json:"age" yaml:"age"`
}

// String devuelve el JSON indentado de la persona.
func (p *Person) String() string {
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "render person: " + err.Error()
	}
	return string(out)
}
