package model

// Domain constants shared by the engine and the render layer.
const (
	// DefaultHourlyRate is the rate a fresh budget starts with, in USD.
	DefaultHourlyRate = 15.0

	// IGVRate is the Peruvian value-added tax applied when IGVEnabled is set.
	IGVRate = 0.18

	// HoursPerWeek converts total hours into a week estimate.
	HoursPerWeek = 40.0

	// AdvanceRate is the conventional initial payment share of the total.
	AdvanceRate = 0.20

	// WeeksToken is replaced in TimeEstimate with the computed week count
	// (one decimal place) at render time. Stored verbatim until then.
	WeeksToken = "[SEMANAS]"
)

// Default narrative texts, shown on the proposal until the user edits them.
const (
	DefaultTerms = `- Tiempo estimado de desarrollo: 6 a 8 semanas
- Forma de pago: 40% anticipo, 30% intermedio, 30% a la entrega
- Soporte post-lanzamiento: Opcional con costo adicional`

	DefaultPaymentTerms = `El resto del pago se distribuirá por etapas según el avance del proyecto.

Cada etapa completada requerirá la aprobación del cliente antes de proceder con el siguiente pago.`

	DefaultSupportTerms = `Se incluye 1 mes de soporte gratuito después de la entrega final del proyecto para resolver cualquier incidencia.

Después del período de soporte gratuito, cualquier mantenimiento o modificación adicional será cotizado por separado.`

	DefaultTimeEstimate = `El tiempo estimado para completar este proyecto es de [SEMANAS] semanas de trabajo.

El proyecto estará finalizado en aproximadamente 3 meses (considerando una semana laboral de 40 horas).`

	DefaultProjectNote = `Nota: Cualquier desarrollo previo debe tener un prototipo de diseño aprobado, el cual está incluido en este presupuesto.`
)

// DefaultCompanyInfo returns the placeholder company identity.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{Name: "Tu Empresa"}
}

// DefaultBudget returns a fresh budget with all defaults applied and no
// projects. The date is left zero; the engine stamps it on first access.
func DefaultBudget() Budget {
	return Budget{
		CompanyInfo:  DefaultCompanyInfo(),
		HourlyRate:   DefaultHourlyRate,
		IGVEnabled:   true,
		Terms:        DefaultTerms,
		PaymentTerms: DefaultPaymentTerms,
		SupportTerms: DefaultSupportTerms,
		TimeEstimate: DefaultTimeEstimate,
		ProjectNote:  DefaultProjectNote,
		Projects:     []Project{},
	}
}
