package evaluator

// ProductionParameters parámetros de una corrida de fermentación.
// Se crean por solicitud y no se modifican después.
type ProductionParameters struct {
	SugarType         string  `json:"sugar_type" yaml:"sugar_type"`
	YeastType         string  `json:"yeast_type" yaml:"yeast_type"`
	SugarMassGrams    float64 `json:"sugar_mass_grams" yaml:"sugar_mass_grams"`
	YeastMassGrams    float64 `json:"yeast_mass_grams" yaml:"yeast_mass_grams"`
	FermentationHours float64 `json:"fermentation_hours" yaml:"fermentation_hours"`
	DistillationTempC float64 `json:"distillation_temp_c" yaml:"distillation_temp_c"`
}

// Factors desglose de los cuatro factores que forman el puntaje
type Factors struct {
	Sugar        float64 `json:"sugar" yaml:"sugar"`
	Yeast        float64 `json:"yeast" yaml:"yeast"`
	Fermentation float64 `json:"fermentation" yaml:"fermentation"`
	Distillation float64 `json:"distillation" yaml:"distillation"`
}

// Result resultado de una evaluación
type Result struct {
	Score      float64    `json:"score" yaml:"score"`
	Tier       Tier       `json:"tier" yaml:"tier"`
	Factors    Factors    `json:"factors" yaml:"factors"`
	Advisories []Advisory `json:"advisories" yaml:"advisories"` // vacío si el nivel es Optimal
}

// AdvisoryKind tipo de sugerencia
type AdvisoryKind string

const (
	AdvisoryInvalidYeast            AdvisoryKind = "invalid_yeast"
	AdvisoryDistillationTemperature AdvisoryKind = "distillation_temperature"
	AdvisoryFermentationTime        AdvisoryKind = "fermentation_time"
)

// Advisory sugerencia de ajuste asociada a un resultado no óptimo
type Advisory struct {
	Kind    AdvisoryKind `json:"kind" yaml:"kind"`
	Message string       `json:"message" yaml:"message"`
}

// Messages devuelve solo los textos de las sugerencias, en orden
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Advisories))
	for _, a := range r.Advisories {
		out = append(out, a.Message)
	}
	return out
}
