package evaluator

import "fmt"

// Tier nivel de eficiencia derivado del puntaje
type Tier int

const (
	TierLow Tier = iota
	TierSatisfactory
	TierOptimal
)

// Thresholds límites de los niveles. Un puntaje mayor que OptimalAbove es
// Optimal; menor que SatisfactoryFrom es Low; el resto, ambos límites
// incluidos, es Satisfactory.
type Thresholds struct {
	OptimalAbove     float64 `json:"optimal_above" yaml:"optimal_above"`
	SatisfactoryFrom float64 `json:"satisfactory_from" yaml:"satisfactory_from"`
}

// DefaultThresholds límites fijos del modelo
var DefaultThresholds = Thresholds{OptimalAbove: 100, SatisfactoryFrom: 70}

// Classify asigna el nivel correspondiente a un puntaje
func (t Thresholds) Classify(score float64) Tier {
	switch {
	case score > t.OptimalAbove:
		return TierOptimal
	case score >= t.SatisfactoryFrom:
		return TierSatisfactory
	default:
		return TierLow
	}
}

var tierNames = map[Tier]string{
	TierLow:          "Low",
	TierSatisfactory: "Satisfactory",
	TierOptimal:      "Optimal",
}

// Headlines texto de cabecera de cada nivel, para los renderizadores
var Headlines = map[Tier]string{
	TierOptimal:      "Efficiency is optimal! Parameters are well-suited for ethanol production.",
	TierSatisfactory: "Efficiency is satisfactory, but adjustments could improve yield.",
	TierLow:          "Efficiency is low. Consider optimizing sugar, yeast, fermentation, or distillation parameters.",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Headline devuelve el texto de cabecera del nivel
func (t Tier) Headline() string {
	return Headlines[t]
}

// MarshalText permite que JSON y YAML usen el nombre del nivel
func (t Tier) MarshalText() ([]byte, error) {
	if _, ok := tierNames[t]; !ok {
		return nil, fmt.Errorf("nivel desconocido: %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText acepta el nombre del nivel
func (t *Tier) UnmarshalText(text []byte) error {
	for tier, name := range tierNames {
		if name == string(text) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("nivel desconocido: %q", string(text))
}
