// Package evaluator implementa el motor de puntuación de eficiencia de una
// corrida de fermentación. Es una función pura sobre las tablas de referencia:
// no hace I/O ni guarda estado entre evaluaciones.
package evaluator

import (
	"fmt"
	"strconv"

	"github.com/PhelGc/fermenta/internal/reference"
)

// Rangos y factores fijos del modelo
const (
	YeastMassMinGrams = 10.0
	YeastMassMaxGrams = 30.0
	// FermentationWindowHours margen alrededor de la duración óptima de la levadura
	FermentationWindowHours = 10.0

	OffRangeYeastFactor  = 0.6
	InRangeFermentation  = 1.3
	OffRangeFermentation = 0.7
	InRangeDistillation  = 1.2
	OffRangeDistillation = 0.5
	ScoreScale           = 100.0
)

// Textos de las sugerencias
const (
	MessageInvalidYeast            = "invalid yeast type"
	MessageDistillationTemperature = "consider switching yeast type to better match distillation temperature"
	messageFermentationTimeFormat  = "adjust fermentation time closer to the optimal range for this yeast type: %s hours"
)

// Engine calcula puntajes usando un conjunto fijo de tablas de referencia
type Engine struct {
	tables     reference.Tables
	thresholds Thresholds
}

// NewEngine crea un motor con las tablas indicadas y los límites por defecto
func NewEngine(tables reference.Tables) *Engine {
	return &Engine{tables: tables, thresholds: DefaultThresholds}
}

// Thresholds devuelve los límites de nivel que usa el motor
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Score evalúa una corrida. Es total: cualquier entrada produce un resultado.
func (e *Engine) Score(params ProductionParameters) Result {
	yeast := e.tables.LookupYeast(params.YeastType)

	factors := Factors{
		Sugar:        e.tables.LookupSugar(params.SugarType),
		Yeast:        OffRangeYeastFactor,
		Fermentation: OffRangeFermentation,
		Distillation: OffRangeDistillation,
	}
	if within(params.YeastMassGrams, YeastMassMinGrams, YeastMassMaxGrams) {
		factors.Yeast = yeast.BaseEfficiency
	}
	if fermentationInRange(params.FermentationHours, yeast) {
		factors.Fermentation = InRangeFermentation
	}
	if distillationInRange(params.DistillationTempC, yeast) {
		factors.Distillation = InRangeDistillation
	}

	score := factors.Sugar * factors.Yeast * factors.Fermentation * factors.Distillation * ScoreScale
	result := Result{
		Score:      score,
		Tier:       e.thresholds.Classify(score),
		Factors:    factors,
		Advisories: []Advisory{},
	}
	if result.Tier != TierOptimal {
		result.Advisories = e.adviseYeastTuning(params, yeast)
	}
	return result
}

// adviseYeastTuning arma las sugerencias para un resultado no óptimo.
// Con una levadura desconocida el perfil es el sustituto por defecto, así que
// solo se informa eso y no se revisa temperatura ni tiempo.
func (e *Engine) adviseYeastTuning(params ProductionParameters, yeast reference.YeastProfile) []Advisory {
	if !e.tables.KnownYeast(params.YeastType) {
		return []Advisory{{Kind: AdvisoryInvalidYeast, Message: MessageInvalidYeast}}
	}

	advisories := []Advisory{}
	if !distillationInRange(params.DistillationTempC, yeast) {
		advisories = append(advisories, Advisory{
			Kind:    AdvisoryDistillationTemperature,
			Message: MessageDistillationTemperature,
		})
	}
	if !fermentationInRange(params.FermentationHours, yeast) {
		advisories = append(advisories, Advisory{
			Kind:    AdvisoryFermentationTime,
			Message: fmt.Sprintf(messageFermentationTimeFormat, strconv.FormatFloat(yeast.OptimalFermentationHours, 'g', -1, 64)),
		})
	}
	return advisories
}

func fermentationInRange(hours float64, yeast reference.YeastProfile) bool {
	return within(hours,
		yeast.OptimalFermentationHours-FermentationWindowHours,
		yeast.OptimalFermentationHours+FermentationWindowHours)
}

func distillationInRange(tempC float64, yeast reference.YeastProfile) bool {
	return within(tempC, yeast.MinTempC, yeast.MaxTempC)
}

// within es falso para NaN, que queda fuera de rango
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
