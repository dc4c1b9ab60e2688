// Package simulate genera series de corridas con parámetros aleatorios y las
// puntúa con el motor, para observar cómo varía la eficiencia en el tiempo.
package simulate

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/PhelGc/fermenta/internal/evaluator"
	"github.com/PhelGc/fermenta/internal/reference"
)

// Mode forma de generar los parámetros de cada paso
type Mode string

const (
	// ModeUniform sortea cada paso de forma independiente
	ModeUniform Mode = "uniform"
	// ModeDrift fija azúcar y levadura y mueve los valores continuos
	// siguiendo ruido simplex, así pasos vecinos se parecen.
	ModeDrift Mode = "drift"
)

// Range intervalo cerrado [Min, Max]
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// at interpola dentro del rango; t se acota a [0, 1]
func (r Range) at(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return r.Min + (r.Max-r.Min)*t
}

// Ranges rangos de muestreo de los parámetros continuos
type Ranges struct {
	SugarMassGrams    Range `json:"sugar_mass_grams" yaml:"sugar_mass_grams"`
	YeastMassGrams    Range `json:"yeast_mass_grams" yaml:"yeast_mass_grams"`
	FermentationHours Range `json:"fermentation_hours" yaml:"fermentation_hours"`
	DistillationTempC Range `json:"distillation_temp_c" yaml:"distillation_temp_c"`
}

// DefaultRanges rangos por defecto de la simulación
var DefaultRanges = Ranges{
	SugarMassGrams:    Range{80, 120},
	YeastMassGrams:    Range{20, 40},
	FermentationHours: Range{40, 60},
	DistillationTempC: Range{20, 40},
}

// Config parámetros de una simulación
type Config struct {
	Steps  int
	Seed   int64
	Mode   Mode
	Ranges Ranges
	// Frequency avance del ruido por paso en modo drift
	Frequency float64
}

// DefaultConfig 100 pasos uniformes con semilla 1
func DefaultConfig() Config {
	return Config{Steps: 100, Seed: 1, Mode: ModeUniform, Ranges: DefaultRanges, Frequency: 0.08}
}

// Step un paso de la serie
type Step struct {
	Index  int                            `json:"index" yaml:"index"`
	Params evaluator.ProductionParameters `json:"params" yaml:"params"`
	Result evaluator.Result               `json:"result" yaml:"result"`
}

// Scorer es lo que la simulación necesita del motor
type Scorer interface {
	Score(params evaluator.ProductionParameters) evaluator.Result
}

// Run genera cfg.Steps pasos. La misma configuración produce siempre la
// misma serie.
func Run(scorer Scorer, cfg Config) ([]Step, error) {
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("steps debe ser positivo, valor %d", cfg.Steps)
	}

	var gen func(i int) evaluator.ProductionParameters
	switch cfg.Mode {
	case ModeUniform, "":
		gen = uniform(cfg)
	case ModeDrift:
		gen = drift(cfg)
	default:
		return nil, fmt.Errorf("modo de simulación desconocido: %q", cfg.Mode)
	}

	steps := make([]Step, 0, cfg.Steps)
	for i := 0; i < cfg.Steps; i++ {
		params := gen(i)
		steps = append(steps, Step{Index: i, Params: params, Result: scorer.Score(params)})
	}
	return steps, nil
}

func uniform(cfg Config) func(int) evaluator.ProductionParameters {
	rng := rand.New(rand.NewSource(cfg.Seed))
	sugars, yeasts := reference.Sugars(), reference.Yeasts()

	return func(int) evaluator.ProductionParameters {
		return evaluator.ProductionParameters{
			SugarType:         sugars[rng.Intn(len(sugars))].String(),
			YeastType:         yeasts[rng.Intn(len(yeasts))].String(),
			SugarMassGrams:    cfg.Ranges.SugarMassGrams.at(rng.Float64()),
			YeastMassGrams:    cfg.Ranges.YeastMassGrams.at(rng.Float64()),
			FermentationHours: cfg.Ranges.FermentationHours.at(rng.Float64()),
			DistillationTempC: cfg.Ranges.DistillationTempC.at(rng.Float64()),
		}
	}
}

func drift(cfg Config) func(int) evaluator.ProductionParameters {
	rng := rand.New(rand.NewSource(cfg.Seed))
	sugars, yeasts := reference.Sugars(), reference.Yeasts()
	sugar := sugars[rng.Intn(len(sugars))].String()
	yeast := yeasts[rng.Intn(len(yeasts))].String()

	// Un generador independiente por parámetro continuo
	sugarNoise := opensimplex.NewNormalized(cfg.Seed)
	yeastNoise := opensimplex.NewNormalized(cfg.Seed + 1)
	hoursNoise := opensimplex.NewNormalized(cfg.Seed + 2)
	tempNoise := opensimplex.NewNormalized(cfg.Seed + 3)

	freq := cfg.Frequency
	if freq <= 0 {
		freq = DefaultConfig().Frequency
	}

	return func(i int) evaluator.ProductionParameters {
		x := float64(i) * freq
		return evaluator.ProductionParameters{
			SugarType:         sugar,
			YeastType:         yeast,
			SugarMassGrams:    cfg.Ranges.SugarMassGrams.at(sugarNoise.Eval2(x, 0)),
			YeastMassGrams:    cfg.Ranges.YeastMassGrams.at(yeastNoise.Eval2(x, 0)),
			FermentationHours: cfg.Ranges.FermentationHours.at(hoursNoise.Eval2(x, 0)),
			DistillationTempC: cfg.Ranges.DistillationTempC.at(tempNoise.Eval2(x, 0)),
		}
	}
}

// Stats estadísticas de una serie
type Stats struct {
	Steps int     `json:"steps" yaml:"steps"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Mean  float64 `json:"mean" yaml:"mean"`
}

// Summarize calcula mínimo, máximo y media de los puntajes
func Summarize(steps []Step) Stats {
	if len(steps) == 0 {
		return Stats{}
	}
	s := Stats{Steps: len(steps), Min: steps[0].Result.Score, Max: steps[0].Result.Score}
	total := 0.0
	for _, step := range steps {
		score := step.Result.Score
		total += score
		if score < s.Min {
			s.Min = score
		}
		if score > s.Max {
			s.Max = score
		}
	}
	s.Mean = total / float64(len(steps))
	return s
}
