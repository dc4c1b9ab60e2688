// Package batch aplica el motor de puntuación a una secuencia de líneas de
// texto, una corrida por línea, verificando las credenciales de cada una.
package batch

import (
	"strings"

	"github.com/PhelGc/fermenta/internal/auth"
	"github.com/PhelGc/fermenta/internal/evaluator"
)

// Status resultado de procesar una línea válida
type Status string

const (
	StatusScored   Status = "scored"
	StatusRejected Status = "rejected"
)

// Outcome resultado de una línea bien formada. Result es nil si las
// credenciales fueron rechazadas.
type Outcome struct {
	Line     int                             `json:"line" yaml:"line"` // número de línea, desde 1
	Username string                          `json:"username" yaml:"username"`
	Status   Status                          `json:"status" yaml:"status"`
	Params   *evaluator.ProductionParameters `json:"params,omitempty" yaml:"params,omitempty"`
	Result   *evaluator.Result               `json:"result,omitempty" yaml:"result,omitempty"`
}

// Scorer es lo que el evaluador necesita del motor
type Scorer interface {
	Score(params evaluator.ProductionParameters) evaluator.Result
}

// Evaluator procesa lotes. Nunca se detiene por una línea mala.
type Evaluator struct {
	scorer   Scorer
	verifier auth.Verifier

	// OnSkip, si no es nil, recibe cada línea descartada por mal formada.
	// Por defecto las líneas descartadas no dejan rastro.
	OnSkip func(lineNo int, line string)

	// NormalizeYeast, si no es nil, reescribe el identificador de levadura
	// antes de puntuar. Por defecto el identificador llega tal cual.
	NormalizeYeast func(id string) string
}

// SpacedYeast cambia guiones bajos por espacios, de modo que
// "Saccharomyces_cerevisiae" se busque como "Saccharomyces cerevisiae".
// Es opcional: sin él esa forma no está en la tabla.
func SpacedYeast(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// NewEvaluator crea un evaluador. Con verifier nil se usa el verificador
// estático por defecto.
func NewEvaluator(scorer Scorer, verifier auth.Verifier) *Evaluator {
	if verifier == nil {
		verifier = auth.NewStatic("", "")
	}
	return &Evaluator{scorer: scorer, verifier: verifier}
}

// Evaluate procesa las líneas en orden y devuelve un Outcome por cada línea
// bien formada, en el mismo orden. Las líneas mal formadas se omiten.
func (e *Evaluator) Evaluate(lines []string) []Outcome {
	outcomes := make([]Outcome, 0, len(lines))

	for i, line := range lines {
		record, ok := ParseLine(line)
		if !ok {
			if e.OnSkip != nil {
				e.OnSkip(i+1, line)
			}
			continue
		}

		outcome := Outcome{Line: i + 1, Username: record.Username, Status: StatusRejected}
		if e.verifier.Verify(record.Username, record.Password) {
			params := record.Params
			if e.NormalizeYeast != nil {
				params.YeastType = e.NormalizeYeast(params.YeastType)
			}
			result := e.scorer.Score(params)
			outcome.Status = StatusScored
			outcome.Params = &params
			outcome.Result = &result
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// Summary totales de un lote
type Summary struct {
	Lines        int `json:"lines" yaml:"lines"`
	Skipped      int `json:"skipped" yaml:"skipped"`
	Scored       int `json:"scored" yaml:"scored"`
	Rejected     int `json:"rejected" yaml:"rejected"`
	Optimal      int `json:"optimal" yaml:"optimal"`
	Satisfactory int `json:"satisfactory" yaml:"satisfactory"`
	Low          int `json:"low" yaml:"low"`
}

// Summarize cuenta los resultados de un lote de lineCount líneas
func Summarize(lineCount int, outcomes []Outcome) Summary {
	s := Summary{Lines: lineCount, Skipped: lineCount - len(outcomes)}
	for _, o := range outcomes {
		if o.Status != StatusScored || o.Result == nil {
			s.Rejected++
			continue
		}
		s.Scored++
		switch o.Result.Tier {
		case evaluator.TierOptimal:
			s.Optimal++
		case evaluator.TierSatisfactory:
			s.Satisfactory++
		default:
			s.Low++
		}
	}
	return s
}
