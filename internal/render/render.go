// Package render convierte resultados del motor en texto para el usuario.
// Los textos de cabecera, los límites de nivel y el orden de las sugerencias
// vienen del paquete evaluator; aquí solo se les da formato.
package render

import (
	"fmt"
	"io"

	"github.com/PhelGc/fermenta/internal/batch"
	"github.com/PhelGc/fermenta/internal/evaluator"
	"github.com/PhelGc/fermenta/internal/simulate"
)

// Formatos soportados
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer da formato a una evaluación, un lote o una simulación
type Renderer interface {
	Result(w io.Writer, params evaluator.ProductionParameters, result evaluator.Result) error
	Batch(w io.Writer, doc BatchDocument) error
	Simulation(w io.Writer, doc SimulationDocument) error
}

// ResultDocument una evaluación individual
type ResultDocument struct {
	Params evaluator.ProductionParameters `json:"params" yaml:"params"`
	Result evaluator.Result               `json:"result" yaml:"result"`
}

// BatchDocument todo lo que se muestra de un lote
type BatchDocument struct {
	Source     string               `json:"source" yaml:"source"`
	Thresholds evaluator.Thresholds `json:"thresholds" yaml:"thresholds"`
	Summary    batch.Summary        `json:"summary" yaml:"summary"`
	Outcomes   []batch.Outcome      `json:"outcomes" yaml:"outcomes"`
}

// SimulationDocument una serie simulada y sus estadísticas
type SimulationDocument struct {
	Mode  simulate.Mode   `json:"mode" yaml:"mode"`
	Seed  int64           `json:"seed" yaml:"seed"`
	Stats simulate.Stats  `json:"stats" yaml:"stats"`
	Steps []simulate.Step `json:"steps" yaml:"steps"`
}

// New devuelve el renderizador del formato pedido. color solo afecta a text.
func New(format string, color bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewText(color), nil
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	case FormatYAML:
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("formato desconocido: %q", format)
	}
}
