package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/PhelGc/fermenta/internal/evaluator"
)

// JSON escribe un documento JSON por llamada
type JSON struct {
	Indent string
}

func (j JSON) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(v)
}

func (j JSON) Result(w io.Writer, params evaluator.ProductionParameters, result evaluator.Result) error {
	return j.encode(w, ResultDocument{Params: params, Result: result})
}

func (j JSON) Batch(w io.Writer, doc BatchDocument) error {
	return j.encode(w, doc)
}

func (j JSON) Simulation(w io.Writer, doc SimulationDocument) error {
	return j.encode(w, doc)
}

// YAML escribe un documento YAML por llamada
type YAML struct{}

func (YAML) encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (y YAML) Result(w io.Writer, params evaluator.ProductionParameters, result evaluator.Result) error {
	return y.encode(w, ResultDocument{Params: params, Result: result})
}

func (y YAML) Batch(w io.Writer, doc BatchDocument) error {
	return y.encode(w, doc)
}

func (y YAML) Simulation(w io.Writer, doc SimulationDocument) error {
	return y.encode(w, doc)
}
