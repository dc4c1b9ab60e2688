package batch

import (
	"math"
	"strconv"
	"strings"

	"github.com/PhelGc/fermenta/internal/evaluator"
)

// FieldCount número exacto de campos de una línea de lote:
// usuario, contraseña, azúcar, levadura, masa de azúcar, masa de levadura,
// horas de fermentación y temperatura de destilación.
const FieldCount = 8

// Record línea de lote ya tokenizada
type Record struct {
	Username string
	Password string
	Params   evaluator.ProductionParameters
}

// ParseLine tokeniza una línea por espacios. Devuelve false si no tiene
// exactamente FieldCount campos o si algún campo numérico no es un número finito.
func ParseLine(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) != FieldCount {
		return Record{}, false
	}

	var nums [4]float64
	for i, raw := range fields[4:] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, false
		}
		nums[i] = v
	}

	return Record{
		Username: fields[0],
		Password: fields[1],
		Params: evaluator.ProductionParameters{
			SugarType:         fields[2],
			YeastType:         fields[3],
			SugarMassGrams:    nums[0],
			YeastMassGrams:    nums[1],
			FermentationHours: nums[2],
			DistillationTempC: nums[3],
		},
	}, true
}
