// Package reference contiene las tablas fijas de azúcares y levaduras usadas
// por el motor de puntuación. Son constantes de referencia: se construyen una
// sola vez y nunca se modifican.
package reference

// Sugar identifica un azúcar conocido. SugarUnknown es el valor cero.
type Sugar int

const (
	SugarUnknown Sugar = iota
	SugarGlucose
	SugarSucrose
	SugarFructose
	SugarMaltose
	SugarLactose
)

// Yeast identifica una levadura conocida. YeastUnknown es el valor cero.
type Yeast int

const (
	YeastUnknown Yeast = iota
	YeastSaccharomycesCerevisiae
	YeastKluyveromycesLactis
	YeastZymomonasMobilis
	YeastSchizosaccharomycesPombe
)

// DefaultSugarMultiplier se aplica a cualquier azúcar no registrado
const DefaultSugarMultiplier = 0.9

// DefaultYeastProfile se aplica a cualquier levadura no registrada
var DefaultYeastProfile = YeastProfile{
	BaseEfficiency:           0.8,
	OptimalFermentationHours: 48,
	MinTempC:                 20,
	MaxTempC:                 35,
}

// YeastProfile datos de calibración de una levadura
type YeastProfile struct {
	BaseEfficiency           float64 `json:"base_efficiency" yaml:"base_efficiency"`
	OptimalFermentationHours float64 `json:"optimal_fermentation_hours" yaml:"optimal_fermentation_hours"`
	MinTempC                 float64 `json:"min_temp_c" yaml:"min_temp_c"`
	MaxTempC                 float64 `json:"max_temp_c" yaml:"max_temp_c"`
}

var sugarNames = map[Sugar]string{
	SugarGlucose:  "glucose",
	SugarSucrose:  "sucrose",
	SugarFructose: "fructose",
	SugarMaltose:  "maltose",
	SugarLactose:  "lactose",
}

var yeastNames = map[Yeast]string{
	YeastSaccharomycesCerevisiae:  "Saccharomyces cerevisiae",
	YeastKluyveromycesLactis:      "Kluyveromyces lactis",
	YeastZymomonasMobilis:         "Zymomonas mobilis",
	YeastSchizosaccharomycesPombe: "Schizosaccharomyces pombe",
}

// ParseSugar convierte un identificador en su variante. Nunca falla:
// los identificadores desconocidos devuelven SugarUnknown.
func ParseSugar(id string) Sugar {
	for s, name := range sugarNames {
		if name == id {
			return s
		}
	}
	return SugarUnknown
}

// ParseYeast convierte un identificador en su variante. Solo acepta el
// nombre exacto de la tabla; cualquier otro devuelve YeastUnknown.
func ParseYeast(id string) Yeast {
	for y, name := range yeastNames {
		if name == id {
			return y
		}
	}
	return YeastUnknown
}

func (s Sugar) String() string {
	if name, ok := sugarNames[s]; ok {
		return name
	}
	return "unknown"
}

func (y Yeast) String() string {
	if name, ok := yeastNames[y]; ok {
		return name
	}
	return "unknown"
}

// Sugars devuelve los azúcares conocidos en orden de declaración
func Sugars() []Sugar {
	return []Sugar{SugarGlucose, SugarSucrose, SugarFructose, SugarMaltose, SugarLactose}
}

// Yeasts devuelve las levaduras conocidas en orden de declaración
func Yeasts() []Yeast {
	return []Yeast{
		YeastSaccharomycesCerevisiae,
		YeastKluyveromycesLactis,
		YeastZymomonasMobilis,
		YeastSchizosaccharomycesPombe,
	}
}

// Tables agrupa las dos tablas de referencia. Se pasa por valor al motor;
// los mapas internos no se exponen, así que nadie puede mutarlos.
type Tables struct {
	sugars map[Sugar]float64
	yeasts map[Yeast]YeastProfile
}

// Default construye las tablas de referencia fijas
func Default() Tables {
	return Tables{
		sugars: map[Sugar]float64{
			SugarGlucose:  1.2,
			SugarSucrose:  1.1,
			SugarFructose: 1.3,
			SugarMaltose:  1.0,
			SugarLactose:  0.8,
		},
		yeasts: map[Yeast]YeastProfile{
			YeastSaccharomycesCerevisiae:  {BaseEfficiency: 1.0, OptimalFermentationHours: 48, MinTempC: 15, MaxTempC: 35},
			YeastKluyveromycesLactis:      {BaseEfficiency: 0.8, OptimalFermentationHours: 36, MinTempC: 20, MaxTempC: 30},
			YeastZymomonasMobilis:         {BaseEfficiency: 1.1, OptimalFermentationHours: 40, MinTempC: 25, MaxTempC: 40},
			YeastSchizosaccharomycesPombe: {BaseEfficiency: 0.9, OptimalFermentationHours: 60, MinTempC: 18, MaxTempC: 32},
		},
	}
}

// LookupSugar devuelve el multiplicador de rendimiento del azúcar,
// o DefaultSugarMultiplier si no está registrado.
func (t Tables) LookupSugar(id string) float64 {
	if m, ok := t.sugars[ParseSugar(id)]; ok {
		return m
	}
	return DefaultSugarMultiplier
}

// LookupYeast devuelve el perfil de la levadura, o DefaultYeastProfile
// si no está registrada.
func (t Tables) LookupYeast(id string) YeastProfile {
	if p, ok := t.yeasts[ParseYeast(id)]; ok {
		return p
	}
	return DefaultYeastProfile
}

// KnownYeast indica si el identificador corresponde a una levadura registrada
func (t Tables) KnownYeast(id string) bool {
	_, ok := t.yeasts[ParseYeast(id)]
	return ok
}
