// Package report exporta el resultado de un lote a un archivo JSON. Cada
// entrada tiene un único archivo: volver a evaluarla lo reemplaza.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PhelGc/fermenta/internal/render"
)

// Report reporte exportado de un lote
type Report struct {
	RunID       string               `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Batch       render.BatchDocument `json:"batch"`
}

// New crea un reporte con un identificador de corrida nuevo
func New(doc render.BatchDocument) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Batch:       doc,
	}
}

// Store escribe reportes bajo un directorio base
type Store struct {
	basePath string
}

// NewStore crea el directorio base si no existe
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("error creando directorio de reportes: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// Save escribe el reporte y devuelve la ruta del archivo
func (s *Store) Save(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error serializando reporte: %w", err)
	}

	path := s.Path(r.Batch.Source)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("error escribiendo reporte: %w", err)
	}
	return path, nil
}

// Load lee el reporte guardado para una fuente
func (s *Store) Load(source string) (*Report, error) {
	data, err := os.ReadFile(s.Path(source))
	if err != nil {
		return nil, err
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("error parseando reporte: %w", err)
	}
	return &r, nil
}

// Path ruta del reporte de una fuente
func (s *Store) Path(source string) string {
	return filepath.Join(s.basePath, fileName(source))
}

var unsafeChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "?", "_",
	"*", "_", "<", "_", ">", "_", "|", "_", " ", "_",
)

// fileName genera el nombre del archivo para una fuente, que puede ser una
// ruta o una URL
func fileName(source string) string {
	if source == "" {
		source = "stdin"
	}
	name := strings.TrimPrefix(source, "https://")
	name = strings.TrimPrefix(name, "http://")
	if !strings.Contains(source, "://") {
		name = filepath.Base(name)
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return unsafeChars.Replace(name) + ".report.json"
}
