package source

import (
	"fmt"
	"os"
)

// File lee un lote desde disco. El archivo se abre en cada llamada a Lines
// y se cierra antes de volver.
type File struct {
	path string
}

// NewFile crea una fuente de archivo
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string { return f.path }

// Lines lee el archivo completo. Falla explícitamente si no existe.
func (f *File) Lines() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el lote (%s): %w", f.path, err)
	}
	defer file.Close()

	lines, err := readLines(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return lines, nil
}
