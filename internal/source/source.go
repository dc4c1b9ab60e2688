// Package source lee las líneas de un lote desde un archivo, un io.Reader o
// una URL HTTP. Cada fuente libera su recurso al terminar, también cuando la
// lectura falla a mitad de camino.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PhelGc/fermenta/internal/config"
)

// maxLineBytes límite de una línea individual del lote. Una línea más larga
// se entrega vacía, para que el evaluador la descarte como mal formada sin
// perder el resto del lote ni la numeración.
const maxLineBytes = 1024 * 1024

// LineSource entrega las líneas crudas de un lote, en orden
type LineSource interface {
	// Name identifica la fuente (ruta, URL o "stdin")
	Name() string
	Lines() ([]string, error)
}

// Open elige la fuente según la ubicación: "-" es stdin, http:// o https://
// una URL y cualquier otra cosa una ruta de archivo.
func Open(location string, cfg config.SourceConfig, stdin io.Reader) LineSource {
	switch {
	case location == "-":
		return NewReader("stdin", stdin)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTP(location, cfg.Username, cfg.APIToken, time.Duration(cfg.TimeoutSeconds)*time.Second)
	default:
		return NewFile(location)
	}
}

// readLines consume r completo, una entrada por línea, sin el salto final
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReaderSize(r, 64*1024)
	var line []byte
	overlong := false

	for {
		chunk, isPrefix, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error leyendo líneas: %w", err)
		}

		if !overlong {
			if len(line)+len(chunk) > maxLineBytes {
				overlong = true
				line = line[:0]
			} else {
				line = append(line, chunk...)
			}
		}
		if isPrefix {
			continue
		}

		if overlong {
			lines = append(lines, "")
		} else {
			lines = append(lines, string(line))
		}
		line = line[:0]
		overlong = false
	}
	return lines, nil
}

// Reader lee desde un io.Reader ya abierto; no lo cierra
type Reader struct {
	name string
	r    io.Reader
}

// NewReader crea una fuente sobre r
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

func (s *Reader) Name() string { return s.name }

// Lines lee todas las líneas de r
func (s *Reader) Lines() ([]string, error) {
	return readLines(s.r)
}
