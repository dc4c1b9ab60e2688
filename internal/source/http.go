package source

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTP descarga un lote de texto plano desde una URL
type HTTP struct {
	url        string
	username   string
	apiToken   string
	httpClient *http.Client
}

// NewHTTP crea una fuente HTTP. Si username no está vacío se envía
// autenticación básica con username y apiToken.
func NewHTTP(url, username, apiToken string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTP{
		url:        url,
		username:   username,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (h *HTTP) Name() string { return h.url }

// Lines hace un GET y devuelve el cuerpo línea por línea
func (h *HTTP) Lines() ([]string, error) {
	req, err := http.NewRequest(http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creando request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	if h.username != "" {
		req.SetBasicAuth(h.username, h.apiToken)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error haciendo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("error descargando lote (status %d): %s", resp.StatusCode, string(body))
	}

	return readLines(resp.Body)
}
