// Package auth define el verificador de credenciales que usa el evaluador por
// lotes. El verificador estático es solo un sustituto; un backend real (ver
// internal/database) implementa la misma interfaz.
package auth

// Usuario y contraseña por defecto del verificador estático
const (
	DefaultUsername = "admin"
	DefaultPassword = "password123"
)

// Verifier decide si un par usuario/contraseña está autorizado
type Verifier interface {
	Verify(username, password string) bool
}

// VerifierFunc adapta una función a Verifier
type VerifierFunc func(username, password string) bool

// Verify llama a f(username, password)
func (f VerifierFunc) Verify(username, password string) bool {
	return f(username, password)
}

// Static compara contra un único par fijo. Es una comparación directa,
// no criptográfica.
type Static struct {
	Username string
	Password string
}

// NewStatic crea un verificador estático; valores vacíos usan los por defecto
func NewStatic(username, password string) Static {
	if username == "" {
		username = DefaultUsername
	}
	if password == "" {
		password = DefaultPassword
	}
	return Static{Username: username, Password: password}
}

// Verify compara ambos campos por igualdad
func (s Static) Verify(username, password string) bool {
	return username == s.Username && password == s.Password
}
