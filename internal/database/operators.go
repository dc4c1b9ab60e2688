// Package database guarda los operadores autorizados a evaluar lotes.
// Funciona sobre MySQL o SQLite; Client implementa auth.Verifier.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/PhelGc/fermenta/internal/config"
	"github.com/PhelGc/fermenta/internal/logging"
)

type Client struct {
	db     *sqlx.DB
	driver string
	logger *zap.Logger
}

// Operator operador registrado. El hash nunca sale de este paquete.
type Operator struct {
	Username  string    `db:"username" json:"username"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewClient abre la base configurada y verifica la conexión
func NewClient(cfg config.DatabaseConfig, logger *zap.Logger) (*Client, error) {
	var dsn string
	switch cfg.Driver {
	case "mysql":
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Local",
			cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
	case "sqlite":
		dsn = cfg.SQLitePath + "?_pragma=busy_timeout(5000)"
	default:
		return nil, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
	return Open(cfg.Driver, dsn, logger)
}

// Open abre una conexión con un DSN ya armado
func Open(driver, dsn string, logger *zap.Logger) (*Client, error) {
	logger = logging.OrNop(logger)

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error conectando a %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// SQLite no admite escritores concurrentes
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error haciendo ping a %s: %w", driver, err)
	}

	logger.Debug("conexión establecida", zap.String("driver", driver))

	return &Client{db: db, driver: driver, logger: logger}, nil
}

// CreateOperatorsTable crea la tabla operators si no existe
func (c *Client) CreateOperatorsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS operators (
		username      VARCHAR(255) NOT NULL PRIMARY KEY,
		password_hash VARCHAR(255) NOT NULL,
		created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := c.db.Exec(query); err != nil {
		return fmt.Errorf("error creando tabla operators: %w", err)
	}

	c.logger.Debug("tabla operators verificada/creada")
	return nil
}

// UpsertOperator registra un operador o reemplaza su contraseña
func (c *Client) UpsertOperator(username, password string) error {
	if username == "" || password == "" {
		return errors.New("usuario y contraseña son obligatorios")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error generando hash para %s: %w", username, err)
	}

	query := `
	INSERT INTO operators (username, password_hash)
	VALUES (?, ?)
	ON DUPLICATE KEY UPDATE password_hash = VALUES(password_hash)`
	if c.driver == "sqlite" {
		query = `
	INSERT INTO operators (username, password_hash)
	VALUES (?, ?)
	ON CONFLICT(username) DO UPDATE SET password_hash = excluded.password_hash`
	}

	if _, err := c.db.Exec(query, username, string(hash)); err != nil {
		return fmt.Errorf("error guardando operador %s: %w", username, err)
	}
	return nil
}

// DeleteOperator elimina un operador. Devuelve false si no existía.
func (c *Client) DeleteOperator(username string) (bool, error) {
	result, err := c.db.Exec(`DELETE FROM operators WHERE username = ?`, username)
	if err != nil {
		return false, fmt.Errorf("error eliminando operador %s: %w", username, err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// ListOperators devuelve los operadores ordenados por nombre
func (c *Client) ListOperators() ([]Operator, error) {
	var operators []Operator
	if err := c.db.Select(&operators, `SELECT username, created_at FROM operators ORDER BY username`); err != nil {
		return nil, fmt.Errorf("error listando operadores: %w", err)
	}
	return operators, nil
}

// Verify implementa auth.Verifier. Los errores de la base se registran y
// cuentan como credencial rechazada.
func (c *Client) Verify(username, password string) bool {
	var hash string
	err := c.db.Get(&hash, `SELECT password_hash FROM operators WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		c.logger.Warn("error consultando operador", zap.String("username", username), zap.Error(err))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Close cierra la conexión con la base de datos
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
