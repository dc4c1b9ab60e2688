package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhelGc/fermenta/internal/report"
)

// isolateEnv deja la configuración en sus valores por defecto
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FERMENTA_CONFIG", "AUTH_BACKEND", "AUTH_USERNAME", "AUTH_PASSWORD",
		"DB_DRIVER", "DB_SQLITE_PATH", "DISCORD_BOT_TOKEN", "DISCORD_CHANNEL_ID",
		"REPORT_BASE_PATH", "LOG_LEVEL", "LOG_DEVELOPMENT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeBatch(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestBatchCommandText(t *testing.T) {
	isolateEnv(t)
	path := writeBatch(t,
		"admin password123 glucose Saccharomyces_cerevisiae 20 20 48 25",
		"garbage line",
		"guest nope glucose Saccharomyces_cerevisiae 20 20 48 25",
		"admin password123 lactose unknownStrain 20 20 48 25",
	)

	out, err := run(t, "", "batch", "--color", "off", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Running test case with user: admin (line 1)")
	// sin --underscore-yeast la levadura no está en la tabla
	assert.Contains(t, out, "Ethanol Production Efficiency Score: 149.76%")
	assert.Contains(t, out, "Running test case with user: guest (line 3)")
	assert.Contains(t, out, "Access denied. Incorrect credentials.")
	assert.Contains(t, out, "invalid yeast type")
	assert.NotContains(t, out, "line 2)")
	assert.Contains(t, out, "4 lines, 2 scored, 1 rejected, 1 skipped")
}

func TestBatchCommandUnderscoreYeast(t *testing.T) {
	isolateEnv(t)
	path := writeBatch(t, "admin password123 glucose Saccharomyces_cerevisiae 20 20 48 25")

	out, err := run(t, "", "batch", "--color", "off", "--underscore-yeast", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Ethanol Production Efficiency Score: 187.2%")
}

func TestBatchCommandStdin(t *testing.T) {
	isolateEnv(t)
	input := "admin password123 glucose x 20 20 48 25\nnope\n"

	out, err := run(t, input, "batch", "--color", "off", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Running test case with user: admin (line 1)")
	assert.Contains(t, out, "stdin: 2 lines, 1 scored, 0 rejected, 1 skipped")
}

func TestBatchCommandOverlongLineIsSkipped(t *testing.T) {
	isolateEnv(t)
	path := writeBatch(t,
		"admin password123 glucose x 20 20 48 25",
		strings.Repeat("junk", 512*1024),
		"admin password123 maltose x 20 20 48 25",
	)

	out, err := run(t, "", "batch", "--color", "off", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Running test case with user: admin (line 1)")
	assert.Contains(t, out, "Running test case with user: admin (line 3)")
	assert.Contains(t, out, "3 lines, 2 scored, 0 rejected, 1 skipped")
}

func TestBatchCommandMissingFile(t *testing.T) {
	isolateEnv(t)
	_, err := run(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestBatchCommandReport(t *testing.T) {
	isolateEnv(t)
	reports := t.TempDir()
	t.Setenv("REPORT_BASE_PATH", reports)
	path := writeBatch(t, "admin password123 maltose Saccharomyces_cerevisiae 20 20 48 25")

	_, err := run(t, "", "batch", "--report", "-o", "json", path)
	require.NoError(t, err)

	store, err := report.NewStore(reports)
	require.NoError(t, err)
	rep, err := store.Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 1, rep.Batch.Summary.Scored)
}

func TestBatchCommandNotifyWithoutDiscordStillSucceeds(t *testing.T) {
	isolateEnv(t)
	path := writeBatch(t, "admin password123 glucose x 20 20 48 25")

	_, err := run(t, "", "batch", "--notify", path)
	assert.NoError(t, err)
}

func TestScoreCommand(t *testing.T) {
	isolateEnv(t)

	out, err := run(t, "", "score", "-u", "admin", "-p", "password123", "--color", "off",
		"--sugar", "glucose", "--yeast", "Saccharomyces cerevisiae",
		"--sugar-mass", "20", "--yeast-mass", "20", "--hours", "48", "--temp", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Ethanol Production Efficiency Score: 187.2%")
	assert.NotContains(t, out, "Suggestions")
}

func TestScoreCommandAccessDenied(t *testing.T) {
	isolateEnv(t)

	_, err := run(t, "", "score", "-u", "admin", "-p", "wrong", "--sugar", "glucose")
	assert.ErrorIs(t, err, errAccessDenied)
}

func TestScoreCommandJSON(t *testing.T) {
	isolateEnv(t)

	out, err := run(t, "", "score", "-u", "admin", "-p", "password123", "-o", "json",
		"--sugar", "lactose", "--yeast", "Saccharomyces cerevisiae",
		"--sugar-mass", "20", "--yeast-mass", "20", "--hours", "48", "--temp", "50")
	require.NoError(t, err)

	var doc struct {
		Result struct {
			Score float64 `json:"score"`
			Tier  string  `json:"tier"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Low", doc.Result.Tier)
	assert.InDelta(t, 52.0, doc.Result.Score, 1e-9)
}

func TestSimulateCommandJSON(t *testing.T) {
	isolateEnv(t)

	out, err := run(t, "", "simulate", "-o", "json", "--steps", "5", "--seed", "7")
	require.NoError(t, err)

	var doc struct {
		Mode  string            `json:"mode"`
		Seed  int64             `json:"seed"`
		Steps []json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "uniform", doc.Mode)
	assert.Equal(t, int64(7), doc.Seed)
	assert.Len(t, doc.Steps, 5)
}

func TestSimulateCommandInvalidMode(t *testing.T) {
	isolateEnv(t)
	_, err := run(t, "", "simulate", "--mode", "chaos")
	assert.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	isolateEnv(t)
	_, err := run(t, "", "simulate", "-o", "xml", "--steps", "1")
	assert.Error(t, err)
}

func TestInteractiveManualEntry(t *testing.T) {
	isolateEnv(t)
	input := strings.Join([]string{
		"admin", "password123",
		"2", "glucose", "Saccharomyces cerevisiae", "abc", "20", "20", "48", "25",
		"9",
		"3",
	}, "\n") + "\n"

	out, err := run(t, input, "interactive", "--color", "off")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Ethanol Production System ===")
	assert.Contains(t, out, "Invalid number, please try again.")
	assert.Contains(t, out, "Ethanol Production Efficiency Score: 187.2%")
	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Exiting the system. Goodbye!")
}

func TestInteractiveRunsBatchFile(t *testing.T) {
	isolateEnv(t)
	path := writeBatch(t, "admin password123 glucose Saccharomyces_cerevisiae 20 20 48 25")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	input := strings.Join([]string{"admin", "password123", "1", missing, "1", path, "3"}, "\n") + "\n"

	out, err := run(t, input, "interactive", "--color", "off")
	require.NoError(t, err)

	assert.Contains(t, out, "Error: Could not open test case file!")
	assert.Contains(t, out, "--- Test Case End ---")
	assert.Contains(t, out, "Exiting the system. Goodbye!")
}

func TestInteractiveAccessDenied(t *testing.T) {
	isolateEnv(t)

	out, err := run(t, "admin\nwrong\n1\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Access denied. Incorrect credentials. Exiting program.")
	assert.NotContains(t, out, "=== Ethanol Production System ===")
}

func TestInteractiveEndOfInput(t *testing.T) {
	isolateEnv(t)

	out, err := run(t, "admin\npassword123\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter your choice: ")
}

func TestOperatorLifecycleWithDatabaseBackend(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(t.TempDir(), "fermenta.db"))

	out, err := run(t, "", "operator", "add", "brewer", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Operator brewer saved.")

	out, err = run(t, "s3cret\n", "operator", "add", "cellar")
	require.NoError(t, err)
	assert.Contains(t, out, "Operator cellar saved.")

	out, err = run(t, "", "operator", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "brewer\t")
	assert.Contains(t, out, "cellar\t")

	t.Setenv("AUTH_BACKEND", "database")
	path := writeBatch(t,
		"brewer s3cret glucose Saccharomyces_cerevisiae 20 20 48 25",
		"admin password123 glucose Saccharomyces_cerevisiae 20 20 48 25",
	)
	out, err = run(t, "", "batch", "--color", "off", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 lines, 1 scored, 1 rejected, 0 skipped")

	out, err = run(t, "", "operator", "remove", "brewer")
	require.NoError(t, err)
	assert.Contains(t, out, "Operator brewer removed.")

	_, err = run(t, "", "operator", "remove", "brewer")
	assert.Error(t, err)
}
