package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/domain"
)

// run ejecuta farmctl contra un archivo SQLite temporal y devuelve la salida estándar.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setupStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "farm.db"))
	return dir
}

func TestSeedAdmin_Idempotente(t *testing.T) {
	setupStore(t)

	out, err := run(t, "seed-admin", "--password", "secret123")
	require.NoError(t, err)
	assert.Contains(t, out, `administrador "admin" creado`)

	out, err = run(t, "seed-admin", "--password", "otra")
	require.NoError(t, err)
	assert.Contains(t, out, "ya existen usuarios")
}

func TestCreateUser(t *testing.T) {
	setupStore(t)

	out, err := run(t, "create-user", "--username", "luis", "--password", "clave123")
	require.NoError(t, err)
	assert.Contains(t, out, "usuario luis (user) creado")

	_, err = run(t, "create-user", "--username", "luis", "--password", "clave123")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = run(t, "create-user", "--username", "ana", "--password", "123")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport(t *testing.T) {
	dir := setupStore(t)

	out, err := run(t, "export", "summary", "--start", "2024-03-01", "--end", "2024-03-31", "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Net Profit,$0.00")

	path := filepath.Join(dir, "egg.html")
	out, err = run(t, "export", "egg-sales", "--format", "html", "--start", "2024-03-01", "--end", "2024-03-31", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "reporte escrito en "+path)
	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "<h1>Egg Sales Report</h1>")

	_, err = run(t, "export", "flocks", "--start", "2024-03-01", "--end", "2024-03-31")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, "export", "summary", "--start", "2024-03-01")
	assert.Error(t, err, "--end es obligatorio")
}

func TestArchiveSummaryYReconcile(t *testing.T) {
	setupStore(t)

	out, err := run(t, "archive-summary")
	require.NoError(t, err)
	assert.Contains(t, out, "resumen archivado en reports/summary-")

	out, err = run(t, "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "ITEM")
	assert.Contains(t, out, "DRIFT")
}

func TestDriverDesconocido(t *testing.T) {
	setupStore(t)
	_, err := run(t, "--driver", "cassandra", "reconcile")
	assert.Error(t, err)
}
