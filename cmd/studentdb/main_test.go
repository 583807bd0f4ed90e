package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestSeedThenEdit(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "students.db")

	out := run(t, "", "seed", "--db", dsn)
	assert.Contains(t, out, "Successfully created 5 students!")

	out = run(t, "1\n5\n", "--db", dsn)
	assert.Contains(t, out, "Alice Johnson")
	assert.Contains(t, out, "Eva Brown")
	assert.Contains(t, out, "Goodbye!")
}

func TestUnsupportedDriver(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--driver", "mysql"})
	assert.ErrorContains(t, cmd.Execute(), "unsupported DB_DRIVER")
}
