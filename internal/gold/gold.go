// Package gold implements golden files.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o700))
	require.NoError(t, os.WriteFile(p, data, 0o600))
}

// Bytes compares data with golden file, updating it if requested.
//
// Default name is test name with ".bin" suffix.
func Bytes(t testing.TB, data []byte, name ...string) {
	t.Helper()
	if len(name) == 0 {
		name = []string{t.Name() + ".bin"}
	}
	if Update {
		writeFile(t, data, name...)
		return
	}
	if expected := ReadFile(t, name...); !bytes.Equal(expected, data) {
		t.Fatalf("golden file %s mismatch:\n%x\n!=\n%x", path.Join(name...), data, expected)
	}
}

// Str compares s with golden text file, updating it if requested.
//
// Default name is test name with ".txt" suffix.
func Str(t testing.TB, s string, name ...string) {
	t.Helper()
	if len(name) == 0 {
		name = []string{t.Name() + ".txt"}
	}
	if Update {
		writeFile(t, []byte(s), name...)
		return
	}
	require.Equal(t, string(ReadFile(t, name...)), s, "golden file %s", path.Join(name...))
}
