package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/source"
)

func TestReadFilesConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.mill")
	second := filepath.Join(dir, "b.mill")
	require.NoError(t, os.WriteFile(first, []byte("fn a() {}"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("fn b() {}"), 0o644))

	text, err := source.ReadFiles([]string{first, second})
	require.NoError(t, err)
	require.Contains(t, text, "fn a() {}")
	require.Contains(t, text, "fn b() {}")
	require.Less(t, indexOf(text, "fn a"), indexOf(text, "fn b"))
}

func TestReadFilesPropagatesMissingFile(t *testing.T) {
	_, err := source.ReadFiles([]string{filepath.Join(t.TempDir(), "missing.mill")})
	require.Error(t, err)
}

func TestParserFuncAdaptsPlainFunction(t *testing.T) {
	var seen string
	p := source.ParserFunc(func(text string) (*ast.Program, error) {
		seen = text
		return &ast.Program{}, nil
	})

	var asParser source.Parser = p
	program, err := asParser.Parse("hello")
	require.NoError(t, err)
	require.NotNil(t, program)
	require.Equal(t, "hello", seen)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
