package textrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/internal/parser"
)

func render(t *testing.T, format, value string) string {
	t.Helper()
	f, err := parser.Parse(format)
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	require.Equal(t, ast.Text, f.Sections[0].Meta.FormatType)
	return Render(f.Sections[0], value)
}

func TestRender_PlaceholderAndLiteral(t *testing.T) {
	assert.Equal(t, "hello units", render(t, `@" units"`, "hello"))
}

func TestRender_BarePlaceholder(t *testing.T) {
	assert.Equal(t, "anything", render(t, `@`, "anything"))
}
