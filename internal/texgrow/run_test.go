package texgrow

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConfig(t *testing.T, outDir string, extra string) string {
	t.Helper()
	return writeConfig(t, fmt.Sprintf(`{
		"initialNoise": 255, "finalNoise": 4, "rounds": 3, "outerp": 0.1,
		"exchangeRate": 10, "seed": 42, "outDir": %q%s
	}`, outDir, extra))
}

func TestRunWritesReproducibleTexture(t *testing.T) {
	dirA := filepath.Join(t.TempDir(), "a")
	dirB := filepath.Join(t.TempDir(), "b")
	require.NoError(t, Run(runConfig(t, dirA, "")))
	require.NoError(t, Run(runConfig(t, dirB, "")))

	name := "img-255-4-3-0.1-10-42.png"
	a, err := os.ReadFile(filepath.Join(dirA, name))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, name))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunWritesPlotAndPreview(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Run(runConfig(t, dir, `, "plot": true, "gif": true, "previewScale": 4`)))
	for _, f := range []string{
		"img-255-4-3-0.1-10-42.png",
		"img-255-4-3-0.1-10-42-rounds.png",
		"img-255-4-3-0.1-10-42-x4.png",
		"img-255-4-3-0.1-10-42-growth.gif",
	} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, f)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, `{"initialNoise": 1, "finalNoise": 2}`)
	assert.ErrorIs(t, Run(path), ErrInvalidParams)
}

func TestRunMissingExplicitConfig(t *testing.T) {
	assert.ErrorIs(t, Run(filepath.Join(t.TempDir(), "missing.json")), ErrConfig)
}
