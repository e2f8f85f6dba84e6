package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicedata/config"
	"github.com/katalvlaran/choicedata/dataset"
)

// panelCSV has 3 individuals with 2 observations each. Row 5 chooses an
// unavailable alternative and row 6 is excluded by the run file below.
const panelCSV = `ID,CHOICE,TRAIN_AV,CAR_AV,COST,PURPOSE
1,1,1,1,1200,1
1,2,1,1,800,1
2,1,1,0,450,1
2,1,1,1,3000,1
3,2,1,0,95,1
3,1,1,1,60,9
`

const runYAML = `
name: sample
data: data.csv
seed: 7
panel: ID
exclude: "PURPOSE == 9"
derived:
  - name: COST_SCALED
    expression: "COST / 1000"
availability:
  choice: CHOICE
  alternatives:
    1: TRAIN_AV
    2: CAR_AV
draws:
  count: 4
  variables:
    - name: b_cost
      type: NORMAL_ANTI
    - name: u
      type: HALTON13
`

func writeFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte(panelCSV), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run.yaml"), []byte(runYAML), 0o600))

	return dir
}

func TestDescribeDraws(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, describeDraws(&buf, newRegistry()))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "Native draw types:\n  UNIFORM: Uniform U[0, 1]\n"))
	require.Contains(t, out, "User defined draw types:\n  HALTON13: Halton draws, base 13, skipping 10\n  HALTON7:")
}

func TestPreviewDraws(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, previewDraws(&buf, newRegistry(), "UNIFORM_HALTON2", 1, 2, 3))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "UNIFORM_HALTON2 (2 × 3)", lines[0])
	require.Len(t, lines, 3)
	require.Equal(t, " 0.312500  0.812500  0.187500", lines[1])

	require.Error(t, previewDraws(&buf, newRegistry(), "BOGUS", 1, 2, 3))
}

// TestRunConfig walks a complete run file on a small panel.
func TestRunConfig(t *testing.T) {
	dir := writeFiles(t)
	cfg, err := config.Load(filepath.Join(dir, "run.yaml"))
	require.NoError(t, err)
	cfg.Data = filepath.Join(dir, cfg.Data)

	var buf bytes.Buffer
	require.NoError(t, runConfig(&buf, cfg, 0))
	out := buf.String()
	for _, want := range []string{
		"sample: 6 observations, 6 columns\n",
		"excluded 1 observations, 5 remain\n",
		"panel data: 3 individuals\n",
		"alternative 1: chosen 3, available 5\n",
		"alternative 2: chosen 2, available 3\n",
		"warning: the chosen alternative is unavailable for 1 observations\n",
		"suggest scaling COST by 0.001 (largest value 3000)\n",
		"draws: 3 individuals × 4 draws\n",
		"  u (HALTON13): mean ",
	} {
		require.Contains(t, out, want)
	}
	// Antithetic normal draws cancel out exactly, up to rounding.
	require.Regexp(t, `b_cost \(NORMAL_ANTI\): mean -?0\.0000, std `, out)
}

func TestRunConfig_Folds(t *testing.T) {
	dir := writeFiles(t)
	cfg := &config.Config{Data: filepath.Join(dir, "data.csv"), Seed: 3}

	var buf bytes.Buffer
	require.NoError(t, runConfig(&buf, cfg, 4))
	require.Contains(t, buf.String(), "fold 1: estimation 4, validation 2\n")
	require.Contains(t, buf.String(), "fold 4: estimation 5, validation 1\n")

	require.ErrorIs(t, runConfig(&buf, cfg, 7), dataset.ErrInvalidSlices)
}

func TestRunConfig_Errors(t *testing.T) {
	dir := writeFiles(t)
	data := filepath.Join(dir, "data.csv")

	err := runConfig(&bytes.Buffer{}, &config.Config{Data: filepath.Join(dir, "missing.csv")}, 0)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = runConfig(&bytes.Buffer{}, &config.Config{Data: data, Panel: "NOPE"}, 0)
	require.ErrorIs(t, err, dataset.ErrUnknownColumn)

	err = runConfig(&bytes.Buffer{}, &config.Config{Data: data, Panel: "CHOICE"}, 0)
	require.ErrorIs(t, err, dataset.ErrStructure)

	err = runConfig(&bytes.Buffer{}, &config.Config{Data: data, Derived: []config.Derived{{Name: "COST", Expression: "1"}}}, 0)
	require.ErrorIs(t, err, dataset.ErrNameCollision)

	err = runConfig(&bytes.Buffer{}, &config.Config{
		Data:  data,
		Draws: &config.Draws{Count: 2, Variables: []config.DrawVariable{{Name: "x", Type: "BOGUS"}}},
	}, 0)
	require.ErrorIs(t, err, dataset.ErrUnknownDrawType)
}

func TestReportPanel(t *testing.T) {
	dir := writeFiles(t)
	db, err := readDatabase(filepath.Join(dir, "data.csv"), "", newRegistry())
	require.NoError(t, err)
	require.Equal(t, "data", db.Name())

	var buf bytes.Buffer
	require.NoError(t, reportPanel(&buf, db, "ID", 2))
	require.Equal(t, "6 observations, 3 individuals\n"+
		"  1: rows 0 to 1 (2 observations)\n"+
		"  2: rows 2 to 3 (2 observations)\n", buf.String())
}
