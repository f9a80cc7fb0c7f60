package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toruinaba/structools/internal/batch"
	"github.com/toruinaba/structools/internal/section"
	"github.com/toruinaba/structools/internal/service"
)

const sectionsJSON = `[
	{"name": "H1", "kind": "h_section", "dimensions": {"h": 400, "b": 200, "t_w": 8, "t_f": 13}},
	{"name": "C1", "kind": "lipped_channel", "dimensions": {"h": 200, "b": 75, "d": 20, "t_w": 2.3, "t_f": 2.3, "t_l": 2.3}},
	{"name": "B1", "kind": "rc_rectangular", "dimensions": {"b": 300, "h": 500, "fc": 28},
	 "reinforcement": [{"y": 60, "area": 1500}]}
]`

func writeSections(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the root command; each test uses a command's flags once
// because flag values persist between executions
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSectionInputFlags(t *testing.T) {
	in := sectionInput{
		kind:  "rc",
		dims:  map[string]string{"B": "300", "h": "500", "fc": "28"},
		rebar: "60:1500:3-25mm;440:600",
		grade: "SN490",
	}
	defs, err := in.definitions()
	require.NoError(t, err)
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, 300.0, def.Dimensions["b"])
	assert.Equal(t, "SN490", def.Grade)
	assert.Equal(t, []section.RebarLayer{
		{Y: 60, Area: 1500, Description: "3-25mm"},
		{Y: 440, Area: 600},
	}, def.Reinforcement)

	_, err = def.Build()
	assert.NoError(t, err)
}

func TestSectionInputErrors(t *testing.T) {
	_, err := (&sectionInput{}).definitions()
	assert.Error(t, err)

	_, err = (&sectionInput{kind: "rc", rebar: "60"}).definitions()
	assert.Error(t, err)

	path := writeSections(t, "sections.json", sectionsJSON)
	_, err = (&sectionInput{file: path, name: "missing"}).definitions()
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Contains(t, err.Error(), "B1, C1, H1")
}

func TestSectionInputFile(t *testing.T) {
	path := writeSections(t, "sections.json", sectionsJSON)

	defs, err := (&sectionInput{file: path, grade: "SM520"}).definitions()
	require.NoError(t, err)
	require.Len(t, defs, 3)
	for _, d := range defs {
		assert.Equal(t, "SM520", d.Grade)
	}

	defs, err = (&sectionInput{file: path, name: "C1"}).definitions()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "lipped_channel", defs[0].Kind)
}

func TestEncode(t *testing.T) {
	v := map[string]float64{"area": 8192}

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, formatJSON, v))
	assert.JSONEq(t, `{"area": 8192}`, buf.String())

	buf.Reset()
	require.NoError(t, encode(&buf, formatYAML, v))
	assert.Equal(t, "area: 8192\n", buf.String())

	assert.Error(t, encode(&buf, "xml", v))
	assert.Error(t, validFormat("csv"))
}

func TestCalcCommand(t *testing.T) {
	out, err := run(t, "calc", "-k", "h_section", "-d", "h=400,b=200,t_w=8,t_f=13", "--format", "json")
	require.NoError(t, err)

	var r batch.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.NotNil(t, r.Properties)
	assert.Equal(t, 8192.0, r.Properties.Area)
	require.NotNil(t, r.Properties.Steel)
	assert.InDelta(t, r.Properties.SectionModulusStrong*1.5, r.Properties.Steel.PlasticMomentX, 1e-6)
	require.NotNil(t, r.WidthThickness)
	assert.True(t, r.WidthThickness.OK())
}

func TestCheckCommand(t *testing.T) {
	path := writeSections(t, "sections.json", sectionsJSON)

	_, err := run(t, "check", "-f", path)
	assert.ErrorIs(t, err, section.ErrUnsupportedShape)
	assert.Contains(t, err.Error(), "B1")
}

func TestDiagramCommand(t *testing.T) {
	out, err := run(t, "diagram", "-k", "rect", "-d", "b=100,h=300", "--width", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "RECTANGULAR")
	assert.Contains(t, out, "G = centroid (50.00, 150.00)")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.json")
	require.NoError(t, os.WriteFile(path, []byte(sectionsJSON), 0o644))
	reportPath := filepath.Join(dir, "report.xlsx")

	out, err := run(t, "batch", filepath.Join(dir, "*.json"), "-o", reportPath, "-w", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "3 sections, 0 failed, 0 NG")
	assert.FileExists(t, reportPath)
}

func TestGradesCommand(t *testing.T) {
	out, err := run(t, "grades")
	require.NoError(t, err)
	for _, g := range []string{"SN400", "SN490", "SM490", "SM520"} {
		assert.Contains(t, out, g)
	}
}
