package doctest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niptools/niptest/engine"
	"github.com/niptools/niptest/logging"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeDocFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func runEngine(t *testing.T, argv []string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	p := engine.Program{Output: &out, ErrOutput: &errOut}
	code := p.Run(argv, New())
	return code, out.String(), errOut.String()
}

func TestPluginRunsPassingExamples(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "intro.md", `Arithmetic:

    >> 1 + 1
    2

    >> mean([1, 2, 3, 4])
    2.5

Constants:

    >> np.inf
    inf
`)
	code, out, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Ran 3 checks: 3 passed")
}

func TestPluginReportsOutputMismatch(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "wrong.md", ">> 2 + 2\n5\n")

	code, out, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "expected output:")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "actual output:")
	assert.Contains(t, out, "4")
}

func TestPluginReportsEvaluationErrors(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "bad.md", ">> nosuchfunc(1)\n1\n")

	code, out, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "evaluation failed")
}

func TestPluginReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "bad.md", ">> 1 +\n1\n")

	code, out, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "cannot parse example")
}

func TestPluginHonorsSkipDirective(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "skippy.md", ">> nosuchfunc(1)  # skip\n1\n")

	code, out, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "SKIPPED")
	assert.Contains(t, out, "skip directive")
}

func TestPluginExampleWithoutExpectedOutputOnlyHasToEvaluate(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "loose.md", ">> sqrt(2)\n")

	code, _, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 0, code)
}

func TestPluginScansOnlyConfiguredExtensions(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "notes.rst", ">> 1 + 1\n3\n")

	code, out, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 0, code, "rst files are not scanned by default")
	assert.Contains(t, out, "Ran 0 checks")

	code, _, _ = runEngine(t, []string{"--with-nipydoctest", "--doctest-extensions", "rst", dir})
	assert.Equal(t, 1, code)
}

func TestPluginSkipsHiddenAndUnderscoreDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{".git", "_build"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, sub), 0o755))
		writeDocFile(t, filepath.Join(dir, sub), "doc.md", ">> 1 + 1\n3\n")
	}
	writeDocFile(t, dir, "doc.md", ">> 1 + 1\n2\n")

	code, out, _ := runEngine(t, []string{"--with-nipydoctest", dir})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Ran 1 checks")
}

func TestPluginDisabledCollectsNothing(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "doc.md", ">> 1 + 1\n3\n")

	code, out, _ := runEngine(t, []string{dir})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Ran 0 checks")
}

func TestPluginMissingPathIsCollectionError(t *testing.T) {
	code, _, errOut := runEngine(t, []string{"--with-nipydoctest", filepath.Join(t.TempDir(), "nope")})
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "plugin nipydoctest")
}

func TestPluginCheckIDsNameFileAndLine(t *testing.T) {
	dir := t.TempDir()
	writeDocFile(t, dir, "doc.md", "text\n>> 1 + 1\n2\n")

	p := New()
	p.enabled = true
	require.NoError(t, p.Configure(engine.Options{Logger: logging.NullLogger()}))
	collected, err := p.Collect([]string{dir}, logging.NullLogger())
	require.NoError(t, err)
	require.Len(t, collected, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "doc.md"))+"/line 2", collected[0].ID.String())
}
