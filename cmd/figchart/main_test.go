package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/figchart-go/pkg/figchart"
	"github.com/ukaji3/figchart-go/pkg/figchart/builder"
)

const salesCSV = "month,sales,cost\nJan,10,4\nFeb,12,5\nMar,9,6\n"

// workdir switches into a fresh directory holding the given files.
func workdir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func execute(ctx context.Context, out io.Writer, args ...string) error {
	root := newRootCommand()
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	return root.ExecuteContext(ctx)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(context.Background(), &out, args...)
	return out.String(), err
}

func decodeSpec(t *testing.T, data string) map[string]interface{} {
	t.Helper()
	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(data), &spec), data)
	return spec
}

func seriesNamed(spec map[string]interface{}) []string {
	var names []string
	for _, s := range spec["series"].([]interface{}) {
		name, _ := s.(map[string]interface{})["name"].(string)
		names = append(names, name)
	}
	return names
}

func TestBuild_Stdout(t *testing.T) {
	workdir(t, map[string]string{"sales.csv": salesCSV})

	out, err := run(t, "build", "sales.csv")
	require.NoError(t, err)
	spec := decodeSpec(t, out)

	xAxis := spec["xAxis"].([]interface{})
	require.Len(t, xAxis, 2)
	assert.Equal(t, []interface{}{"Jan", "Feb", "Mar"}, xAxis[0].(map[string]interface{})["data"])
	assert.Contains(t, seriesNamed(spec), "sales")
}

func TestBuild_FlagsOverrideSettings(t *testing.T) {
	dir := workdir(t, map[string]string{
		"sales.csv":     salesCSV,
		"settings.yaml": "title: From file\ncolorScheme: pastel\n",
	})

	_, err := run(t, "build", "sales.csv", "-s", "settings.yaml", "-t", "bar", "--y", "cost", "--title", "Costs", "-o", "chart.json", "--pretty")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "chart.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
	spec := decodeSpec(t, string(data))

	assert.Equal(t, "Costs", spec["title"].(map[string]interface{})["text"])
	assert.Equal(t, []string{"cost", "cost_phantom"}, seriesNamed(spec))
	assert.Equal(t, "bar", spec["series"].([]interface{})[0].(map[string]interface{})["type"])
}

func TestBuild_PieUsesLabelAndValue(t *testing.T) {
	workdir(t, map[string]string{"sales.tsv": "month\tsales\tcost\nJan\t10\t4\nFeb\t12\t5\n"})

	out, err := run(t, "build", "sales.tsv", "-t", "pie", "--value", "cost")
	require.NoError(t, err)
	spec := decodeSpec(t, out)

	series := spec["series"].([]interface{})
	require.Len(t, series, 1)
	pie := series[0].(map[string]interface{})
	assert.Equal(t, "cost", pie["name"])
	assert.Len(t, pie["data"], 2)
}

func TestBuild_Errors(t *testing.T) {
	workdir(t, map[string]string{"sales.csv": salesCSV, "notes.md": "# notes"})

	_, err := run(t, "build", "missing.csv")
	assert.True(t, errors.Is(err, figchart.ErrFileNotFound), err)

	_, err = run(t, "build", "notes.md")
	assert.True(t, errors.Is(err, figchart.ErrUnsupportedFormat), err)

	_, err = run(t, "build", "sales.csv", "-t", "radar")
	assert.Error(t, err)

	_, err = run(t, "build", "sales.csv", "--y", "profit")
	var notFound *builder.ColumnNotFoundError
	assert.True(t, errors.As(err, &notFound), err)

	_, err = run(t, "build")
	assert.Error(t, err)
}

func TestInitSettings(t *testing.T) {
	dir := workdir(t, nil)

	out, err := run(t, "init-settings")
	require.NoError(t, err)
	assert.Contains(t, out, "colorScheme: nature")
	assert.Contains(t, out, "chartType: line")

	path := filepath.Join(dir, "settings.yaml")
	_, err = run(t, "init-settings", "-o", path)
	require.NoError(t, err)
	_, err = run(t, "init-settings", "-o", path)
	assert.Error(t, err)
	_, err = run(t, "init-settings", "-o", path, "--force")
	assert.NoError(t, err)

	s, err := figchart.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "nature", s.ColorScheme)
}

func TestInspect(t *testing.T) {
	workdir(t, map[string]string{"sales.csv": salesCSV})

	out, err := run(t, "inspect", "sales.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "3 rows x 3 columns")
	assert.Contains(t, out, "numeric")
	assert.Contains(t, out, "Feb")
}

func TestInspect_Workbook(t *testing.T) {
	dir := workdir(t, nil)

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "x")
	f.SetCellValue("Sheet1", "B1", "y")
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "B2", 2)
	_, err := f.NewSheet("Empty")
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(filepath.Join(dir, "book.xlsx")))
	require.NoError(t, f.Close())

	out, err := run(t, "inspect", "book.xlsx")
	require.NoError(t, err)
	assert.Contains(t, out, "A1:B2")
	assert.Contains(t, out, "Empty")
	assert.Contains(t, out, "1 rows x 2 columns")
}

func TestWrapSVG(t *testing.T) {
	dir := workdir(t, nil)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 30, 20))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chart.png"), buf.Bytes(), 0o644))

	out, err := run(t, "wrap-svg", "chart.png")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `width="30"`)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o644))
	_, err = run(t, "wrap-svg", "bad.png")
	assert.Error(t, err)
}

// syncBuffer guards a buffer written by the watch loop and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestWatch_RebuildsAndKeepsOutputOnError(t *testing.T) {
	dir := workdir(t, map[string]string{"sales.csv": salesCSV})
	input := filepath.Join(dir, "sales.csv")
	outPath := filepath.Join(dir, "chart.json")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- execute(ctx, &syncBuffer{}, "watch", input, "-o", outPath) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	readOutput := func() string {
		data, _ := os.ReadFile(outPath)
		return string(data)
	}
	require.Eventually(t, func() bool { return readOutput() != "" }, 5*time.Second, 20*time.Millisecond)
	assert.NotContains(t, readOutput(), "profit")

	// Give the watcher time to register before editing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(input, []byte("month,sales,profit\nJan,10,4\nFeb,12,5\n"), 0o644))
	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(readOutput()), []byte("profit"))
	}, 5*time.Second, 20*time.Millisecond)

	good := readOutput()
	require.NoError(t, os.WriteFile(input, []byte("month,sales\n"), 0o644))
	time.Sleep(3 * watchDebounce)
	assert.Equal(t, good, readOutput())
}
