package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Status_PrintsIconAndMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Status("🔍", "Expanding query...")

	output := buf.String()
	assert.Contains(t, output, "🔍")
	assert.Contains(t, output, "Expanding query...")
}

func TestWriter_Status_NoIconIndents(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Status("", "details")

	assert.Contains(t, buf.String(), "   details")
}

func TestWriter_Success_PrintsCheckmark(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Success("Analysis complete!")

	output := buf.String()
	assert.Contains(t, output, "✅")
	assert.Contains(t, output, "Analysis complete!")
}

func TestWriter_Warning_PrintsWarningIcon(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Warning("No corpus loaded")

	output := buf.String()
	assert.Contains(t, output, "⚠️")
	assert.Contains(t, output, "No corpus loaded")
}

func TestWriter_Errorf_FormatsMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Errorf("failed to read %s", "corpus.json")

	output := buf.String()
	assert.Contains(t, output, "❌")
	assert.Contains(t, output, "failed to read corpus.json")
}

func TestWriter_Header_PlainWithoutColor(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Header("Expanded terms")

	assert.Equal(t, "Expanded terms\n", buf.String())
}

func TestWriter_Header_BoldWithColor(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)
	w.SetColor(true)

	w.Header("Expanded terms")

	assert.Contains(t, buf.String(), "\033[1m")
	assert.Contains(t, buf.String(), "Expanded terms")
}

func TestWriter_Item(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Item("infrastructure", "synonym, 0.75")
	w.Item("plain", "")

	output := buf.String()
	assert.Contains(t, output, "• infrastructure (synonym, 0.75)")
	assert.Contains(t, output, "• plain")
	assert.NotContains(t, output, "\033[")
}

func TestWriter_KeyValue_Aligns(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.KeyValue("Total terms", 42)

	assert.Contains(t, buf.String(), "Total terms:")
	assert.Contains(t, buf.String(), "42")
}

func TestWriter_Progress(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Progress(5, 10, "analyzing")
	output := buf.String()
	assert.Contains(t, output, "50%")
	assert.Contains(t, output, "analyzing")
	assert.False(t, strings.HasSuffix(output, "\n"))

	w.Progress(10, 10, "analyzing")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriter_Progress_ZeroTotalNoOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Progress(1, 0, "nothing")
	assert.Empty(t, buf.String())
}

func TestRenderProgressBar_Bounds(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 10), renderProgressBar(10, 10, 10))
	assert.Equal(t, strings.Repeat("░", 10), renderProgressBar(0, 10, 10))
	assert.Equal(t, strings.Repeat("░", 10), renderProgressBar(0, 0, 10))
	assert.Equal(t, strings.Repeat("█", 10), renderProgressBar(20, 10, 10))
}
