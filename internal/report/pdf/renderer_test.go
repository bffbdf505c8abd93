package pdf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brigada/internal/report"
	"brigada/internal/testutil"
)

func TestRender_ProducesPDFBytes(t *testing.T) {
	r := New()

	out, err := r.Render(report.Synthesize(testutil.FilledForm(t)))

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_EmptyStream(t *testing.T) {
	out, err := New().Render(nil)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_EachInstructionKind(t *testing.T) {
	stream := []report.Instruction{
		report.Heading{Text: "Encabezado", FreshBlock: true},
		report.KeyValue{Key: "Nombre", Value: "Brigada Sur"},
		report.Note{Text: "Sin requerimientos en esta sección."},
		report.Table{
			Headers: []string{"Item", "Cantidad", "Observaciones"},
			Rows:    [][]string{{"Pala con Mango de Fibra", "3", "urgente"}},
		},
	}

	out, err := New().Render(stream)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRender_LongTablePaginates(t *testing.T) {
	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Artículo %d", i), "1", ""}
	}
	stream := []report.Instruction{
		report.Heading{Text: "2. Herramientas", FreshBlock: true},
		report.Table{Headers: []string{"Item", "Cantidad", "Observaciones"}, Rows: rows},
	}

	small, err := New().Render(stream[:1])
	require.NoError(t, err)
	large, err := New().Render(stream)
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small), "the overflowing table adds pages")
}

func TestColumnWidths(t *testing.T) {
	three := columnWidths(180, 3)
	require.Len(t, three, 3)
	assert.InDelta(t, 180*0.35, three[0], 0.001)
	assert.InDelta(t, 180*0.35, three[1], 0.001)
	assert.InDelta(t, 180*0.30, three[2], 0.001)

	seven := columnWidths(180, 7)
	var sum float64
	for _, w := range seven {
		sum += w
	}
	assert.InDelta(t, 180, sum, 0.001)
}
