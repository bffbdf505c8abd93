package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brigada/internal/catalog"
)

func TestNew_LedgerPerCategory(t *testing.T) {
	f := New()

	for _, c := range catalog.Categories() {
		require.NotNil(t, f.Ledger(c.ID), c.ID)
	}
	assert.Nil(t, f.Ledger("nope"))
}

func TestLedgers_RegistryOrder(t *testing.T) {
	f := New()

	ledgers := f.Ledgers()
	require.Len(t, ledgers, len(catalog.Categories()))
	for i, c := range catalog.Categories() {
		assert.Equal(t, c.ID, ledgers[i].Category.ID)
	}
}

func TestSizeRecords_Vocabularies(t *testing.T) {
	f := New()

	for _, size := range catalog.BootSizes {
		_, ok := f.Botas.Sizes[size]
		assert.True(t, ok, size)
	}
	for _, size := range catalog.GloveSizes {
		_, ok := f.Guantes.Sizes[size]
		assert.True(t, ok, size)
	}
}

func TestSizeRecord_SetSize(t *testing.T) {
	f := New()

	f.Botas.SetSize("41", 3)
	assert.Equal(t, 3, f.Botas.Sizes["41"])

	f.Botas.SetSize("41", -1)
	assert.Equal(t, 0, f.Botas.Sizes["41"])

	f.Botas.SetSize("99", 5)
	_, ok := f.Botas.Sizes["99"]
	assert.False(t, ok, "unknown buckets are not created")
}

func TestReset_DiscardsEverything(t *testing.T) {
	f := New()
	f.Info.Set(FieldName, "Brigada Sur")
	f.Ledger("herramientas").SetQuantity("Batefuego", 3)
	f.Ledger("herramientas").AddCustom("Motosierra")
	f.Botas.SetSize("41", 2)

	f.Reset()

	assert.Empty(t, f.Info.Name)
	assert.Equal(t, 0, f.Ledger("herramientas").Item("Batefuego").Quantity)
	assert.Empty(t, f.Ledger("herramientas").Custom())
	assert.Equal(t, 0, f.Botas.Sizes["41"])
}
