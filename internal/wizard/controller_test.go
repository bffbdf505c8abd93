package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brigada/internal/form"
	"brigada/internal/testutil"
)

func TestNewController_StartsOnInfo(t *testing.T) {
	c := NewController()

	assert.Equal(t, SectionInfo, c.Active().ID)
	assert.Empty(t, c.Errors())
	assert.False(t, c.Terminal())
}

func TestGoTo_RefusedPublishesErrors(t *testing.T) {
	c := NewController()

	ok := c.GoTo("epp", map[string]string{})

	assert.False(t, ok)
	assert.Equal(t, SectionInfo, c.Active().ID)
	assert.NotEmpty(t, c.Errors())
}

func TestGoTo_AdvancesWhenValid(t *testing.T) {
	c := NewController()

	ok := c.GoTo("epp", testutil.ValidInfoValues())

	require.True(t, ok)
	assert.Equal(t, "epp", c.Active().ID)
	assert.Empty(t, c.Errors())
}

func TestGoTo_UnknownTargetRefused(t *testing.T) {
	c := NewController()

	assert.False(t, c.GoTo("nope", testutil.ValidInfoValues()))
	assert.Equal(t, SectionInfo, c.Active().ID)
}

func TestGoTo_BackwardsAlwaysPassesFromItemSections(t *testing.T) {
	c := NewController()
	require.True(t, c.GoTo("tools", testutil.ValidInfoValues()))

	// Item sections carry no required fields, so moving back never blocks.
	assert.True(t, c.GoTo(SectionInfo, map[string]string{}))
	assert.Equal(t, SectionInfo, c.Active().ID)
}

func TestClearError_DropsSingleField(t *testing.T) {
	c := NewController()
	c.GoTo("epp", map[string]string{})
	require.NotEmpty(t, c.Errors())

	c.ClearError(form.FieldName)

	_, ok := c.Errors()[form.FieldName]
	assert.False(t, ok)
	assert.NotEmpty(t, c.Errors(), "other errors survive")
}

func TestSubmit_WalksToCompletion(t *testing.T) {
	c := NewController()
	values := testutil.ValidInfoValues()

	for range len(Sections()) - 1 {
		assert.Equal(t, OutcomeAdvanced, c.Submit(values))
	}

	assert.Equal(t, OutcomeCompleted, c.Submit(values))
	assert.True(t, c.Terminal())
}

func TestSubmit_RefusedOnInvalidInfo(t *testing.T) {
	c := NewController()

	outcome := c.Submit(map[string]string{})

	assert.Equal(t, OutcomeRefused, outcome)
	assert.Equal(t, SectionInfo, c.Active().ID)
	assert.NotEmpty(t, c.Errors())
}

func TestReset(t *testing.T) {
	c := NewController()
	values := testutil.ValidInfoValues()
	for range len(Sections()) {
		c.Submit(values)
	}
	require.True(t, c.Terminal())

	c.Reset()

	assert.Equal(t, SectionInfo, c.Active().ID)
	assert.False(t, c.Terminal())
	assert.Empty(t, c.Errors())
}
