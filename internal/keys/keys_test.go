package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	k := DefaultKeyMap()

	assert.Equal(t, []string{"ctrl+n", "pgdown"}, k.NextSection.Keys())
	assert.Equal(t, []string{"ctrl+p", "pgup"}, k.PrevSection.Keys())
	assert.Equal(t, []string{"ctrl+s"}, k.Submit.Keys())
	assert.Equal(t, []string{"ctrl+e"}, k.Export.Keys())
	assert.Equal(t, []string{"ctrl+a"}, k.AddItem.Keys())
	assert.Equal(t, []string{"ctrl+t"}, k.ToggleTheme.Keys())
	assert.Equal(t, []string{"ctrl+c"}, k.Quit.Keys())
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	k := DefaultKeyMap()

	for _, binding := range k.ShortHelp() {
		require.NotEmpty(t, binding.Help().Key)
		require.NotEmpty(t, binding.Help().Desc)
	}
}

func TestFullHelp_CoversGroups(t *testing.T) {
	groups := DefaultKeyMap().FullHelp()

	require.Len(t, groups, 4)
	for _, group := range groups {
		assert.NotEmpty(t, group)
	}
}
