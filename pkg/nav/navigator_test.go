package nav

import (
	"Cocktail-Companion/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_PushesEntries(t *testing.T) {
	n := NewNavigator()

	entry, err := n.Navigate("list")
	require.NoError(t, err)
	assert.Equal(t, Categories, entry.Destination)

	entry, err = n.Navigate("cocktails/Ordinary Drink")
	require.NoError(t, err)
	assert.Equal(t, Cocktails, entry.Destination)
	assert.Equal(t, "Ordinary Drink", entry.Param)

	stack := n.Stack()
	require.Len(t, stack, 3)
	assert.Equal(t, Home, stack[0].Destination)
}

func TestNavigate_DecodesEscapedParam(t *testing.T) {
	n := NewNavigator()

	entry, err := n.Navigate("cocktailDetail/11007")
	require.NoError(t, err)
	assert.Equal(t, "11007", entry.Param)

	entry, err = n.Navigate("cocktails/Ordinary%20Drink")
	require.NoError(t, err)
	assert.Equal(t, "Ordinary Drink", entry.Param)
}

func TestNavigate_UnknownDestination(t *testing.T) {
	n := NewNavigator()

	_, err := n.Navigate("settings")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownDestination))

	// parameterized routes only exist for the two listed destinations
	_, err = n.Navigate("favorites/123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownDestination))

	// the stack is untouched by failed navigation
	assert.Len(t, n.Stack(), 1)
}

func TestNavigate_MyCreationsRedirect(t *testing.T) {
	n := NewNavigator()

	_, err := n.Navigate("list")
	require.NoError(t, err)

	entry, err := n.Navigate("cocktails/" + domain.MyCreationsCategory)
	require.NoError(t, err)
	assert.Equal(t, CreatedList, entry.Destination)
	assert.Empty(t, entry.Param)

	// the category list survives under the creations list, so back lands there
	stack := n.Stack()
	require.Len(t, stack, 3)
	assert.Equal(t, Categories, stack[1].Destination)

	back, ok := n.Back()
	require.True(t, ok)
	assert.Equal(t, Categories, back.Destination)
}

func TestBack_StopsAtRoot(t *testing.T) {
	n := NewNavigator()

	entry, ok := n.Back()
	assert.False(t, ok)
	assert.Equal(t, Home, entry.Destination)

	_, err := n.Navigate("search")
	require.NoError(t, err)

	entry, ok = n.Back()
	require.True(t, ok)
	assert.Equal(t, Home, entry.Destination)

	_, ok = n.Back()
	assert.False(t, ok)
}

func TestCompleteCreation_RemovesFormFromStack(t *testing.T) {
	n := NewNavigator()

	_, err := n.Navigate("creation")
	require.NoError(t, err)

	entry := n.CompleteCreation()
	assert.Equal(t, CreatedList, entry.Destination)

	// back skips the submitted form entirely
	for _, frame := range n.Stack() {
		assert.NotEqual(t, Creation, frame.Destination)
	}
	back, ok := n.Back()
	require.True(t, ok)
	assert.Equal(t, Home, back.Destination)
}

func TestEntryRoute(t *testing.T) {
	assert.Equal(t, "home", Entry{Destination: Home}.Route())
	assert.Equal(t, "cocktails/Ordinary%20Drink", Entry{Destination: Cocktails, Param: "Ordinary Drink"}.Route())
}
