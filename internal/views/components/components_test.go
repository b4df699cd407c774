package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskList_Selection(t *testing.T) {
	test.NewTempApp(t)

	list := NewTaskList()
	var events []bool
	list.SetSelectionHandler(func(_ int, selected bool) {
		events = append(events, selected)
	})

	list.SetItems([]string{"a", "b", "c"})
	_, ok := list.Selected()
	assert.False(t, ok)

	list.Select(2)
	index, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, index)

	list.SetItems([]string{"a"})
	_, ok = list.Selected()
	assert.False(t, ok, "selection past the end is cleared")
	assert.Equal(t, []bool{true, false}, events)
	assert.Equal(t, []string{"a"}, list.Items())
}

func TestTaskList_RebuildClearsSelection(t *testing.T) {
	test.NewTempApp(t)

	list := NewTaskList()
	var events []bool
	list.SetSelectionHandler(func(_ int, selected bool) {
		events = append(events, selected)
	})
	list.SetItems([]string{"a", "b", "c"})

	list.Select(1)
	list.SetItems([]string{"a", "c"})

	_, ok := list.Selected()
	assert.False(t, ok, "row 1 now holds a task the user never selected")
	assert.Equal(t, []bool{true, false}, events)

	list.Select(0)
	list.SetItems([]string{"a", "c"})
	_, ok = list.Selected()
	assert.False(t, ok)
}

func TestTaskList_SelectOutOfRangeIgnored(t *testing.T) {
	test.NewTempApp(t)

	list := NewTaskList()
	list.SetItems([]string{"a"})
	list.Select(5)

	_, ok := list.Selected()
	assert.False(t, ok)
}

func TestToolbar_SelectionGatesButtons(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	assert.False(t, toolbar.addButton.Disabled())
	assert.True(t, toolbar.editButton.Disabled())
	assert.True(t, toolbar.deleteButton.Disabled())
	assert.True(t, toolbar.reminderButton.Disabled())

	toolbar.SetSelectionActive(true)
	assert.False(t, toolbar.editButton.Disabled())
	assert.False(t, toolbar.reminderButton.Disabled())
}

func TestToolbar_TapInvokesHandler(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	added := 0
	toolbar.SetAddHandler(func() { added++ })

	test.Tap(toolbar.addButton)
	assert.Equal(t, 1, added)
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	bar := NewStatusBar()
	assert.Equal(t, WelcomeMessage, bar.GetStatus())

	bar.SetStatus("Tarefa 'x' adicionada com sucesso!")
	assert.Equal(t, "Tarefa 'x' adicionada com sucesso!", bar.GetStatus())

	bar.SetCount(1)
	assert.Equal(t, "1 tarefa", bar.countLabel.Text)
	bar.SetCount(3)
	assert.Equal(t, "3 tarefas", bar.countLabel.Text)
	bar.SetCount(0)
	assert.Empty(t, bar.countLabel.Text)
}
