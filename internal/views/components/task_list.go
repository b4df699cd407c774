package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const noSelection = -1

// TaskList shows one row per task and tracks a single selection
type TaskList struct {
	container *fyne.Container
	list      *widget.List
	items     []string
	selected  int

	selectionHandler func(index int, selected bool)
}

// NewTaskList creates an empty task list
func NewTaskList() *TaskList {
	tl := &TaskList{
		items:    make([]string, 0),
		selected: noSelection,
	}
	tl.createComponents()
	return tl
}

func (tl *TaskList) createComponents() {
	tl.list = widget.NewList(
		func() int {
			return len(tl.items)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < len(tl.items) {
				item.(*widget.Label).SetText(tl.items[id])
			}
		},
	)

	tl.list.OnSelected = func(id widget.ListItemID) {
		tl.selected = id
		tl.notifySelection()
	}
	tl.list.OnUnselected = func(id widget.ListItemID) {
		if tl.selected == id {
			tl.selected = noSelection
			tl.notifySelection()
		}
	}

	tl.container = container.NewStack(tl.list)
}

// SetItems replaces the rendered rows and always drops the selection, since
// indexes may now point at different tasks.
func (tl *TaskList) SetItems(items []string) {
	tl.items = append(tl.items[:0], items...)
	tl.ClearSelection()
	tl.list.Refresh()
}

// Items returns the rendered rows
func (tl *TaskList) Items() []string {
	return append([]string(nil), tl.items...)
}

// Selected returns the selected row index
func (tl *TaskList) Selected() (int, bool) {
	if tl.selected == noSelection {
		return 0, false
	}
	return tl.selected, true
}

// Select selects a row programmatically
func (tl *TaskList) Select(index int) {
	if index >= 0 && index < len(tl.items) {
		tl.list.Select(index)
	}
}

// ClearSelection removes the selection
func (tl *TaskList) ClearSelection() {
	tl.list.UnselectAll()
	if tl.selected != noSelection {
		tl.selected = noSelection
		tl.notifySelection()
	}
}

// SetSelectionHandler is called whenever the selection changes
func (tl *TaskList) SetSelectionHandler(handler func(index int, selected bool)) {
	tl.selectionHandler = handler
}

func (tl *TaskList) notifySelection() {
	if tl.selectionHandler == nil {
		return
	}
	index, ok := tl.Selected()
	tl.selectionHandler(index, ok)
}

// GetContainer returns the list container
func (tl *TaskList) GetContainer() *fyne.Container {
	return tl.container
}
