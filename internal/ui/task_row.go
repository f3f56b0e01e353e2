package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/todo/internal/model"
)

// TaskRow is one list row: the task text, a swipe-revealed Delete button
// and an always visible delete icon.
type TaskRow struct {
	widget.BaseWidget

	task         *model.Task
	localization *Localization
	minHeight    float32

	// UI components
	textLabel *widget.Label
	swipeBtn  *widget.Button // revealed by swiping left
	deleteBtn *widget.Button // list-mode delete affordance

	gestures *GestureHandler

	// Callbacks
	onDelete func(taskID string)
	onScroll func(dy float32)
}

// Interface guards
var (
	_ fyne.Draggable   = (*TaskRow)(nil)
	_ mobile.Touchable = (*TaskRow)(nil)
)

// NewTaskRow creates a new, unbound task row widget
func NewTaskRow(localization *Localization, minHeight float32) *TaskRow {
	tr := &TaskRow{
		localization: localization,
		minHeight:    minHeight,
	}
	tr.gestures = NewGestureHandler(tr.handleGesture)
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetOnDelete sets the callback for both delete triggers
func (tr *TaskRow) SetOnDelete(onDelete func(taskID string)) {
	tr.onDelete = onDelete
}

// SetOnScroll sets where vertical drags go. Rows sit inside a scrolling
// list but catch every drag, so the list only scrolls through this.
func (tr *TaskRow) SetOnScroll(onScroll func(dy float32)) {
	tr.onScroll = onScroll
}

// Bind shows task in this row. Rows are recycled by the list, so any
// revealed swipe content is closed.
func (tr *TaskRow) Bind(task *model.Task) {
	tr.task = task
	tr.swipeBtn.Hide()
	if task == nil {
		tr.textLabel.SetText("")
		return
	}
	tr.textLabel.SetText(task.GetDisplayText())
}

// Task returns the bound task
func (tr *TaskRow) Task() *model.Task {
	return tr.task
}

// IsSwipeRevealed reports whether the swipe Delete button is showing
func (tr *TaskRow) IsSwipeRevealed() bool {
	return tr.swipeBtn.Visible()
}

// RevealSwipeContent shows the swipe Delete button
func (tr *TaskRow) RevealSwipeContent() {
	if tr.task == nil {
		return
	}
	tr.swipeBtn.Show()
	tr.Refresh()
}

// SwipeOut hides the swipe Delete button
func (tr *TaskRow) SwipeOut() {
	tr.swipeBtn.Hide()
	tr.Refresh()
}

// Dragged handles pointer and touch drags. Mostly vertical movement
// scrolls the list; the rest feeds swipe detection.
func (tr *TaskRow) Dragged(event *fyne.DragEvent) {
	dx, dy := event.Dragged.DX, event.Dragged.DY
	if tr.onScroll != nil && abs32(dy) > abs32(dx) {
		tr.onScroll(dy)
		return
	}
	tr.gestures.Dragged(dx, dy)
}

// DragEnd finishes a desktop pointer drag
func (tr *TaskRow) DragEnd() {
	tr.gestures.DragEnd()
}

// TouchDown handles touch down events
func (tr *TaskRow) TouchDown(event *mobile.TouchEvent) {
	tr.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (tr *TaskRow) TouchUp(event *mobile.TouchEvent) {
	tr.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (tr *TaskRow) TouchCancel(event *mobile.TouchEvent) {
	tr.gestures.TouchCancel(event)
}

func (tr *TaskRow) handleGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		tr.RevealSwipeContent()
	case GestureSwipeRight, GestureTap:
		if tr.IsSwipeRevealed() {
			tr.SwipeOut()
		}
	}
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.textLabel = widget.NewLabel("")
	tr.textLabel.Wrapping = fyne.TextWrapOff
	tr.textLabel.Truncation = fyne.TextTruncateEllipsis

	tr.swipeBtn = widget.NewButton(tr.localization.GetText(KeyDelete), func() {
		tr.SwipeOut()
		tr.delete("swipe")
	})
	tr.swipeBtn.Importance = widget.DangerImportance
	tr.swipeBtn.Hide()

	tr.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		tr.delete("list")
	})
	tr.deleteBtn.Importance = widget.LowImportance
}

func (tr *TaskRow) delete(trigger string) {
	if tr.task == nil {
		return
	}
	if tr.onDelete == nil {
		log.Printf("onDelete callback is nil for task %s", tr.task.ID)
		return
	}
	log.Printf("Delete (%s) requested for task %s", trigger, tr.task.ID)
	tr.onDelete(tr.task.ID)
}

// refreshTexts updates translated button labels
func (tr *TaskRow) refreshTexts() {
	tr.swipeBtn.SetText(tr.localization.GetText(KeyDelete))
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	r := &taskRowRenderer{taskRow: tr}
	r.createLayout()
	return r
}

// taskRowRenderer renders the task row widget
type taskRowRenderer struct {
	taskRow *TaskRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *taskRowRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *taskRowRenderer) MinSize() fyne.Size {
	minSize := r.layout.MinSize()
	if minSize.Height < r.taskRow.minHeight {
		minSize.Height = r.taskRow.minHeight
	}
	if minSize.Width < RowMinWidth {
		minSize.Width = RowMinWidth
	}
	return minSize
}

// Refresh refreshes the renderer
func (r *taskRowRenderer) Refresh() {
	r.taskRow.refreshTexts()
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *taskRowRenderer) Destroy() {}

// createLayout creates the main layout: text fills the row, actions pinned right
func (r *taskRowRenderer) createLayout() {
	tr := r.taskRow
	actions := container.NewHBox(tr.swipeBtn, tr.deleteBtn)
	r.layout = container.NewBorder(nil, nil, nil, actions, tr.textLabel)
}
