package ui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/todo/internal/config"
	"github.com/ytget/todo/internal/model"
	"github.com/ytget/todo/internal/submit"
	"github.com/ytget/todo/internal/tasks"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	titleLabel   *widget.Label
	taskEntry    *widget.Entry
	addBtn       *widget.Button
	sendBtn      *widget.Button
	taskList     *widget.List
	emptyLabel   *widget.Label
	visibleTasks []*model.Task
	taskSvc      tasks.Manager
	sender       submit.Sender
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       int
	notificationMutex     sync.Mutex

	// sendWG tracks in-flight sends
	sendWG sync.WaitGroup
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, taskSvc tasks.Manager, sender submit.Sender) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		taskSvc:      taskSvc,
		sender:       sender,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Re-render after every task change
	ui.taskSvc.SetUpdateCallback(ui.onTasksChanged)

	ui.setupUI()

	// Initial paint is derived from the loaded tasks
	ui.refresh()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Alignment = fyne.TextAlignCenter

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, settingsBtn, ui.titleLabel)

	// Create notification panel under the title (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(header, ui.notificationContainer)

	// Create task entry; Enter submits, typing toggles the Add button
	ui.taskEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyNewTask))
	ui.taskEntry.OnChanged = ui.onEntryChanged
	ui.taskEntry.OnSubmitted = func(string) {
		ui.AddNewTask()
	}

	ui.addBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyAdd), ui.AddNewTask)
	ui.addBtn.Importance = widget.HighImportance

	ui.sendBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeySend), ui.SendTasks)

	footer := container.NewBorder(nil, nil, nil, container.NewHBox(ui.addBtn, ui.sendBtn), ui.taskEntry)

	// Create task list
	rowHeight := ui.mobile.GetRowMinHeight()
	ui.taskList = widget.NewList(
		func() int {
			return len(ui.visibleTasks)
		},
		func() fyne.CanvasObject {
			row := NewTaskRow(ui.localization, rowHeight)
			row.SetOnDelete(ui.DeleteTask)
			row.SetOnScroll(ui.scrollList)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateTaskItem(id, obj)
		},
	)

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoTasks))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Wrapping = fyne.TextWrapWord

	center := container.NewStack(ui.taskList, container.NewCenter(ui.emptyLabel))

	content := container.NewBorder(
		topCombined, // top
		footer,      // bottom
		nil,         // left
		nil,         // right
		center,      // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.taskEntry.SetPlaceHolder(ui.localization.GetText(KeyNewTask))
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.sendBtn.SetText(ui.localization.GetText(KeySend))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoTasks))
	ui.taskList.Refresh()
}

// onEntryChanged re-evaluates the Add button while typing
func (ui *RootUI) onEntryChanged(string) {
	ui.updateButtons()
}

// onTasksChanged is the task service update callback
func (ui *RootUI) onTasksChanged() {
	ui.refresh()
}

// refresh re-renders the list and button states from the task service
func (ui *RootUI) refresh() {
	ui.visibleTasks = ui.taskSvc.Tasks()

	if len(ui.visibleTasks) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}

	ui.updateButtons()
	ui.taskList.Refresh()
}

// updateButtons derives enablement: Add needs text, Send needs tasks
func (ui *RootUI) updateButtons() {
	if ui.taskEntry.Text != "" {
		ui.addBtn.Enable()
	} else {
		ui.addBtn.Disable()
	}

	if len(ui.visibleTasks) > 0 {
		ui.sendBtn.Enable()
	} else {
		ui.sendBtn.Disable()
	}
}

// scrollList moves the list by a drag delta; dragging up reveals later rows
func (ui *RootUI) scrollList(dy float32) {
	ui.taskList.ScrollToOffset(ui.taskList.GetScrollOffset() - dy)
}

// updateTaskItem binds a recycled row to the task at id
func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*TaskRow)
	if !ok {
		return
	}
	if id < 0 || id >= len(ui.visibleTasks) {
		row.Bind(nil)
		return
	}
	row.Bind(ui.visibleTasks[id])
}

// AddNewTask adds the entry text as a task. Empty input does nothing.
func (ui *RootUI) AddNewTask() {
	text := ui.taskEntry.Text
	if text == "" {
		return
	}

	task, err := ui.taskSvc.AddTask(text)
	if err != nil {
		log.Printf("Error adding task: %v", err)
		ui.showNotification(ui.localization.GetText(KeyTaskSaveFailed)+": "+err.Error(), false)
		return
	}

	log.Printf("Task added from UI: id=%s", task.ID)

	ui.taskEntry.SetText("")
	ui.updateButtons()
}

// DeleteTask deletes a task; both the swipe button and the delete icon route here
func (ui *RootUI) DeleteTask(taskID string) {
	log.Printf("DeleteTask called for task %s", taskID)

	if err := ui.taskSvc.DeleteTask(taskID); err != nil {
		log.Printf("Error deleting task %s: %v", taskID, err)
		ui.showNotification(ui.localization.GetText(KeyTaskDeleteFailed)+": "+err.Error(), false)
		ui.refresh()
	}
}

// SendTasks posts a snapshot of the visible tasks in the background.
// Later edits do not affect a send already in flight.
func (ui *RootUI) SendTasks() {
	snapshot := make([]*model.Task, len(ui.visibleTasks))
	copy(snapshot, ui.visibleTasks)
	if len(snapshot) == 0 {
		return
	}

	ui.showNotification(ui.localization.GetText(KeySending), true)

	ui.sendWG.Add(1)
	go func() {
		defer ui.sendWG.Done()
		receipt, err := ui.sender.Send(context.Background(), snapshot)
		ui.onSendComplete(len(snapshot), receipt, err)
	}()
}

// onSendComplete reports the send result in the notification panel
func (ui *RootUI) onSendComplete(count int, receipt *submit.Receipt, err error) {
	if err != nil {
		log.Printf("Sending %d tasks failed: %v", count, err)
		ui.showNotification(IconError+" "+ui.localization.GetText(KeySendFailed)+": "+err.Error(), false)
		return
	}

	log.Printf("Sent %d tasks, status %d", count, receipt.StatusCode)
	ui.showNotification(IconDone+" "+fmt.Sprintf(ui.localization.GetText(KeySendSucceeded), count, receipt.StatusCode), false)
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity;
// otherwise the panel hides itself after NotificationAutoHide.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationMutex.Lock()
	ui.notificationSeq++
	seq := ui.notificationSeq
	ui.notificationMutex.Unlock()

	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})

	if spinning {
		return
	}

	time.AfterFunc(NotificationAutoHide, func() {
		ui.notificationMutex.Lock()
		current := ui.notificationSeq
		ui.notificationMutex.Unlock()

		// A newer message owns the panel
		if current != seq {
			return
		}
		ui.hideNotification()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running services
func (ui *RootUI) applySettings() {
	ui.sender.SetEndpoint(ui.settings.GetEndpointURL())
	ui.sender.SetTimeout(ui.settings.GetSendTimeout())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
}
