package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/todo/internal/config"
	"github.com/ytget/todo/internal/storage"
	"github.com/ytget/todo/internal/submit"
	"github.com/ytget/todo/internal/tasks"
	"github.com/ytget/todo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.todo"
)

func main() {
	// Log version information
	log.Printf("Todo v%s starting...", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme(fyne.CurrentDevice().IsMobile()))

	myWindow := myApp.NewWindow("Todo")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services; tasks live in the app's preferences store
	settings := config.NewSettings(myApp)
	repo := storage.NewRepository(storage.NewPreferencesBackend(myApp))
	taskSvc := tasks.NewService(repo)
	sender := submit.NewClient(settings.GetEndpointURL(), settings.GetSendTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, taskSvc, sender)

	// Show and run
	myWindow.ShowAndRun()
}
