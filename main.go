package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/platform"
	"github.com/ytget/yt-grabber/internal/remote"
	"github.com/ytget/yt-grabber/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-grabber"
	AppName = "YT Grabber"

	WindowWidth  = 720
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("YT Grabber v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	opts := settings.Options()
	if err := platform.CreateDirectoryIfNotExists(opts.DownloadDir); err != nil {
		log.Printf("failed to ensure downloads dir: %v", err)
	}

	client, err := remote.NewClient(opts.ServiceURL)
	if err != nil {
		log.Printf("invalid service URL %q, using %s: %v", opts.ServiceURL, remote.DefaultBaseURL, err)
		client, err = remote.NewClient(remote.DefaultBaseURL)
		if err != nil {
			log.Fatalf("cannot create service client: %v", err)
		}
	}

	delivery := platform.NewFileDelivery(opts.DownloadDir)
	indicator := ui.NewProgressIndicator()
	notifier := ui.NewDialogNotifier(myWindow, localization)
	workflow := download.NewWorkflow(client, delivery, indicator, notifier)

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, localization, workflow, delivery, indicator)

	// Show and run
	myWindow.ShowAndRun()
}
