// Command ytgrab looks up the formats of a video through the grabber service
// and downloads one of them into a local directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/platform"
	"github.com/ytget/yt-grabber/internal/progress"
	"github.com/ytget/yt-grabber/internal/remote"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

type app struct {
	// CLI flags
	Options     config.Options
	FormatID    string // format to download; formats are listed when empty
	Quiet       bool   // no progress bar
	Verbose     bool   // keep library logs on stderr
	ShowVersion bool

	fs *flag.FlagSet
}

func (a *app) SetFlags() {
	a.Options = config.DefaultOptions()

	a.fs = flag.NewFlagSet("ytgrab", flag.ExitOnError)
	a.fs.StringVarP(&a.Options.ServiceURL, "service", "s", a.Options.ServiceURL, "Grabber service URL (env "+config.EnvServiceURL+").")
	a.fs.StringVarP(&a.Options.DownloadDir, "dir", "d", a.Options.DownloadDir, "Directory for downloaded files (env "+config.EnvDownloadDir+").")
	a.fs.StringVarP(&a.FormatID, "format", "f", "", "Format id to download. Formats are listed when omitted.")
	a.fs.BoolVarP(&a.Quiet, "quiet", "q", false, "Do not display the progress bar.")
	a.fs.BoolVarP(&a.Verbose, "verbose", "v", false, "Write diagnostic logs to stderr.")
	a.fs.BoolVar(&a.ShowVersion, "version", false, "Print the version and exit.")
	a.fs.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintln(os.Stderr, "Look up the formats of a video and download one of them.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, name, "[ options... ] URL")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "  example:  ", name, "--format 22", "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "  options:")
		a.fs.PrintDefaults()
	}
}

func main() {
	a := &app{}
	a.SetFlags()
	_ = a.fs.Parse(os.Args[1:])

	if a.ShowVersion {
		fmt.Printf("ytgrab %s\n", version)
		return
	}
	if a.fs.NArg() != 1 {
		a.fs.Usage()
		os.Exit(2)
	}
	if !a.Verbose {
		log.SetOutput(io.Discard)
	}

	// trap Ctrl+C and cancel the running request
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := a.run(ctx, a.fs.Arg(0)); err != nil {
		cancel()
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, videoURL string) error {
	if err := a.Options.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ytgrab: %v\n", err)
		return err
	}
	client, err := remote.NewClient(a.Options.ServiceURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ytgrab: %v\n", err)
		return err
	}

	var term *progress.Terminal
	var indicator progress.Indicator
	if !a.Quiet {
		term = progress.NewTerminal(ctx, os.Stderr, "formats")
		indicator = term
		defer term.Wait()
	}

	notifier := download.NotifierFunc(func(err error) {
		fmt.Fprintf(os.Stderr, "ytgrab: %v\n", err)
	})
	delivery := platform.NewFileDelivery(a.Options.DownloadDir)
	workflow := download.NewWorkflow(client, delivery, indicator, notifier)

	video, err := workflow.Lookup(ctx, videoURL)
	if err != nil {
		return err
	}

	if a.FormatID == "" {
		printFormats(os.Stdout, video, workflow.Catalog().Formats())
		return nil
	}

	if err := platform.CreateDirectoryIfNotExists(a.Options.DownloadDir); err != nil {
		fmt.Fprintf(os.Stderr, "ytgrab: %v\n", err)
		return err
	}
	if term != nil {
		term.SetName(a.FormatID)
	}
	if err := workflow.Download(ctx, a.FormatID); err != nil {
		return err
	}

	last := workflow.Last()
	fmt.Printf("Saved %s (%s in %s)\n", last.OutputPath, humanize.Bytes(uint64(last.Size)), last.Duration().Round(time.Millisecond))
	return nil
}

func printFormats(w io.Writer, video model.VideoRef, formats []model.FormatDescriptor) {
	fmt.Fprintf(w, "%s [%s]\n\n", video.Title, video.ID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tFORMAT\tSIZE")
	for _, f := range formats {
		size := f.FileSize.String()
		if size == "" {
			size = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.FormatID, f.Kind(), f.Label(), size)
	}
	tw.Flush()
}
