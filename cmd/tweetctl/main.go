// tweetctl is the administrative and reader-side companion to the
// tweetwall server: it publishes the URL list for a date, resolves lists
// through the remote-first/cache-fallback tiers, renders previews, and can
// keep the local cache warm.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tweetwall/backend/internal/cache"
	"github.com/tweetwall/backend/internal/datenav"
	"github.com/tweetwall/backend/internal/embed"
	"github.com/tweetwall/backend/internal/scheduler"
	"github.com/tweetwall/backend/internal/syncer"
	"github.com/tweetwall/backend/internal/tweet"
	"github.com/tweetwall/backend/internal/view"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	var (
		serverURL = flag.String("server", "http://localhost:8080", "snapshot server base URL")
		cachePath = flag.String("cache", "tweetwall-cache.sqlite3", "local cache database path")
		date      = flag.String("date", "", "calendar date YYYY-MM-DD (default today)")
		interval  = flag.Duration("interval", 15*time.Minute, "refresh interval for watch")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	local, err := cache.Open(*cachePath)
	if err != nil {
		slog.Error("failed to open local cache", "path", *cachePath, "error", err)
		os.Exit(1)
	}
	defer local.Close()

	sc := syncer.New(syncer.NewHTTPRemote(*serverURL), local)
	ctx := context.Background()

	switch command {
	case "publish":
		runPublish(ctx, sc, *date)
	case "show":
		runShow(ctx, sc, *date)
	case "render":
		runRender(ctx, sc, *serverURL, *date)
	case "watch":
		runWatch(sc, *interval)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: tweetctl [flags] <command>

commands:
  publish   read text from stdin, extract post URLs, publish them for -date
  show      print the resolved URL list for -date
  render    resolve -date and render a preview for every post
  watch     periodically re-resolve today to keep the local cache warm

flags:
`)
	flag.PrintDefaults()
}

// runPublish extracts post URLs from stdin and publishes them. A malformed
// -date is a hard error here: publishers do not get the silent
// fall-back-to-today that readers do.
func runPublish(ctx context.Context, sc *syncer.Client, date string) {
	if date == "" {
		date = datenav.Today(time.Now())
	}
	if !datenav.Valid(date) {
		slog.Error("invalid date", "date", date)
		os.Exit(1)
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		slog.Error("failed to read stdin", "error", err)
		os.Exit(1)
	}

	urls := tweet.ExtractURLs(string(text))
	if len(urls) == 0 {
		slog.Error("no post URLs found in input")
		os.Exit(1)
	}

	out := sc.Publish(ctx, date, urls)
	switch {
	case out.RemoteSaved:
		fmt.Printf("published %d posts for %s\n", len(urls), date)
	case out.LocalSaved:
		fmt.Printf("published %d posts for %s (saved locally only, remote write failed)\n", len(urls), date)
	default:
		slog.Error("publish failed both remotely and locally", "date", date)
		os.Exit(1)
	}
}

func runShow(ctx context.Context, sc *syncer.Client, date string) {
	nav := datenav.New(date, nil)
	session := view.NewSession(sc, nav)

	urls := session.Select(ctx, nav.Current())
	if len(urls) == 0 {
		fmt.Printf("no posts for %s\n", session.Current())
		return
	}
	for _, u := range urls {
		fmt.Println(u)
	}
}

func runRender(ctx context.Context, sc *syncer.Client, serverURL, date string) {
	nav := datenav.New(date, nil)
	session := view.NewSession(sc, nav)

	urls := session.Select(ctx, nav.Current())
	if len(urls) == 0 {
		fmt.Printf("no posts for %s\n", session.Current())
		return
	}

	renderer := embed.NewHTTPRenderer(serverURL)
	items := view.New(urls, renderer, embed.Config{}).Load(ctx)

	for _, item := range items {
		switch item.State {
		case embed.StateLoaded:
			fmt.Printf("[%s] @%s: %s\n", item.State, item.Handle.Author, item.Handle.Text)
		default:
			fmt.Printf("[%s] %s (%s)\n", item.State, item.Message, item.URL)
		}
	}
}

func runWatch(sc *syncer.Client, interval time.Duration) {
	warm := scheduler.RunnerFunc(func(ctx context.Context) error {
		today := datenav.Today(time.Now())
		urls := sc.Resolve(ctx, today)
		slog.Info("cache refreshed", "date", today, "urls", len(urls))
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Warm once immediately, then on the interval.
	_ = warm.Run(ctx)

	sched := scheduler.New(warm, interval)
	go sched.Start(ctx)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	sched.Stop()
}
