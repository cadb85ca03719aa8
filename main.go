package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rbnotes/internal/cli"
	"rbnotes/internal/config"
	"rbnotes/internal/logger"
	"rbnotes/internal/model"
	"rbnotes/internal/rekordbox"
	"rbnotes/internal/report"
	"rbnotes/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "rbnotes",
		Repository: "rbnotes",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/rbnotes/rbnotes/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rbnotes [options] <rekordbox.xml>\n\n")
		fmt.Fprintf(os.Stderr, "rbnotes prints the comments and hotcues of every track in a playlist\n")
		fmt.Fprintf(os.Stderr, "from a rekordbox XML export, in playlist order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  RBNOTES_LIBRARY          library used when no path is given\n")
		fmt.Fprintf(os.Stderr, "  RBNOTES_PROMPT_ATTEMPTS  invalid answers allowed at the prompt (0 = no limit)\n")
		fmt.Fprintf(os.Stderr, "  RBNOTES_LOG_LEVEL        debug, info, warn or error\n")
		fmt.Fprintf(os.Stderr, "  RBNOTES_LOG_FILE         also write JSON logs to this file\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rbnotes rekordbox.xml           # List playlists and ask which one to print\n")
		fmt.Fprintf(os.Stderr, "  rbnotes -l rekordbox.xml        # Only list the playlists\n")
		fmt.Fprintf(os.Stderr, "  rbnotes -p 3 rekordbox.xml      # Print playlist 3\n")
		fmt.Fprintf(os.Stderr, "  rbnotes -p 3 -j rekordbox.xml   # Playlist 3 as JSON\n")
		fmt.Fprintf(os.Stderr, "  rbnotes -t rekordbox.xml        # Browse playlists in a TUI\n")
	}

	playlistFlag := pflag.IntP("playlist", "p", 0, "Print playlist N from the listing without prompting")
	listFlag := pflag.BoolP("list", "l", false, "Print the playlist listing and exit")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the selected playlist as JSON")
	tuiFlag := pflag.BoolP("tui", "t", false, "Choose the playlist in an interactive terminal UI")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Log debug details about the export")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("rbnotes version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *verboseFlag {
		cfg.Log.Level = logger.DebugLevel
	}

	path := cfg.LibraryPath
	if pflag.NArg() > 0 {
		path = pflag.Arg(0)
	}
	if path == "" {
		pflag.Usage()
		os.Exit(2)
	}

	// The TUI owns the terminal, so it only logs to the file.
	var console io.Writer = os.Stderr
	if *tuiFlag {
		console = nil
	}
	log, err := logger.New(cfg.Log, console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *tuiFlag {
		runTuiMode(path, log, *jsonFlag)
		return
	}

	lib := openLibrary(path, log)
	entries := report.ListPlaylists(lib.Playlists)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, model.ErrNoPlaylists)
		os.Exit(1)
	}

	if *listFlag {
		if err := report.WriteListing(os.Stdout, entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var entry report.Entry
	if pflag.Lookup("playlist").Changed {
		entry, err = report.SelectIndex(entries, *playlistFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	} else {
		// Keep stdout clean for the JSON document.
		out := os.Stdout
		if *jsonFlag {
			out = os.Stderr
		}
		entry = promptForPlaylist(entries, out, cfg.PromptAttempts)
	}

	printPlaylist(entry, lib, log, *jsonFlag)
}

// openLibrary loads the export or exits with a hint pointing at the bad line.
func openLibrary(path string, log *zap.Logger) *rekordbox.Library {
	lib, err := rekordbox.Open(path, log)
	if err == nil {
		return lib
	}

	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
	var docErr *model.DocumentError
	if errors.As(err, &docErr) && docErr.Line > 0 {
		fmt.Fprintln(os.Stderr)
		hint := model.GetLineContext(path, docErr.Line, docErr.Column)
		fmt.Fprintln(os.Stderr, strings.TrimSuffix(hint.String(), "\n"))
	}
	os.Exit(1)
	return nil
}

func promptForPlaylist(entries []report.Entry, out io.Writer, attempts int) report.Entry {
	if err := report.WriteListing(out, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prompter := cli.NewPrompter(os.Stdin, out)
	prompter.MaxAttempts = attempts
	entry, err := prompter.Choose(entries)
	switch {
	case errors.Is(err, model.ErrQuit):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return entry
}

func printPlaylist(entry report.Entry, lib *rekordbox.Library, log *zap.Logger, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Export(entry, lib.Collection)); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	summary, err := report.WriteReport(os.Stdout, entry, lib.Collection, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
	log.Debug("Report written",
		zap.String("playlist", entry.Path),
		zap.Int("entries", summary.Entries),
		zap.Int("missing", summary.Missing))
}

func runTuiMode(path string, log *zap.Logger, asJSON bool) {
	m := tui.InitialModel(path, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}

	app, ok := final.(tui.AppModel)
	if !ok {
		return
	}
	if app.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, app.Err)
		os.Exit(1)
	}
	if app.Chosen == nil {
		return
	}
	printPlaylist(*app.Chosen, app.Library, log, asJSON)
}
