package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/client"
	"github.com/mkarren/lanes/internal/config"
	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/picker"
	"github.com/mkarren/lanes/internal/prefs"
	"github.com/mkarren/lanes/internal/rows"
	"github.com/mkarren/lanes/internal/service"
	"github.com/mkarren/lanes/internal/signal"
	"github.com/mkarren/lanes/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "prefs":
			runPrefs(os.Args[2:])
			return
		case "search":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: lanes search <query>\n")
				os.Exit(1)
			}
			runQuickSearch(strings.Join(os.Args[2:], " "))
			return
		}
	}

	// No subcommand - run full TUI
	runTUI(os.Args[1:])
}

func printHelp() {
	help := `lanes - row-based media library browser

Usage:
  lanes [library] [folder-id]     Open interactive TUI
  lanes search <query>            Quick search → select → play
  lanes prefs                     Show preferences
  lanes prefs watched <mode>      Set watched indicator: always, episodes, never
  lanes prefs rating <mode>       Set rating display: tomatoes, stars, none
  lanes help                      Show this help

Libraries:
  movies, tv, music, livetv       Row layout for that collection type

TUI Keybindings:
  Navigation:
    j/k         Row below/above
    h/l         Previous/next card
    0/$         Start/end of row
    gg/G        First/last row

  Actions:
    Enter       Open card / press button
    Y           Copy stream URL to clipboard
    d           Remove item from row
    r           Refresh all rows
    /           Fuzzy search loaded cards

  Other:
    ?           Show help
    q           Quit

Configuration:
  ~/.config/lanes/config.toml
  ~/.config/lanes/prefs.db
`
	fmt.Print(help)
}

// runTUI runs the full interactive TUI.
func runTUI(args []string) {
	configPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		logPath := filepath.Join(filepath.Dir(configPath), "lanes.log")
		f, err := tea.LogToFile(logPath, "lanes")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(os.Stderr)
	}

	srv, err := client.NewClient(cfg.ServerURL, cfg.Token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server client: %v\n", err)
		os.Exit(1)
	}

	prefsPath, err := prefs.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting prefs path: %v\n", err)
		os.Exit(1)
	}
	prefStore, err := prefs.Open(prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences: %v\n", err)
		os.Exit(1)
	}
	defer prefStore.Close()

	folder := folderFromArgs(args)
	bus := signal.NewBus()
	coordinator := rows.NewCoordinator(rows.Params{
		Folder: folder,
		Defs:   rows.DefaultDefinitions(folder),
		Bus:    bus,
	})
	defer coordinator.Close()

	markdown, err := service.NewGlamourRenderer(72)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	layoutMode := cards.LayoutGrid
	if cfg.Layout == "list" {
		layoutMode = cards.LayoutList
	}

	app := tui.NewApp(tui.AppParams{
		Coordinator: coordinator,
		Items:       srv,
		ImageURLs:   srv,
		Images:      srv,
		Navigator:   &loggingNavigator{},
		Launcher:    &streamLauncher{client: srv},
		Backdrop:    &loggingBackdrop{},
		Markdown:    markdown,
		Deletions:   signal.NewDeletions(),
		Bus:         bus,
		StreamURL:   srv.StreamURL,
		WatchedMode: prefStore.WatchedIndicator(),
		RatingMode:  prefStore.Rating(),
		LayoutMode:  layoutMode,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch queries the server and opens the selected item's
// stream.
func runQuickSearch(query string) {
	configPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srv, err := client.NewClient(cfg.ServerURL, cfg.Token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server client: %v\n", err)
		os.Exit(1)
	}

	page, err := srv.FetchPage(context.Background(), service.Query{SearchTerm: query}, 0, 25)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching: %v\n", err)
		os.Exit(1)
	}

	if len(page.Items) == 0 {
		fmt.Printf("No items found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.Item

	if len(page.Items) == 1 {
		// Single result - select it directly
		selected = &page.Items[0]
		fmt.Printf("Opening: %s\n", selected.Name)
	} else {
		// Multiple results - show picker
		p := picker.New(page.Items, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedItem()
	}

	if selected == nil {
		os.Exit(0)
	}

	if err := openURL(srv.StreamURL(selected.ID)); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stream: %v\n", err)
		os.Exit(1)
	}
}

// folderFromArgs builds the browsed folder from CLI arguments: an
// optional library name and an optional folder id.
func folderFromArgs(args []string) *model.Item {
	folder := &model.Item{
		Kind: model.KindUserView,
		Name: "Library",
	}

	for _, arg := range args {
		switch arg {
		case "movies":
			folder.CollectionType = model.CollectionMovies
			folder.Name = "Movies"
		case "tv":
			folder.CollectionType = model.CollectionTVShows
			folder.Name = "Shows"
		case "music":
			folder.CollectionType = model.CollectionMusic
			folder.Name = "Music"
		case "livetv":
			folder.CollectionType = model.CollectionLiveTV
			folder.Name = "Live TV"
		default:
			if id, err := uuid.Parse(arg); err == nil {
				folder.ID = id
			} else {
				fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
				os.Exit(1)
			}
		}
	}

	return folder
}

// runPrefs shows or updates stored preferences.
func runPrefs(args []string) {
	prefsPath, err := prefs.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting prefs path: %v\n", err)
		os.Exit(1)
	}
	store, err := prefs.Open(prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		fmt.Printf("watched: %s\n", store.WatchedIndicator())
		fmt.Printf("rating:  %s\n", store.Rating())
		return
	}

	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: lanes prefs <watched|rating> <mode>\n")
		os.Exit(1)
	}

	switch args[0] {
	case "watched":
		mode, ok := prefs.ParseWatchedIndicator(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown watched mode: %s (always, episodes, never)\n", args[1])
			os.Exit(1)
		}
		if err := store.SetWatchedIndicator(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving preference: %v\n", err)
			os.Exit(1)
		}
	case "rating":
		mode, ok := prefs.ParseRating(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown rating mode: %s (tomatoes, stars, none)\n", args[1])
			os.Exit(1)
		}
		if err := store.SetRating(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving preference: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown preference: %s\n", args[0])
		os.Exit(1)
	}
}

// loggingNavigator records navigation requests. A host embedding the
// surface would route these to its own screens.
type loggingNavigator struct{}

func (n *loggingNavigator) Navigate(dest service.Destination) error {
	log.Printf("navigate: kind=%d item=%s filter=%q", dest.Kind, dest.ItemID, dest.KindFilter)
	return nil
}

// streamLauncher opens playable items in the system handler via their
// direct stream URL.
type streamLauncher struct {
	client *client.Client
}

func (l *streamLauncher) Launch(item *model.Item) error {
	switch item.Kind {
	case model.KindMovie, model.KindVideo, model.KindEpisode, model.KindLiveTvRecording:
		return openURL(l.client.StreamURL(item.ID))
	default:
		log.Printf("launch: open details for %s (%s)", item.Name, item.Kind)
		return nil
	}
}

// loggingBackdrop stands in for a backdrop surface; terminals have
// nowhere to put one.
type loggingBackdrop struct{}

func (b *loggingBackdrop) SetBackground(item *model.Item) error {
	log.Printf("backdrop: %s", item.Name)
	return nil
}

func (b *loggingBackdrop) ClearBackgrounds() error {
	log.Printf("backdrop: clear")
	return nil
}

// openURL opens a URL in the default handler.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd == nil {
		return fmt.Errorf("no handler for %s", runtime.GOOS)
	}
	return cmd.Start()
}
