// Command linedit is a terminal text editor for a single file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/linedit"
	"github.com/iw2rmb/linedit/buffer"
	"github.com/iw2rmb/linedit/clipboard"
	"github.com/iw2rmb/linedit/editor"
	"github.com/iw2rmb/linedit/internal/config"
	"github.com/iw2rmb/linedit/internal/fileio"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

type options struct {
	configPath string
	logPath    string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errNotTerminal)
		return 1
	}
	renderer := lipgloss.NewRenderer(os.Stdout)
	if renderer.ColorProfile() == termenv.Ascii {
		fmt.Fprintln(os.Stderr, "Error: terminal does not support colors")
		return 1
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.logPath == "" {
		opts.logPath = cfg.LogFile
	}
	closeLog, err := setupLogging(opts.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	m, err := newApp(opts.file, cfg, renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("program: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion, showHelp bool

	fs := flag.NewFlagSet("linedit", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logPath, "log", "", "Append debug log to this file")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: linedit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: ctrl+s save, ctrl+q quit, ctrl+c/ctrl+x/ctrl+v copy/cut/paste\n")
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		return opts, false
	}
	if showHelp {
		fs.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("linedit %s\n", linedit.VersionTag())
		os.Exit(0)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one file can be opened")
		return opts, false
	}
	return opts, true
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(path)
}

// setupLogging sends the standard logger to path, or discards it. The
// terminal belongs to the editor while it runs.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "linedit:")
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// app hosts the editor and turns its quit request into program exit.
type app struct {
	editor editor.Model
}

func newApp(file string, cfg config.Config, r *lipgloss.Renderer) (app, error) {
	lines := []string{""}
	if file != "" {
		var err error
		var isNew bool
		lines, isNew, err = fileio.Load(file, cfg.MaxLines)
		if err != nil {
			return app{}, err
		}
		log.Printf("opened %q (%d lines, new=%v)", file, len(lines), isNew)
	}

	var clip buffer.Clipboard = &clipboard.Memory{}
	if cfg.SystemClipboard {
		clip = clipboard.NewSystem()
	}

	ecfg := editor.Config{
		Lines:     lines,
		Filename:  file,
		Style:     editor.NewStyle(r, paletteFrom(cfg.Theme)),
		Clipboard: clip,
		TabWidth:  cfg.RenderTabWidth(),
		MaxLines:  cfg.MaxLines,
	}
	if file != "" {
		ecfg.OnSave = func(lines []string) error {
			return fileio.Save(file, lines)
		}
	}

	m, err := editor.New(ecfg)
	if err != nil {
		return app{}, err
	}
	return app{editor: m}, nil
}

func paletteFrom(t config.Theme) editor.Palette {
	return editor.Palette{
		Inactive:    lipgloss.Color(t.Inactive),
		StatusFG:    lipgloss.Color(t.StatusFG),
		StatusBG:    lipgloss.Color(t.StatusBG),
		SelectionFG: lipgloss.Color(t.SelectionFG),
		SelectionBG: lipgloss.Color(t.SelectionBG),
	}
}

func (m app) Init() tea.Cmd { return m.editor.Init() }

func (m app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(editor.QuitMsg); ok {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m app) View() string { return m.editor.View() }
