package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"searchpath/internal/logging"
	"searchpath/internal/model"
	"searchpath/internal/report"
	"searchpath/internal/searchpath"
	"searchpath/internal/tui"
	"searchpath/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// options holds the parsed command line.
type options struct {
	envVar   string
	path     string
	pathSet  bool
	prepend  []string
	append   []string
	remove   []string
	cwd      bool
	dedup    bool
	all      bool
	file     bool
	dir      bool
	nameOnly bool
	list     bool
	json     bool
	verbose  int
	output   string
	web      bool
	addr     string
	tui      bool
	version  bool
	update   bool
	help     bool
	names    []string
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("searchpath", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: searchpath [options] [name...]\n\n")
		fmt.Fprintf(stderr, "searchpath finds names in an ordered list of directories, like which(1).\n")
		fmt.Fprintf(stderr, "The first directory holding a match wins.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  searchpath ls                 # First ls on $PATH\n")
		fmt.Fprintf(stderr, "  searchpath -a python3         # Every python3 on $PATH, in order\n")
		fmt.Fprintf(stderr, "  searchpath -e MANPATH -d man1 # First man1 directory on $MANPATH\n")
		fmt.Fprintf(stderr, "  searchpath -l -v              # Diagnose the search path itself\n")
		fmt.Fprintf(stderr, "  searchpath -t                 # Interactive browser\n")
	}

	fs.StringVarP(&opts.envVar, "env", "e", "PATH", "Environment variable holding the search path")
	fs.StringVarP(&opts.path, "path", "p", "", "Use this delimited search path instead of the environment")
	fs.StringArrayVar(&opts.prepend, "prepend", nil, "Add a directory before the others (repeatable)")
	fs.StringArrayVar(&opts.append, "append", nil, "Add a directory after the others (repeatable)")
	fs.StringArrayVar(&opts.remove, "remove", nil, "Drop every occurrence of a directory (repeatable)")
	fs.BoolVar(&opts.cwd, "cwd", false, "Append the current directory (.)")
	fs.BoolVarP(&opts.dedup, "dedup", "D", false, "Remove duplicate directories, keeping the first")
	fs.BoolVarP(&opts.all, "all", "a", false, "Print every match instead of the first")
	fs.BoolVarP(&opts.file, "file", "f", false, "Only match regular files")
	fs.BoolVarP(&opts.dir, "dir", "d", false, "Only match directories")
	fs.BoolVarP(&opts.nameOnly, "name-only", "n", false, "Refuse names that contain a path separator")
	fs.BoolVarP(&opts.list, "list", "l", false, "List the search path with diagnostics")
	fs.BoolVarP(&opts.json, "json", "j", false, "Output results as JSON")
	fs.CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity and listing detail (repeatable)")
	fs.StringVarP(&opts.output, "output", "o", "", "Write output to the specified file")
	fs.BoolVarP(&opts.web, "web", "w", false, "Serve the JSON API")
	fs.StringVar(&opts.addr, "addr", web.DefaultAddr, "Listen address for --web")
	fs.BoolVarP(&opts.tui, "tui", "t", false, "Start the interactive browser")
	fs.BoolVarP(&opts.version, "version", "V", false, "Print version information")
	fs.BoolVarP(&opts.update, "update", "u", false, "Check for a newer release")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show this help message")
	return fs
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	opts.pathSet = fs.Changed("path")
	opts.names = fs.Args()

	logging.SetupLogger(opts.verbose, stderr)
	logger := logging.GetLogger("cli")

	if opts.help {
		fs.Usage()
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "searchpath version %s\n", model.Version)
		return 0
	}
	if opts.update {
		return checkUpdate(stdout, stderr, model.Version)
	}
	if opts.file && opts.dir {
		fmt.Fprintln(stderr, "Error: --file and --dir cannot be combined")
		return 2
	}

	sp, err := buildSearchPath(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case opts.web:
		logger.Debug().Msg("Web mode")
		if err := web.StartServer(sp, opts.addr); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case opts.tui:
		logger.Debug().Msg("TUI mode")
		return runTuiMode(sp, stderr)
	}

	out, closeOut, err := openOutput(opts.output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeOut()

	if opts.list || len(opts.names) == 0 {
		logger.Debug().Msg("List mode")
		return runListMode(sp, opts, out, stderr)
	}
	logger.Debug().Strs("names", opts.names).Msg("Lookup mode")
	return runLookupMode(sp, opts, out, stderr)
}

// buildSearchPath applies the construction and mutation flags in a fixed
// order: source, remove, prepend, append, cwd, dedup.
func buildSearchPath(opts options) (*searchpath.SearchPath, error) {
	logger := logging.GetLogger("cli")

	var sp *searchpath.SearchPath
	if opts.pathSet {
		sp = searchpath.FromString(opts.path)
		logger.Info().Int("entries", sp.Len()).Msg("Using search path from --path")
	} else {
		var err error
		sp, err = searchpath.FromEnv(opts.envVar)
		if err != nil {
			var vnf *searchpath.VariableNotFoundError
			if errors.As(err, &vnf) && (len(opts.prepend) > 0 || len(opts.append) > 0 || opts.cwd) {
				logger.Info().Str("var", vnf.Name).Msg("Variable unset, starting from an empty search path")
				sp = searchpath.Empty()
			} else {
				return nil, fmt.Errorf("reading search path: %w", err)
			}
		}
	}

	for _, p := range opts.remove {
		sp.Remove(p)
	}
	for i := len(opts.prepend) - 1; i >= 0; i-- {
		sp.Prepend(opts.prepend[i])
	}
	for _, p := range opts.append {
		sp.Append(p)
	}
	if opts.cwd {
		sp.AppendCwd()
	}
	if opts.dedup {
		sp.Dedup()
	}
	return sp, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func lookupKind(opts options) searchpath.Kind {
	switch {
	case opts.file:
		return searchpath.File
	case opts.dir:
		return searchpath.Directory
	}
	return searchpath.Any
}

func runListMode(sp *searchpath.SearchPath, opts options, out, stderr io.Writer) int {
	entries := model.Inspect(sp)
	if opts.json {
		if err := report.WriteJSON(out, entries); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Fprint(out, report.Listing(entries, opts.verbose > 0))
	return 0
}

func runLookupMode(sp *searchpath.SearchPath, opts options, out, stderr io.Writer) int {
	kind := lookupKind(opts)
	results := make([]report.Result, 0, len(opts.names))
	status := 0

	for _, name := range opts.names {
		var r report.Result
		if opts.nameOnly && !searchpath.IsNameOnly(name) {
			r = report.Result{Name: name, Kind: kind.String(), Matches: []string{}}
		} else {
			r = report.Resolve(sp, name, kind, opts.all)
		}
		if !r.Found {
			status = 1
		}
		results = append(results, r)
	}

	if opts.json {
		if err := report.WriteJSON(out, results); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return status
	}
	fmt.Fprint(out, report.Lookup(results))
	return status
}

func runTuiMode(sp *searchpath.SearchPath, stderr io.Writer) int {
	m := tui.InitialModel(sp)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func checkUpdate(stdout, stderr io.Writer, currentVer string) int {
	if model.RepoOwner == "" || model.RepoName == "" {
		fmt.Fprintln(stderr, "Update check is not configured for this build")
		return 1
	}
	githubTag := &latest.GithubTag{
		Owner:      model.RepoOwner,
		Repository: model.RepoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Debug().Err(err).Msg("Update check failed")
		fmt.Fprintf(stderr, "Could not check for updates: %v\n", err)
		return 1
	}

	if res.Outdated {
		fmt.Fprintf(stdout, "\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Fprintf(stdout, "✅ You are using the latest version: %s\n", currentVer)
	}
	return 0
}
