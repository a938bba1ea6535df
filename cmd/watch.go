package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/fsnotify/fsnotify"

	"pycheck/report"
)

// execWatchCommand executes the watch subcommand: an initial check followed
// by a re-check every time the file is written.  The enclosing directory is
// watched rather than the file itself because most editors replace files on
// save, which would otherwise drop the watch.
func execWatchCommand(result *olive.ArgParseResult, loglevel string) {
	path, _ := result.PrimaryArg()

	absPath, err := filepath.Abs(path)
	if err != nil {
		report.DisplayFatal("error calculating absolute path: %s", err)
		os.Exit(1)
	}

	cfg, level := loadRunConfig(path, loglevel)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		report.DisplayFatal("unable to create file watcher: %s", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		report.DisplayFatal("unable to watch `%s`: %s", filepath.Dir(absPath), err)
		os.Exit(1)
	}

	runCheck(path, cfg, level)

	if level == report.LogLevelVerbose {
		report.PrintInfoMessage("Watching", path)
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}

			if ev.Name == absPath && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runCheck(path, cfg, level)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			report.PrintErrorMessage("Watch Error", err)
		}
	}
}
