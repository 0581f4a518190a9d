package main

import (
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"goa.design/clue/log"
)

// watch runs a round now and after every write to the declaration file. The
// directory is watched rather than the file so editors replacing the file
// are followed.
func (e *env) watch(stdout io.Writer) int {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error(e.ctx, err)
		return exitError
	}
	defer w.Close()

	path, err := filepath.Abs(e.opts.symbols)
	if err != nil {
		log.Error(e.ctx, err)
		return exitError
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		log.Error(e.ctx, err)
		return exitError
	}

	e.watchRound(stdout)

	for {
		select {
		case <-e.ctx.Done():
			return exitOK

		case ev, ok := <-w.Events:
			if !ok {
				return exitOK
			}

			if filepath.Clean(ev.Name) != path || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}

			log.Debug(e.ctx, log.KV{K: "msg", V: "declarations changed"}, log.KV{K: "op", V: ev.Op.String()})
			e.watchRound(stdout)

		case err, ok := <-w.Errors:
			if !ok {
				return exitOK
			}

			log.Error(e.ctx, err)
		}
	}
}

// watchRound runs one round; errors are logged and watching goes on.
func (e *env) watchRound(stdout io.Writer) {
	report, err := e.round()
	if err != nil {
		log.Error(e.ctx, err)
		return
	}

	printReport(stdout, report)
}
