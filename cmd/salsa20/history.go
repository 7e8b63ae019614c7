package main

import (
	"os"

	"github.com/nmetens/salsa20-go/historylog"
)

// openHistoryLog opens (creating/appending as needed) the NDJSON history
// log at path and returns a historylog.Log writing to it, along with a
// closer the caller must invoke when done. If path is empty, history
// logging is disabled: the returned Log is nil, the closer is a no-op and
// the error is nil.
func openHistoryLog(path string) (*historylog.Log, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}

	log := historylog.New(f)
	closer := func() {
		_ = log.Sync()
		_ = f.Close()
	}
	return log, closer, nil
}
