package ports

// HistoryWatcher reports changes to users' history logs.
// Only one Watch call should be active at a time.
type HistoryWatcher interface {
	// Watch starts monitoring the log at path. onChange fires after each
	// write, create, remove or rename of that file. The callback may be
	// invoked from any goroutine. The file itself does not need to exist
	// yet, but its directory does.
	Watch(path string, onChange func()) error

	// Stop ends monitoring and releases all resources. A callback already
	// running may still complete. Safe to call multiple times.
	Stop() error
}
