// Package watcher provides file watching for corpus re-analysis.
// It wraps fsnotify with a debouncer so bursts of writes to document files
// collapse into a single re-analysis batch.
package watcher
