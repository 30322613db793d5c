package tui

import "github.com/atotto/clipboard"

// DefaultPageSize is the list page size when no option overrides it.
const DefaultPageSize = 20

type Option func(*Model)

// WithPageSize overrides the requested list page size.
func WithPageSize(size int) Option {
	return func(m *Model) {
		if size > 0 {
			m.pageSize = size
		}
	}
}

// WithClipboardWriter overrides how copied titles reach the system clipboard.
func WithClipboardWriter(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.copyToClipboard = write
		}
	}
}

// defaultClipboardWriter writes through the OS clipboard.
func defaultClipboardWriter(text string) error {
	return clipboard.WriteAll(text)
}
