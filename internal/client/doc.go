// Package client assembles the terminal console: the frontends service
// adapter, the shared console page and the bubbletea UI.
package client
