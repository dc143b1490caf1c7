package tui

// Results of commands run off the event loop.

type loadedMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type uploadedMsg struct {
	err error
}
