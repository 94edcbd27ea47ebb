// watcher.go connects the filesystem watcher to the Bubble Tea loop.
//
// The watcher runs on its own goroutine and only signals that something
// under the root was created, removed or renamed. The signal is turned into a
// treeChangedMsg so the rebuild itself happens on the update loop, which is
// the only goroutine that touches the notebook.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/skrib/internal/watcher"
)

// treeChangedMsg reports a debounced burst of structural changes under root.
type treeChangedMsg struct {
	root string
}

// restartWatcher stops any running watcher and starts one on the current
// root. It returns the command that waits for the first change.
func (m *Model) restartWatcher() tea.Cmd {
	m.stopWatcher()
	root := m.nb.RootDir()
	if !m.watchEnabled || root == "" {
		return nil
	}

	w, err := watcher.New(root)
	if err != nil {
		appLog.Warn("start filesystem watcher", "root", root, "error", err)
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)
	m.watch = w
	m.watchCancel = cancel
	return waitForTreeChange(w)
}

func (m *Model) stopWatcher() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	if m.watch != nil {
		if err := m.watch.Close(); err != nil {
			appLog.Warn("stop filesystem watcher", "root", m.watch.Root(), "error", err)
		}
		m.watch = nil
	}
}

// waitForTreeChange blocks until w signals a change. A closed watcher yields
// no message.
func waitForTreeChange(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return treeChangedMsg{root: w.Root()}
	}
}

// handleTreeChanged rebuilds the tree after external changes and keeps
// listening. Signals from a previous root are dropped.
func (m *Model) handleTreeChanged(msg treeChangedMsg) (tea.Model, tea.Cmd) {
	if m.watch == nil || msg.root != m.watch.Root() {
		return m, nil
	}
	if err := m.rebuildFromDisk(); err != nil {
		appLog.Warn("rebuild after filesystem change", "root", msg.root, "error", err)
	}
	return m, waitForTreeChange(m.watch)
}
