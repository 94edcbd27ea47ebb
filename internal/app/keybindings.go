package app

import (
	"slices"
	"strings"
)

// Browse-mode actions. Keys are looked up in keyToAction and the resulting
// action is dispatched in handleBrowseKey. Users can rebind any action via
// the "keybindings" map in config.yaml.
const (
	actionQuit         = "app.quit"
	actionHelp         = "app.help"
	actionCursorUp     = "tree.cursor.up"
	actionCursorDown   = "tree.cursor.down"
	actionJumpTop      = "tree.jump.top"
	actionJumpBottom   = "tree.jump.bottom"
	actionExpandToggle = "tree.expand.toggle"
	actionCollapse     = "tree.collapse"
	actionRefresh      = "tree.refresh"
	actionSelectRoot   = "tree.root.select"

	// actionOpen opens the selected file; on a directory it toggles it.
	actionOpen = "note.open"
	// actionEditNote enters edit mode, opening the selected file first if
	// needed.
	actionEditNote  = "note.edit"
	actionSave      = "note.save"
	actionCloseNote = "note.close"
	actionAutosave  = "note.autosave.toggle"

	actionNewNote   = "note.new"
	actionNewFolder = "folder.new"
	actionDelete    = "item.delete"

	actionCopyContent = "note.copy_content"
	actionCopyPath    = "note.copy_path"

	actionPreviewScrollUp   = "preview.scroll.up"
	actionPreviewScrollDown = "preview.scroll.down"
)

// defaultActionKeys lists the built-in keys per action. The first key is the
// one shown in the footer.
var defaultActionKeys = map[string][]string{
	actionQuit:              {"q", "ctrl+c"},
	actionHelp:              {"?"},
	actionCursorUp:          {"up", "k"},
	actionCursorDown:        {"down", "j"},
	actionJumpTop:           {"g", "home"},
	actionJumpBottom:        {"G", "end"},
	actionExpandToggle:      {"right", "l"},
	actionCollapse:          {"left", "h"},
	actionRefresh:           {"R", "ctrl+r"},
	actionSelectRoot:        {"o"},
	actionOpen:              {"enter"},
	actionEditNote:          {"e"},
	actionSave:              {"ctrl+s"},
	actionCloseNote:         {"x"},
	actionAutosave:          {"a"},
	actionNewNote:           {"n"},
	actionNewFolder:         {"f"},
	actionDelete:            {"d"},
	actionCopyContent:       {"y"},
	actionCopyPath:          {"Y"},
	actionPreviewScrollUp:   {"pgup"},
	actionPreviewScrollDown: {"pgdown"},
}

// resolveKeybindings merges user overrides (action -> key) into the
// defaults. An override replaces all default keys of its action and takes
// the key away from any other action. Unknown actions and empty keys are
// ignored. Overrides apply in action order, so when two claim the same key
// the later action wins.
func resolveKeybindings(overrides map[string]string) (map[string]string, map[string][]string) {
	actionKeys := make(map[string][]string, len(defaultActionKeys))
	for action, keys := range defaultActionKeys {
		actionKeys[action] = slices.Clone(keys)
	}

	names := make([]string, 0, len(overrides))
	for action := range overrides {
		names = append(names, action)
	}
	slices.Sort(names)

	for _, name := range names {
		action := strings.ToLower(strings.TrimSpace(name))
		key := strings.TrimSpace(overrides[name])
		if _, ok := actionKeys[action]; !ok || key == "" {
			if action != "" {
				appLog.Warn("ignore keybinding", "action", action, "key", key)
			}
			continue
		}
		for other, keys := range actionKeys {
			actionKeys[other] = slices.DeleteFunc(keys, func(k string) bool { return k == key })
		}
		actionKeys[action] = []string{key}
	}

	keyToAction := make(map[string]string)
	for action, keys := range actionKeys {
		for _, key := range keys {
			keyToAction[key] = action
		}
	}
	return keyToAction, actionKeys
}

// primaryKey returns the footer label for action.
func (m *Model) primaryKey(action string) string {
	if keys := m.actionKeys[action]; len(keys) > 0 {
		return keys[0]
	}
	return "unbound"
}
