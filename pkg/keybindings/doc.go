/*
Package keybindings stores application keybindings: a flat mapping from
action names ("next-option") to human readable key combinations ("DOWN"),
persisted in a single YAML, TOML or JSON file.

# Lifecycle

	store, err := keybindings.New(path)              // read file, or start from defaults
	combo, ok := store.Get("hide-window")             // action -> combination
	action, found := store.GetKeyFromValue("ESCAPE")  // combination -> action
	store.Set(map[string]string{"quit": "Ctrl+Q"})    // bulk replace, memory only
	err = store.Save()                                // overwrite the file

New does not create a missing file. The store then starts from
DefaultBindings, or from nothing with OnMissing(Empty()). A file that
exists but does not decode as a flat string mapping makes New fail with an
error for which IsDeserializationFailure is true.

# Locking

Each read in New and Reload, and each write in Save, runs under an
exclusive advisory lock on the file that is released before the call
returns. No lock is held between calls: two stores on the same path
overwrite each other's changes, last writer wins.

# Errors

Nothing panics on a bad file. Failures are returned as *FileError (IO),
*CodecError (serialization or deserialization) or *ConfigError (options),
with IsIOFailure, IsSerializationFailure, IsDeserializationFailure and
IsInvalidConfig as shortcuts.
*/
package keybindings
