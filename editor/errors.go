package editor

import "errors"

// ErrNoSaveTarget is reported when saving without Config.OnSave.
var ErrNoSaveTarget = errors.New("no save target")
