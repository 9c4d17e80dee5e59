package writeir

import "errors"

// ErrNotApplicable is returned when a protocol method is invoked on a
// variant that does not implement it (e.g. GetFilter on a CreateRecord).
// This is a programmer error in the planner, not a recoverable condition;
// callers should treat it as fatal rather than retry.
var ErrNotApplicable = errors.New("writeir: operation not applicable to this node")
