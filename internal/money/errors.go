package money

import "github.com/nametax/engine/internal/engineerr"

// ErrOverflow is returned by checked Amount operations that would
// wrap or underflow. It is an engineerr.Overflow error, so engine
// operations pass it through to callers as that Kind unchanged.
var ErrOverflow error = engineerr.New(engineerr.Overflow)
