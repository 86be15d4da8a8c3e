package cow

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// DebugEnv is the environment variable holding the debug switches.
const DebugEnv = "COW_DEBUG"

// Config holds the debug switches of the module. None of them changes the
// behaviour of a data structure.
//
// Switches are read once from environment variable COW_DEBUG, a comma
// separated list of name=value pairs. A name without a value means name=true:
//
//	COW_DEBUG=trace,events=1
type Config struct {
	// Trace emits a debug trace for every copy-on-write clone and every
	// relocation of a position handle.
	Trace bool
	// Events publishes a CloneEvent for every clone, see Subscribe.
	Events bool
	// Strict runs the structural checker of a data structure after every
	// mutating operation and panics on failure.
	Strict bool
}

// flags is replaced as a whole, never modified.
var flags atomic.Pointer[Config]

var initOnce = sync.OnceValue(func() error {
	c, err := ParseConfig(os.Getenv(DebugEnv))
	if err != nil {
		err = fmt.Errorf("cannot parse %s: %w", DebugEnv, err)
		tracer().Errorf("%v", err)
	}
	flags.CompareAndSwap(nil, &c)
	return err
})

// Init reads the debug switches from the environment. It is called implicitly
// by Debug; calling it explicitly allows clients to see parse errors.
func Init() error {
	return initOnce()
}

// Debug returns the effective debug switches.
func Debug() Config {
	if c := flags.Load(); c != nil {
		return *c
	}
	_ = initOnce()
	return *flags.Load()
}

// Configure replaces the debug switches and returns the previous ones.
func Configure(c Config) Config {
	_ = initOnce()
	return *flags.Swap(&c)
}

// ParseConfig parses a debug switch list in the format of COW_DEBUG.
// Names are case insensitive; values are parsed with strconv.ParseBool.
func ParseConfig(s string) (Config, error) {
	var c Config
	for _, elem := range strings.Split(s, ",") {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		name, value, hasValue := strings.Cut(elem, "=")
		on := true
		if hasValue {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Config{}, fmt.Errorf("%w: invalid value %q for %s", ErrInvalidConfig, value, name)
			}
			on = b
		}
		switch strings.ToLower(name) {
		case "trace":
			c.Trace = on
		case "events":
			c.Events = on
		case "strict":
			c.Strict = on
		default:
			return Config{}, fmt.Errorf("%w: unknown switch %q", ErrInvalidConfig, name)
		}
	}
	return c, nil
}
