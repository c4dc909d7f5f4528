package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/nonzeroday/nzd/internal/config"
	"github.com/nonzeroday/nzd/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
// Services is nil when initialization failed; InitErr carries the cause.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services *service.Services
	InitErr  error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	services, err := service.NewServices()

	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		InitErr:  err,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// requireServices reports whether the service aggregate is available. When
// initialization failed (a malformed config file, an unresolvable config
// dir), it prints the cause and exits instead of letting a command panic.
func requireServices() bool {
	if deps.Services != nil {
		return true
	}

	if deps.InitErr != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to initialize services: %v\n", deps.InitErr)
	} else {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize services")
	}
	if path, err := config.GetConfigPath(); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check the config file at %s\n", path)
	}
	deps.Exit(1)
	return false
}
