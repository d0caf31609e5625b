package ports

/*
SystemInspector answers the three variable-length queries the launcher
needs from its environment. Implementations retrieve each value through
the buffer-probe protocol so sizing is always exact.
*/
type SystemInspector interface {
	// ExecutablePath returns the path of the running shim executable.
	ExecutablePath() (string, error)
	// LookupEnv returns the value of a named environment variable, or
	// probe.ErrNotFound if it is unset.
	LookupEnv(name string) (string, error)
	// AbsolutePath canonicalizes a possibly relative path to an
	// absolute, length-unrestricted form.
	AbsolutePath(path string) (string, error)
}

// EnvMutator mutates process-wide environment state. It is injected so
// the tokenizer and probe stay pure and independently testable.
type EnvMutator interface {
	Setenv(name, value string) error
	Unsetenv(name string) error
}
