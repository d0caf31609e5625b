package ports

// RawCommandLineSource returns the full invocation string exactly as the
// execution environment hands it over: program name included, original
// quoting intact, not yet split into arguments.
type RawCommandLineSource interface {
	CommandLine() (string, error)
}
