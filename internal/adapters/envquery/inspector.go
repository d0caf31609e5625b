package envquery

import (
	"os"

	"scriptshim/internal/adapters/bufferprobe"
	"scriptshim/internal/core/domain/probe"
	"scriptshim/internal/core/ports"
)

// Inspector implements the SystemInspector port by routing each lookup
// through the buffer prober matching its query convention.
type Inspector struct {
	direct   ports.StringProber
	growth   ports.StringProber
	lookup   func(string) (string, bool)
	execPath func() (string, error)
}

// NewInspector creates an Inspector backed by the process environment.
func NewInspector() ports.SystemInspector {
	return &Inspector{
		direct:   bufferprobe.NewDirectSizeProber(),
		growth:   bufferprobe.NewGrowthProber(0),
		lookup:   os.LookupEnv,
		execPath: os.Executable,
	}
}

// ExecutablePath returns the path of the running shim executable.
func (in *Inspector) ExecutablePath() (string, error) {
	buf, err := in.growth.Probe(executablePathQuery{path: in.execPath})
	if err != nil {
		return "", err
	}
	return probe.String(buf), nil
}

// LookupEnv returns the value of a named environment variable, or
// probe.ErrNotFound if it is unset.
func (in *Inspector) LookupEnv(name string) (string, error) {
	buf, err := in.direct.Probe(envVarQuery{lookup: in.lookup, name: name})
	if err != nil {
		return "", err
	}
	return probe.String(buf), nil
}

// AbsolutePath canonicalizes a possibly relative path.
func (in *Inspector) AbsolutePath(path string) (string, error) {
	buf, err := in.direct.Probe(absPathQuery{path: path})
	if err != nil {
		return "", err
	}
	return probe.String(buf), nil
}

// OSEnvMutator implements the EnvMutator port against the real process
// environment.
type OSEnvMutator struct{}

// NewOSEnvMutator creates a new OSEnvMutator.
func NewOSEnvMutator() ports.EnvMutator {
	return &OSEnvMutator{}
}

// Setenv sets an environment variable.
func (m *OSEnvMutator) Setenv(name, value string) error {
	return os.Setenv(name, value)
}

// Unsetenv removes an environment variable.
func (m *OSEnvMutator) Unsetenv(name string) error {
	return os.Unsetenv(name)
}
