package launch

import (
	"errors"
	"fmt"

	"scriptshim/internal/core/domain/invocation"
	"scriptshim/internal/core/domain/probe"
	"scriptshim/internal/core/domain/profile"
	"scriptshim/internal/core/ports"
)

type service struct {
	inspector ports.SystemInspector
	env       ports.EnvMutator
	tokenizer ports.CommandLineTokenizer
	source    ports.RawCommandLineSource
	launcher  ports.ProcessLauncher
	profile   profile.Profile
}

// NewService creates a new launch service.
// It panics if any collaborator is nil.
func NewService(
	inspector ports.SystemInspector,
	env ports.EnvMutator,
	tokenizer ports.CommandLineTokenizer,
	source ports.RawCommandLineSource,
	launcher ports.ProcessLauncher,
	prof profile.Profile,
) ports.LaunchService {
	if inspector == nil || env == nil || tokenizer == nil || source == nil || launcher == nil {
		panic("launch service collaborators cannot be nil")
	}
	return &service{
		inspector: inspector,
		env:       env,
		tokenizer: tokenizer,
		source:    source,
		launcher:  launcher,
		profile:   prof,
	}
}

/*
Run performs the launch. Any failure while assembling the vector returns
before the launcher is touched: the runtime is never invoked with a
partial or inconsistent argument vector.
*/
func (s *service) Run() (int, error) {
	shimPath, err := s.inspector.ExecutablePath()
	if err != nil {
		return -1, fmt.Errorf("could not locate shim executable: %w", err)
	}

	scriptPath, err := s.scriptPath(shimPath)
	if err != nil {
		return -1, err
	}

	interpreter, err := s.interpreter()
	if err != nil {
		return -1, err
	}

	tail, err := s.originalArguments()
	if err != nil {
		return -1, err
	}

	prefixed, err := s.consumePrefixRequest()
	if err != nil {
		return -1, err
	}

	argv := make([]string, 0, len(tail)+4)
	if prefixed {
		argv = append(argv, s.profile.PrefixTool)
	}
	argv = append(argv, interpreter)
	if s.profile.InterpreterFlag != "" {
		argv = append(argv, s.profile.InterpreterFlag)
	}
	argv = append(argv, scriptPath)
	argv = append(argv, tail...)

	for _, name := range s.profile.ScrubVars {
		if err := s.env.Unsetenv(name); err != nil {
			return -1, fmt.Errorf("could not scrub %s: %w", name, err)
		}
	}

	return s.launcher.Launch(invocation.Spec{
		Argv:       argv,
		CloseStdin: s.envIsSet(s.profile.CloseStdinEnvVar),
	})
}

// scriptPath derives the companion script path from the shim path and
// canonicalizes it.
func (s *service) scriptPath(shimPath string) (string, error) {
	scriptPath := rewriteExtension(shimPath, s.profile.ScriptExtension)
	scriptPath, err := s.inspector.AbsolutePath(scriptPath)
	if err != nil {
		return "", fmt.Errorf("could not canonicalize script path: %w", err)
	}
	if s.profile.LongPathPrefix {
		scriptPath = prefixLongPath(scriptPath)
	}
	return scriptPath, nil
}

// interpreter resolves the runtime image, preferring the override
// environment variable over the profile default.
func (s *service) interpreter() (string, error) {
	name := s.profile.InterpreterEnvVar
	if name == "" {
		return s.profile.Interpreter, nil
	}
	value, err := s.inspector.LookupEnv(name)
	if err != nil {
		if errors.Is(err, probe.ErrNotFound) {
			return s.profile.Interpreter, nil
		}
		return "", fmt.Errorf("could not read %s: %w", name, err)
	}
	if value == "" {
		return s.profile.Interpreter, nil
	}
	return value, nil
}

// originalArguments re-tokenizes the raw command line and drops the
// program name, keeping only the caller's own arguments.
func (s *service) originalArguments() ([]string, error) {
	raw, err := s.source.CommandLine()
	if err != nil {
		return nil, fmt.Errorf("could not read command line: %w", err)
	}
	vec, err := s.tokenizer.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("could not tokenize command line: %w", err)
	}
	return vec.Strings()[1:], nil
}

/*
consumePrefixRequest checks whether the prefix-tool variable asks for the
invocation to be wrapped, and clears it so the wrapped child does not
wrap itself again.
*/
func (s *service) consumePrefixRequest() (bool, error) {
	name := s.profile.PrefixToolEnvVar
	if name == "" || s.profile.PrefixTool == "" {
		return false, nil
	}
	if !s.envIsSet(name) {
		return false, nil
	}
	if err := s.env.Unsetenv(name); err != nil {
		return false, fmt.Errorf("could not clear %s: %w", name, err)
	}
	return true, nil
}

// envIsSet reports whether the named variable is set to a non-empty
// value. An empty name is never set.
func (s *service) envIsSet(name string) bool {
	if name == "" {
		return false
	}
	value, err := s.inspector.LookupEnv(name)
	return err == nil && value != ""
}
