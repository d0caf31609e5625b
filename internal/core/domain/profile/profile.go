/*
Package profile defines the launcher's configurable behavior: which
runtime interprets the companion script, how the script path is derived
from the shim path, and which environment variables steer the launch.
*/
package profile

/*
Profile is the launcher configuration. Every field has a working default,
so a missing configuration file launches with stock behavior.
*/
type Profile struct {
	// Interpreter is the runtime image to execute when no override
	// environment variable is set.
	Interpreter string `yaml:"interpreter"`
	// InterpreterEnvVar names the environment variable that, when set,
	// overrides Interpreter.
	InterpreterEnvVar string `yaml:"interpreter_env_var"`
	// InterpreterFlag is passed to the interpreter before the script
	// path, e.g. "-E" to isolate the interpreter from env tweaks.
	InterpreterFlag string `yaml:"interpreter_flag"`
	// ScriptExtension replaces the shim executable's extension to form
	// the companion script path.
	ScriptExtension string `yaml:"script_extension"`
	// PrefixToolEnvVar names the variable that, when non-empty, asks
	// for the whole invocation to be prefixed with PrefixTool. The
	// variable is cleared before launch so the child does not recurse.
	PrefixToolEnvVar string `yaml:"prefix_tool_env_var"`
	// PrefixTool is the wrapper executable prepended to the vector
	// when PrefixToolEnvVar is set, e.g. a compiler cache.
	PrefixTool string `yaml:"prefix_tool"`
	// ScrubVars are cleared from the environment before launch.
	ScrubVars []string `yaml:"scrub_vars"`
	// LongPathPrefix prepends the `\\?\` marker to the canonicalized
	// script path to lift the legacy path length limit.
	LongPathPrefix bool `yaml:"long_path_prefix"`
	// CloseStdinEnvVar names the variable that, when set, stops the
	// child from inheriting standard input.
	CloseStdinEnvVar string `yaml:"close_stdin_env_var"`
}

// Default returns the stock launcher profile.
func Default() Profile {
	return Profile{
		Interpreter:       "python",
		InterpreterEnvVar: "SCRIPTSHIM_INTERPRETER",
		InterpreterFlag:   "-E",
		ScriptExtension:   ".py",
		PrefixToolEnvVar:  "SCRIPTSHIM_PREFIX",
		PrefixTool:        "ccache",
		CloseStdinEnvVar:  "SCRIPTSHIM_CLOSE_STDIN",
	}
}
