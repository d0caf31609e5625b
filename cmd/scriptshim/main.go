package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scriptshim/internal/adapters/cmdtokenizer"
	"scriptshim/internal/adapters/envquery"
	"scriptshim/internal/adapters/proclaunch"
	"scriptshim/internal/adapters/rawcmdline"
	"scriptshim/internal/adapters/shimconfig"
	"scriptshim/internal/core/domain/profile"
	"scriptshim/internal/core/ports"
	"scriptshim/internal/core/services/launch"
	"scriptshim/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

// profileFileName sits next to the shim executable.
const profileFileName = "scriptshim.yaml"

func main() {
	tokenizer := cmdtokenizer.NewSplitter()
	inspector := envquery.NewInspector()
	envMutator := envquery.NewOSEnvMutator()
	source := rawcmdline.NewOSArgsSource(tokenizer)
	launcher := proclaunch.NewOSProcessLauncher()

	prof := loadProfile(inspector)

	launchSvc := launch.NewService(inspector, envMutator, tokenizer, source, launcher, prof)

	// When the binary is renamed to shadow a script (emcc, em++, ...),
	// it acts as a pure shim: no subcommands, every argument belongs to
	// the script.
	if invokedAsShim() {
		code, err := launchSvc.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(code)
	}

	rootCmd := cli.NewRootCommand(Version, launchSvc, tokenizer)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadProfile reads the YAML profile next to the executable, falling back
// to the default profile when the file or the executable path cannot be
// resolved.
func loadProfile(inspector ports.SystemInspector) profile.Profile {
	exePath, err := inspector.ExecutablePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not locate executable: %v. Using default profile.\n", err)
		return profile.Default()
	}

	provider, err := shimconfig.NewYAMLProvider(filepath.Join(filepath.Dir(exePath), profileFileName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize profile provider: %v. Using default profile.\n", err)
		return profile.Default()
	}

	prof, err := provider.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load profile: %v. Using default profile.\n", err)
		return profile.Default()
	}
	return prof
}

// invokedAsShim reports whether the binary was started under a name other
// than its own, i.e. renamed to stand in for a script.
func invokedAsShim() bool {
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return name != "scriptshim"
}
