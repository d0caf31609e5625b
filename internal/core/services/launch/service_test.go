package launch

import (
	"errors"
	"reflect"
	"testing"

	"scriptshim/internal/adapters/cmdtokenizer"
	"scriptshim/internal/core/domain/invocation"
	"scriptshim/internal/core/domain/probe"
	"scriptshim/internal/core/domain/profile"
	"scriptshim/internal/core/testutil"
)

type fixture struct {
	inspector *testutil.MockSystemInspector
	env       *testutil.MockEnvMutator
	source    *testutil.MockRawCommandLineSource
	launcher  *testutil.MockProcessLauncher

	launched []invocation.Spec
	unset    []string
}

// newFixture wires mocks describing a healthy environment: the shim lives
// at /opt/emsdk/emcc, no override variables are set, and the child exits
// cleanly.
func newFixture() *fixture {
	f := &fixture{}
	f.inspector = &testutil.MockSystemInspector{
		ExecutablePathFunc: func() (string, error) { return "/opt/emsdk/emcc", nil },
		LookupEnvFunc:      func(name string) (string, error) { return "", probe.ErrNotFound },
		AbsolutePathFunc:   func(path string) (string, error) { return path, nil },
	}
	f.env = &testutil.MockEnvMutator{
		UnsetenvFunc: func(name string) error {
			f.unset = append(f.unset, name)
			return nil
		},
	}
	f.source = &testutil.MockRawCommandLineSource{
		CommandLineFunc: func() (string, error) { return `emcc hello.c -o "out dir\hello.js"`, nil },
	}
	f.launcher = &testutil.MockProcessLauncher{
		LaunchFunc: func(spec invocation.Spec) (int, error) {
			f.launched = append(f.launched, spec)
			return 0, nil
		},
	}
	return f
}

func (f *fixture) service(prof profile.Profile) *service {
	return NewService(f.inspector, f.env, cmdtokenizer.NewSplitter(), f.source, f.launcher, prof).(*service)
}

func TestNewService(t *testing.T) {
	t.Run("should panic if a collaborator is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil launcher")
			}
		}()
		f := newFixture()
		_ = NewService(f.inspector, f.env, cmdtokenizer.NewSplitter(), f.source, nil, profile.Default())
	})
}

func TestService_Run(t *testing.T) {
	t.Run("assembles the default vector", func(t *testing.T) {
		f := newFixture()
		svc := f.service(profile.Default())

		code, err := svc.Run()
		if err != nil {
			t.Fatalf("Run() unexpected error = %v", err)
		}
		if code != 0 {
			t.Errorf("Run() = %d, want 0", code)
		}
		if len(f.launched) != 1 {
			t.Fatalf("launcher invoked %d times, want 1", len(f.launched))
		}
		want := []string{"python", "-E", "/opt/emsdk/emcc.py", "hello.c", "-o", `out dir\hello.js`}
		if got := f.launched[0].Argv; !reflect.DeepEqual(got, want) {
			t.Errorf("Run() launched %q, want %q", got, want)
		}
		if f.launched[0].CloseStdin {
			t.Error("Run() closed stdin without the workaround variable set")
		}
	})

	t.Run("interpreter override variable wins", func(t *testing.T) {
		f := newFixture()
		f.inspector.LookupEnvFunc = func(name string) (string, error) {
			if name == "SCRIPTSHIM_INTERPRETER" {
				return `C:\Python312\python.exe`, nil
			}
			return "", probe.ErrNotFound
		}
		svc := f.service(profile.Default())

		if _, err := svc.Run(); err != nil {
			t.Fatalf("Run() unexpected error = %v", err)
		}
		if got := f.launched[0].Argv[0]; got != `C:\Python312\python.exe` {
			t.Errorf("Run() interpreter = %q, want the override", got)
		}
	})

	t.Run("prefix tool request is honored and consumed", func(t *testing.T) {
		f := newFixture()
		f.inspector.LookupEnvFunc = func(name string) (string, error) {
			if name == "SCRIPTSHIM_PREFIX" {
				return "1", nil
			}
			return "", probe.ErrNotFound
		}
		svc := f.service(profile.Default())

		if _, err := svc.Run(); err != nil {
			t.Fatalf("Run() unexpected error = %v", err)
		}
		if got := f.launched[0].Argv[0]; got != "ccache" {
			t.Errorf("Run() Argv[0] = %q, want the prefix tool", got)
		}
		if got := f.launched[0].Argv[1]; got != "python" {
			t.Errorf("Run() Argv[1] = %q, want the interpreter", got)
		}
		found := false
		for _, name := range f.unset {
			if name == "SCRIPTSHIM_PREFIX" {
				found = true
			}
		}
		if !found {
			t.Errorf("Run() did not clear the prefix variable; cleared %q", f.unset)
		}
	})

	t.Run("scrub variables are cleared before launch", func(t *testing.T) {
		f := newFixture()
		prof := profile.Default()
		prof.ScrubVars = []string{"_PYTHON_SYSCONFIGDATA_NAME"}
		svc := f.service(prof)

		if _, err := svc.Run(); err != nil {
			t.Fatalf("Run() unexpected error = %v", err)
		}
		if !reflect.DeepEqual(f.unset, []string{"_PYTHON_SYSCONFIGDATA_NAME"}) {
			t.Errorf("Run() cleared %q, want the scrub variable", f.unset)
		}
	})

	t.Run("stdin workaround variable closes stdin", func(t *testing.T) {
		f := newFixture()
		f.inspector.LookupEnvFunc = func(name string) (string, error) {
			if name == "SCRIPTSHIM_CLOSE_STDIN" {
				return "1", nil
			}
			return "", probe.ErrNotFound
		}
		svc := f.service(profile.Default())

		if _, err := svc.Run(); err != nil {
			t.Fatalf("Run() unexpected error = %v", err)
		}
		if !f.launched[0].CloseStdin {
			t.Error("Run() did not request stdin to be closed")
		}
	})

	t.Run("long path prefix is applied once", func(t *testing.T) {
		f := newFixture()
		prof := profile.Default()
		prof.LongPathPrefix = true
		svc := f.service(prof)

		if _, err := svc.Run(); err != nil {
			t.Fatalf("Run() unexpected error = %v", err)
		}
		if got, want := f.launched[0].Argv[2], `\\?\/opt/emsdk/emcc.py`; got != want {
			t.Errorf("Run() script path = %q, want %q", got, want)
		}
	})

	t.Run("child exit status propagates", func(t *testing.T) {
		f := newFixture()
		f.launcher.LaunchFunc = func(spec invocation.Spec) (int, error) { return 42, nil }
		svc := f.service(profile.Default())

		code, err := svc.Run()
		if err != nil {
			t.Fatalf("Run() unexpected error = %v", err)
		}
		if code != 42 {
			t.Errorf("Run() = %d, want 42", code)
		}
	})

	t.Run("shim path failure never reaches the launcher", func(t *testing.T) {
		f := newFixture()
		f.inspector.ExecutablePathFunc = func() (string, error) { return "", probe.ErrNotFound }
		svc := f.service(profile.Default())

		if _, err := svc.Run(); err == nil {
			t.Error("Run() expected error, got nil")
		}
		if len(f.launched) != 0 {
			t.Errorf("launcher invoked %d times after a failure, want 0", len(f.launched))
		}
	})

	t.Run("command line failure never reaches the launcher", func(t *testing.T) {
		f := newFixture()
		f.source.CommandLineFunc = func() (string, error) { return "", errors.New("environment gone") }
		svc := f.service(profile.Default())

		if _, err := svc.Run(); err == nil {
			t.Error("Run() expected error, got nil")
		}
		if len(f.launched) != 0 {
			t.Errorf("launcher invoked %d times after a failure, want 0", len(f.launched))
		}
	})
}

func TestRewriteExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{
			name: "exe extension replaced",
			path: `C:\path\to\emcc.exe`,
			ext:  ".py",
			want: `C:\path\to\emcc.py`,
		},
		{
			name: "no extension gains one",
			path: "/opt/emsdk/emcc",
			ext:  ".py",
			want: "/opt/emsdk/emcc.py",
		},
		{
			name: "only the last extension is replaced",
			path: "/opt/tool.v2.exe",
			ext:  ".py",
			want: "/opt/tool.v2.py",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteExtension(tt.path, tt.ext); got != tt.want {
				t.Errorf("rewriteExtension(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}
