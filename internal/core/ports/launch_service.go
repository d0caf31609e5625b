package ports

/*
LaunchService drives one complete shim launch: locate the companion
script, resolve the interpreter, rebuild the argument vector, and run the
runtime. It returns the child process's exit status.
*/
type LaunchService interface {
	Run() (int, error)
}
