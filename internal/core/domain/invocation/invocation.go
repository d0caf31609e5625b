package invocation

// Spec describes one fully assembled process invocation, ready to hand to
// the process-launch collaborator.
type Spec struct {
	// Argv is the complete argument vector. Argv[0] is the runtime
	// image to execute.
	Argv []string
	// CloseStdin prevents the child from inheriting standard input.
	CloseStdin bool
}
