package operations

// Console is the interaction boundary the operations are written against.
// The interactive shell backs it with stdin/stdout; commands and tests use
// scripted implementations.
type Console interface {
	// Prompt writes label and blocks for one line of input. The returned
	// text carries no trailing newline and is otherwise raw.
	Prompt(label string) (string, error)
	// Println writes one line of output.
	Println(text string)
}
