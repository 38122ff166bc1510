package segment

// Mutator lets a caller rewrite header fields after construction and before
// packing, without the codec knowing who the caller is. The header is
// borrowed for the duration of the call. Edits are trusted: the codec does
// not re-validate what a mutator wrote.
type Mutator interface {
	MutateTCP(*TCP) error
}

// MutatorFunc adapts a plain function to the Mutator interface.
type MutatorFunc func(*TCP) error

func (f MutatorFunc) MutateTCP(t *TCP) error { return f(t) }

// Mutate invokes m on the header. A nil Mutator is the registered no-op
// state and succeeds without touching the header; otherwise the mutator's
// error is returned verbatim.
func (t *TCP) Mutate(m Mutator) error {
	if m == nil {
		return nil
	}
	return m.MutateTCP(t)
}
