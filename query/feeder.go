package query

// argFeeder hands out arguments front to back.
type argFeeder struct {
	args []Value
	pos  int
}

func newArgFeeder(args []Value) *argFeeder {
	return &argFeeder{args: args}
}

func (f *argFeeder) next() (Value, error) {
	if f.pos >= len(f.args) {
		return nil, ErrArgumentCountMismatch
	}
	v := f.args[f.pos]
	f.pos++
	return v, nil
}

// rest returns the arguments not consumed yet. The slice aliases the feeder.
func (f *argFeeder) rest() []Value {
	return f.args[f.pos:]
}
