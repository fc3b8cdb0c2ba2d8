package calculator

// Option is an option for evaluating expressions.
type Option interface {
	evalOption()
}

type residualopt bool

func (residualopt) evalOption() {}

// Lenient makes evaluation of a postfix sequence that leaves more than one
// value on the stack return the first value pushed instead of an error. This
// matches the behavior of older keypad calculators, where "2 3" evaluates to
// 2. Sequences that leave no value are always an error.
func Lenient() Option {
	return residualopt(true)
}

// Strict undoes Lenient. It is the default.
func Strict() Option {
	return residualopt(false)
}

// evalctx holds the settings for one evaluation.
type evalctx struct {
	lenient bool
}

func newEvalctx(opts []Option) evalctx {
	var c evalctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case residualopt:
			c.lenient = bool(opt)
		default:
			panic("calculator: unknown option type")
		}
	}
	return c
}
