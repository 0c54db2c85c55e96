package generator

import "github.com/google/uuid"

type options struct {
	maxSteps int
	id       uuid.UUID
}

// Option configures a single Generate call.
type Option func(*options)

// WithMaxSteps caps the number of bulldozer moves. Zero or less means no cap.
// When the cap is hit before every room is open, Generate returns ErrNotConverged.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		o.maxSteps = n
	}
}

// WithID sets the identifier of the generated maze instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	return o
}
