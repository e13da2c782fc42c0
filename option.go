package ubidi

// Option configures a Bidi handle.
type Option func(b *Bidi)

const (
	optionTesting uint8 = 1 << 1 // test mode: recognize uppercase as class R
)

func (b *Bidi) hasMode(m uint8) bool {
	return b.mode&m > 0
}

// WithClassifier sets the bidi character classifier for a handle. Handles
// use the classifier from golang.org/x/text/unicode/bidi unless a different
// one is configured. A nil argument is ignored.
func WithClassifier(cls Classifier) Option {
	return func(b *Bidi) {
		if cls != nil {
			b.classifier = cls
		}
	}
}

// Testing will set up the handle to recognize UPPERCASE letters as having R2L
// class. This is a common convention for making bidi tests readable and is
// not intended for production usage.
func Testing(on bool) Option {
	return func(b *Bidi) {
		if on {
			b.mode |= optionTesting
		} else {
			b.mode &^= optionTesting
		}
	}
}
