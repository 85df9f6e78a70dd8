// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

type (
	/*
	Producer is the value behind one (translation key, language) pair.

	It's a tagged variant of two shapes:

	 - A literal: a plain string that is returned as is.
	   Literals ignore the Args record entirely.

	 - A computed value: a pure, synchronous function of an Args record.
	   No suspension, no I/O. A computed producer that panics is contained
	   by the resolver and reported as an error of that one resolution,
	   attributable to its (key, language) pair.

	Use Literal(), Computed() or Template() to construct one.
	A manually instantiated (zero) Producer is considered not initialized
	and is rejected at normalization.
	*/
	Producer struct {
		kind    producerKind
		literal string
		compute func(Args) string
	}

	producerKind uint8
)

const (
	producerKindInvalid producerKind = iota
	producerKindLiteral
	producerKindComputed
)

/*
Literal returns a Producer that always resolves to phrase, as is.
*/
func Literal(phrase string) Producer {
	return Producer{
		kind:    producerKindLiteral,
		literal: phrase,
	}
}

/*
Computed returns a Producer backed by the passed pure function fn.
At the resolution, fn is called with the caller's Args record
and its return value is the resolved text.

Computed(nil) returns a not initialized Producer
that will be rejected at normalization.
*/
func Computed(fn func(Args) string) Producer {
	if fn == nil {
		return Producer{}
	}
	return Producer{
		kind:    producerKindComputed,
		compute: fn,
	}
}

/*
Template returns a computed Producer that interpolates phrase
with the caller's Args record at the resolution.

Verbs must be in the format "{{<name>}}", <name> is a key from Args.
Unused arguments are ignored,
verbs that don't have an associated argument remain as is:

        Template("Hello {{name}}!")

resolves to "Hello Alice!" under Args{"name": "Alice"},
and to "Hello {{name}}!" under nil Args.
*/
func Template(phrase string) Producer {
	return Producer{
		kind: producerKindComputed,
		compute: func(args Args) string {
			return newInterpolator(phrase, args).interpolate()
		},
	}
}

/*
IsValid reports whether the current Producer was constructed
by Literal(), Computed() or Template(), not instantiated manually.
*/
func (p Producer) IsValid() bool {
	return p.kind == producerKindLiteral ||
		p.kind == producerKindComputed && p.compute != nil
}
