// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	Renderer is a caller-supplied delivery function.
	It receives the resolved text, and whatever it returns
	becomes the rendered output instead of the text itself.
	*/
	Renderer func(translated string) interface{}

	/*
	Request is what one leaf of the host's composition tree declares.
	It selects exactly one of three mutually exclusive delivery modes:

	 1. Inline (just Key set): the resolved string itself
	    becomes the rendered output.

	 2. Callback delivery (Key + Callback): the resolved string is passed
	    to Callback, and its return value becomes the rendered output.
	    The raw string is never itself embedded as output.

	 3. Variant selection (Variants only): no dictionary lookup at all.
	    Variants maps a language code to a precomposed, opaque fragment
	    of the host; the fragment of the active language is rendered.
	    No exact match - the chain's ambient default language is tried.
	    Neither matches - nothing is rendered (nil output, no error).

	Declaring a plain Key together with Variants is a caller error
	(ERR_AMBIGUOUS_MODE), caught by Validate() before any resolution runs.

	Prefer the ByKey(), ByKeyWithCallback(), ByVariants() constructors:
	a Request built by them is valid by construction.
	*/
	Request struct {
		Key      string
		Args     Args
		Callback Renderer
		Variants map[string]interface{}
	}
)

/*
ByKey declares an inline leaf request:
resolve key under args, render the resolved string itself.
*/
func ByKey(key string, args Args) Request {
	return Request{
		Key:  key,
		Args: args,
	}
}

/*
ByKeyWithCallback declares a callback-delivery leaf request:
resolve key under args, hand the resolved string to callback,
render whatever it returns.
*/
func ByKeyWithCallback(key string, args Args, callback Renderer) Request {
	return Request{
		Key:      key,
		Args:     args,
		Callback: callback,
	}
}

/*
ByVariants declares a variant-selection leaf request:
render the passed precomposed fragment whose language code
matches the chain's active language
(with the fallbacks the Request type documents).
*/
func ByVariants(variants map[string]interface{}) Request {
	return Request{
		Variants: variants,
	}
}

/*
Validate checks that the current Request declares exactly one delivery mode.

It's a static check over the declared properties only:
no scope, no dictionary, no resolution is involved,
so a host may validate its leaves ahead of rendering.

Render() calls it anyway before doing anything else.
*/
func (r Request) Validate() *ekaerr.Error {
	return r.validate().Throw()
}

/*
Render resolves the current Request at the passed scope and returns
the rendered output: a string for the inline mode,
the Callback's return value for the callback delivery mode,
the selected fragment (or nil) for the variant selection mode.

An invalid request or a failed resolution aborts rendering
of this one leaf only; sibling leaves and ancestor scopes are unaffected.

Nil safe in the Scope.Resolve() sense.
*/
func (s *Scope) Render(r Request) (interface{}, *ekaerr.Error) {
	const e = "Failed to render a leaf request. "

	if !s.isValid() {
		return nil, ekaerr.IllegalState.
			New(e + "Scope is nil or manually instantiated.").
			Throw()
	}

	if err := r.validate(); err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	if len(r.Variants) > 0 {
		return s.selectVariant(r.Variants), nil
	}

	text, err := s.Resolve(r.Key, r.Args)
	if err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	if r.Callback != nil {
		return r.Callback(text), nil
	}

	return text, nil
}
