// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"sort"

	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	Translation binds one language code to the value
	a translation key resolves to under that language.

	Value may be:
	 - a string (or a number/bool, stringified at normalization),
	 - a pure function func(Args) string,
	 - an already constructed Producer.
	*/
	Translation struct {
		Language string
		Value    interface{}
	}

	/*
	Phrase is the ordered set of per-language values of one translation key.

	THE ORDER MATTERS.
	The first Translation declares the key's own fallback language:
	when the active language of a resolution is not present for the key,
	the first declared language is used instead (and that is not an error).
	*/
	Phrase []Translation

	/*
	RawFragment is a dictionary fragment as the caller declares it:
	a mapping from translation key to its ordered per-language values.

	A RawFragment is inert until it goes through Normalize().
	*/
	RawFragment map[string]Phrase

	/*
	Fragment is a normalized, immutable dictionary fragment.

	It's what one Scope contributes to the chain.
	All values are wrapped into Producer s uniformly,
	the key consistency invariant is already enforced:
	every key carries the same set of language codes.

	Fragment s are never mutated after Normalize() built them.
	Concurrent reads are always safe.

	You must not instantiate this class manually.
	A manually instantiated Fragment is considered not initialized
	and behaves as if it was nil.
	*/
	Fragment struct {
		phrases   map[string]*phrase
		languages []string // the canonical language set, in first-seen order
	}

	/*
	phrase is the normalized counterpart of Phrase:
	producers keyed by language code plus the original declaration order.
	order[0] is the key's fallback language.
	*/
	phrase struct {
		producers map[string]Producer
		order     []string
	}
)

/*
Normalize validates and canonicizes a dictionary fragment.

It's a standalone entry point: no scope tree is needed,
you may pre-normalize dictionaries ahead of time
and attach them to scopes later.

Accepted source types
(ALL OTHER ARGUMENT TYPES ARE PROHIBITED and lead to fast return error):

 - RawFragment (or a bare map[string]Phrase): normalized in place of nothing,
   a fresh Fragment is built;
 - *Fragment: already normalized, returned as is (thus Normalize is
   idempotent: normalizing a normalized fragment is a no-op);
 - []byte: dictionary content in YAML or TOML format,
   see FragmentFromBytes() for the sniffing rules.

Constraints enforced here (each violation is fatal for the whole fragment,
no partial dictionary is ever produced):

 - a translation key must be a non-empty, non-reserved name;
 - a key must declare at least one language, each exactly once;
 - every key must carry the same set of language codes as the first
   processed key of the fragment (the "InconsistentLanguageSet" invariant);
 - a value must be a string, a number, a bool, a func(Args) string
   or a valid Producer.
*/
func Normalize(source interface{}) (*Fragment, *ekaerr.Error) {
	const s = "Failed to normalize a dictionary fragment. "

	switch source := source.(type) {

	case *Fragment:
		if !source.isValid() {
			return nil, ekaerr.IllegalArgument.
				New(s + "Fragment is nil or manually instantiated.").
				Throw()
		}
		return source, nil

	case RawFragment:
		return normalizeRaw(source)

	case map[string]Phrase:
		return normalizeRaw(source)

	case []byte:
		return FragmentFromBytes(source)

	case nil:
		return nil, ekaerr.IllegalArgument.
			New(s + "Source is nil.").
			Throw()

	default:
		return nil, ekaerr.IllegalArgument.
			New(s + "Unexpected type of source.").
			AddFields("saluton_source_type", typeNameOf(source)).
			Throw()
	}
}

/*
Languages returns the fragment's canonical language set
in its first-seen declaration order.

Nil safe. A copy is returned, the Fragment itself stays immutable.
*/
func (f *Fragment) Languages() []string {
	if !f.isValid() {
		return nil
	}
	languages := make([]string, len(f.languages))
	copy(languages, f.languages)
	return languages
}

/*
Keys returns all translation keys of the fragment, sorted.

Nil safe. A copy is returned, the Fragment itself stays immutable.
*/
func (f *Fragment) Keys() []string {
	if !f.isValid() {
		return nil
	}
	keys := make([]string, 0, len(f.phrases))
	for key := range f.phrases {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

/*
Has reports whether the fragment carries the passed translation key.
Nil safe.
*/
func (f *Fragment) Has(key string) bool {
	if !f.isValid() {
		return false
	}
	_, found := f.phrases[key]
	return found
}

/*
Len returns the number of translation keys the fragment carries.
Nil safe.
*/
func (f *Fragment) Len() int {
	if !f.isValid() {
		return 0
	}
	return len(f.phrases)
}
