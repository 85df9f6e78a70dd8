// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

/*
isValid ensures that the current Fragment object is not nil and initialized
correctly (not manually instantiated by the caller).
Returns true if this is correct object.
*/
func (f *Fragment) isValid() bool {
	return f != nil && f.phrases != nil
}

/*
normalizeRaw builds a Fragment out of the passed RawFragment,
enforcing all the constraints Normalize() documents.

The first processed key establishes the fragment's canonical language set
(and its first-seen order). Keys are processed in sorted order,
so which key establishes the baseline is deterministic.
Any later key whose language set differs from the canonical one
aborts the whole normalization: no partial fragment is ever returned.
*/
func normalizeRaw(raw RawFragment) (*Fragment, *ekaerr.Error) {
	const s = "Failed to normalize a dictionary fragment. "

	if len(raw) == 0 {
		return nil, ekaerr.IllegalArgument.
			New(s + "There are no translation keys.").
			Throw()
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fragment := &Fragment{
		phrases: make(map[string]*phrase, len(raw)),
	}

	var canonical map[string]struct{}

	for _, key := range keys {
		switch {

		case key == "":
			return nil, ekaerr.IllegalFormat.
				New(s + "Key is empty.").
				Throw()

		case IsReservedKey(key):
			return nil, ekaerr.IllegalArgument.
				New(s + "Key is a reserved name: " + ERR_RESERVED_KEY + ".").
				AddFields(
					"saluton_error", ERR_RESERVED_KEY,
					"saluton_key", key).
				Throw()

		case len(raw[key]) == 0:
			return nil, ekaerr.IllegalFormat.
				New(s + "Key declares no languages.").
				AddFields("saluton_key", key).
				Throw()
		}

		normalized := &phrase{
			producers: make(map[string]Producer, len(raw[key])),
			order:     make([]string, 0, len(raw[key])),
		}

		for _, translation := range raw[key] {

			if translation.Language == "" {
				return nil, ekaerr.IllegalFormat.
					New(s + "Language code is empty.").
					AddFields("saluton_key", key).
					Throw()
			}

			if _, isDuplicate := normalized.producers[translation.Language]; isDuplicate {
				return nil, ekaerr.IllegalFormat.
					New(s + "Language is declared twice for one key.").
					AddFields(
						"saluton_key", key,
						"saluton_language", translation.Language).
					Throw()
			}

			producer, err := producerOf(translation.Value)
			if err.IsNotNil() {
				return nil, err.
					AddMessage(s).
					AddFields(
						"saluton_key", key,
						"saluton_language", translation.Language).
					Throw()
			}

			normalized.producers[translation.Language] = producer
			normalized.order = append(normalized.order, translation.Language)
		}

		// The first processed key establishes the consistency baseline.
		// Every next one must be set-equal to it. Order is a per-key thing
		// and is irrelevant for the consistency check.

		if canonical == nil {
			canonical = make(map[string]struct{}, len(normalized.order))
			for _, language := range normalized.order {
				canonical[language] = struct{}{}
			}
			fragment.languages = normalized.order

		} else if !sameLanguageSet(canonical, normalized.order) {
			return nil, ekaerr.IllegalFormat.
				New(s + "Key's language set differs from the fragment's canonical one: " +
					ERR_INCONSISTENT_LANGUAGE_SET + ".").
				AddFields(
					"saluton_error", ERR_INCONSISTENT_LANGUAGE_SET,
					"saluton_key", key,
					"saluton_languages_canonical", strings.Join(fragment.languages, ", "),
					"saluton_languages_key", strings.Join(normalized.order, ", ")).
				Throw()
		}

		fragment.phrases[key] = normalized
	}

	return fragment, nil
}

/*
sameLanguageSet reports whether the passed language codes
are exactly the canonical set (set-equality, order is ignored).
Duplicates are impossible here: normalizeRaw rejects them earlier.
*/
func sameLanguageSet(canonical map[string]struct{}, languages []string) bool {
	if len(languages) != len(canonical) {
		return false
	}
	for _, language := range languages {
		if _, found := canonical[language]; !found {
			return false
		}
	}
	return true
}

/*
producerOf wraps a raw per-language value into a Producer, uniformly:

 - Producer             -> as is (validity checked);
 - func(Args) string    -> Computed;
 - string               -> Literal;
 - bool, ints, uints, floats -> stringified Literal;
 - nil                  -> Literal("<undefined>").

Any other type is an error.
*/
func producerOf(value interface{}) (Producer, *ekaerr.Error) {
	const s = "Failed to wrap a value into a producer. "

	switch value := value.(type) {

	case Producer:
		if !value.IsValid() {
			return Producer{}, ekaerr.IllegalArgument.
				New(s + "Producer is manually instantiated.").
				Throw()
		}
		return value, nil

	case func(Args) string:
		if value == nil {
			return Producer{}, ekaerr.IllegalArgument.
				New(s + "Nil function can not be a value producer.").
				Throw()
		}
		return Computed(value), nil
	}

	switch rtype := reflect2.RTypeOf(value); {

	case rtype == 0:
		return Literal("<undefined>"), nil

	case rtype == ekaunsafe.RTypeString():
		return Literal(value.(string)), nil

	case rtype == ekaunsafe.RTypeBool():
		b := *(*bool)(ekaunsafe.TakeRealAddr(value))
		text := "false"
		if b {
			text = "true"
		}
		return Literal(text), nil

	case ekaunsafe.RTypeIsIntAny(rtype):
		i64 := *(*int64)(ekaunsafe.TakeRealAddr(value))
		return Literal(strconv.FormatInt(i64, 10)), nil

	case ekaunsafe.RTypeIsUintAny(rtype):
		u64 := *(*uint64)(ekaunsafe.TakeRealAddr(value))
		return Literal(strconv.FormatUint(u64, 10)), nil

	case ekaunsafe.RTypeIsFloatAny(rtype):
		f64 := *(*float64)(ekaunsafe.TakeRealAddr(value))
		bitSize := 32
		if rtype == ekaunsafe.RTypeFloat64() {
			bitSize = 64
		}
		return Literal(strconv.FormatFloat(f64, 'f', 2, bitSize)), nil

	default:
		return Producer{}, ekaerr.IllegalFormat.
			New(s + "Unexpected type of value.").
			AddFields("saluton_value_type", typeNameOf(value)).
			Throw()
	}
}

/*
producerFor returns the producer of the passed language,
or, if the key doesn't carry that language,
the producer of the key's own fallback language (the first declared one).
The chosen language is returned alongside.

A normalized phrase always carries at least one language,
so producerFor never fails.
*/
func (ph *phrase) producerFor(language string) (Producer, string) {
	if producer, found := ph.producers[language]; found {
		return producer, language
	}
	fallback := ph.order[0]
	return ph.producers[fallback], fallback
}

/*
typeNameOf returns a human readable type name of the passed value,
for error reporting.
*/
func typeNameOf(value interface{}) string {
	if value == nil {
		return "<nil>"
	}
	return reflect2.TypeOf(value).String()
}
