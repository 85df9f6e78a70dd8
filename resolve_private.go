// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekastr"
	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

/*
resolve is the shared core of Scope.Resolve() and Scope.Tr().

It reports a failure both ways at once:
as a *ekaerr.Error for the loud surface (Resolve)
and as a _SpecialTranslationClass for the soft one (Tr).
On success the class is empty and the error is nil.
*/
func (s *Scope) resolve(key string, args Args) (string, _SpecialTranslationClass, *ekaerr.Error) {
	const e = "Failed to resolve a translation key. "

	switch {

	case !s.isValid():
		return "", _SPTR_SCOPE_IS_NIL, ekaerr.IllegalState.
			New(e + "Scope is nil or manually instantiated.").
			Throw()

	case key == "":
		return "", _SPTR_TRANSLATION_KEY_IS_EMPTY, ekaerr.IllegalArgument.
			New(e + "Translation key is empty.").
			Throw()

	case IsReservedKey(key):
		return "", _SPTR_TRANSLATION_KEY_IS_RESERVED, ekaerr.IllegalArgument.
			New(e + "Translation key is a reserved name: " + ERR_RESERVED_KEY + ".").
			AddFields(
				"saluton_error", ERR_RESERVED_KEY,
				"saluton_key", key).
			Throw()
	}

	ph, found := s.merged[key]
	if !found {
		return "", _SPTR_TRANSLATION_NOT_FOUND, ekaerr.NotFound.
			New(e + "Translation key is absent in the merged dictionary: " +
				ERR_UNKNOWN_KEY + ".").
			AddFields(
				"saluton_error", ERR_UNKNOWN_KEY,
				"saluton_key", key).
			Throw()
	}

	if err := validateArgs(args); err.IsNotNil() {
		return "", _SPTR_BAD_ARGUMENTS, err.
			AddMessage(e).
			AddFields("saluton_key", key).
			Throw()
	}

	producer, language := ph.producerFor(s.ActiveLanguage())

	text, panicked := producer.call(args)
	if panicked != nil {
		return "", _SPTR_PRODUCER_FAILED, ekaerr.InternalError.
			New(e + "Value producer panicked: " + ERR_VALUE_PRODUCER + ".").
			AddFields(
				"saluton_error", ERR_VALUE_PRODUCER,
				"saluton_key", key,
				"saluton_language", language,
				"saluton_panic", ekastr.ToString(panicked)).
			Throw()
	}

	return text, "", nil
}

/*
validateArgs ensures that every value of the passed Args record
is either a string or a number (any int, uint or float kind).

Everything else (booleans, nils, nested structures, ...) is rejected
with ERR_INVALID_PARAM_TYPE: surfacing the caller misuse loudly
beats silently coercing a value nobody meant to pass.
*/
func validateArgs(args Args) *ekaerr.Error {
	const e = "Failed to validate resolution arguments. "

	for name, value := range args {
		switch rtype := reflect2.RTypeOf(value); {

		case rtype == ekaunsafe.RTypeString():
		case ekaunsafe.RTypeIsIntAny(rtype):
		case ekaunsafe.RTypeIsUintAny(rtype):
		case ekaunsafe.RTypeIsFloatAny(rtype):
			// OK, allowed kinds.

		default:
			return ekaerr.IllegalArgument.
				New(e + "Argument is neither a string nor a number: " +
					ERR_INVALID_PARAM_TYPE + ".").
				AddFields(
					"saluton_error", ERR_INVALID_PARAM_TYPE,
					"saluton_arg_name", name,
					"saluton_arg_type", typeNameOf(value)).
				Throw()
		}
	}

	return nil
}
