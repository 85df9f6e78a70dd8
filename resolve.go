// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

/*
Resolve resolves the passed translation key at the current scope
and produces the final text.

The lookup runs against the merged dictionary of the chain
(root up to and including this scope) under ActiveLanguage().
If the key doesn't carry the active language,
the key's own fallback language (the first declared one) is used instead;
that fallback never errors: a key with at least one language always resolves.

args is the parameter record handed to a computed producer
(a literal ignores it). Only strings and numbers are allowed as values.

Every possible error here stems from a caller mistake,
none is worth a retry:

 - ERR_RESERVED_KEY:       key is one of the reserved names;
 - ERR_UNKNOWN_KEY:        key is absent in the merged dictionary;
 - ERR_INVALID_PARAM_TYPE: an args value is neither a string nor a number;
 - ERR_VALUE_PRODUCER:     the computed producer panicked.

An error aborts this one resolution only.
Sibling leaves and ancestor scopes are unaffected.
*/
func (s *Scope) Resolve(key string, args Args) (string, *ekaerr.Error) {
	text, _, err := s.resolve(key, args)
	return text, err.Throw()
}

/*
Tr is the soft-failure flavour of Resolve: it never returns an error.

If something goes wrong, a special string is returned instead of the phrase.
All of special returned strings has the same format:

        "i18nErr: <error_class>. Key: <translation_key>".
                <translation_key> is your translation key,
                <error_class> might be:

 - _SPTR_SCOPE_IS_NIL:                 Current Scope object is nil,
 - _SPTR_TRANSLATION_KEY_IS_EMPTY:     Translation key is empty,
 - _SPTR_TRANSLATION_KEY_IS_RESERVED:  Translation key is a reserved name,
 - _SPTR_TRANSLATION_NOT_FOUND:        Translation not found,
 - _SPTR_BAD_ARGUMENTS:                An args value has a prohibited type,
 - _SPTR_PRODUCER_FAILED:              The computed producer panicked.

Nil safe.
If this method is called on nil object, the special string is returned.
*/
func (s *Scope) Tr(key string, args Args) string {
	text, class, _ := s.resolve(key, args)
	if class != "" {
		return sptr(class, key)
	}
	return text
}
