// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

/*
validate is the mode exclusivity check behind Request.Validate().

Exactly one of {plain key, key + callback, variants} must be declared:

 - a Key together with Variants is ERR_AMBIGUOUS_MODE;
 - a Callback without a Key has nothing to deliver;
 - neither a Key nor Variants is an empty request.
*/
func (r Request) validate() *ekaerr.Error {
	const e = "Failed to validate a leaf request. "

	switch {

	case r.Key != "" && len(r.Variants) > 0:
		return ekaerr.IllegalArgument.
			New(e + "Request declares both a translation key and language variants: " +
				ERR_AMBIGUOUS_MODE + ".").
			AddFields(
				"saluton_error", ERR_AMBIGUOUS_MODE,
				"saluton_key", r.Key).
			Throw()

	case r.Callback != nil && r.Key == "":
		return ekaerr.IllegalArgument.
			New(e + "Request declares a delivery callback but no translation key.").
			Throw()

	case r.Key == "" && len(r.Variants) == 0:
		return ekaerr.IllegalArgument.
			New(e + "Request declares neither a translation key nor language variants.").
			Throw()

	default:
		return nil
	}
}

/*
selectVariant picks the precomposed fragment of the variant selection mode:
the exact active language first, the chain's ambient default second,
nil ("render nothing") if neither matches.

The two fallbacks here are intentional silent ones, not errors.
*/
func (s *Scope) selectVariant(variants map[string]interface{}) interface{} {

	if fragment, found := variants[s.ActiveLanguage()]; found {
		return fragment
	}
	if fragment, found := variants[s.ambient]; found {
		return fragment
	}
	return nil
}
