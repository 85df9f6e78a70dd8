// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	DEFAULT_DELIMITER separates the parts of a translation key
	that was declared as a nested key group in a YAML or TOML source.

	        menu:
	          file:
	            open: { en: "Open", eo: "Malfermi" }

	becomes the translation key "menu/file/open".
	*/
	DEFAULT_DELIMITER byte = '/'
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	There are reserved names of the host's leaf request construct.
	They control HOW a resolved value is delivered
	(nested content passthrough, callback delivery, variant selection),
	and thus they can never be used as translation keys.

	Both Normalize() and Scope.Resolve() reject them.
	*/
	RESERVED_KEY_CHILDREN  = "children"
	RESERVED_KEY_RENDER    = "render"
	RESERVED_KEY_COMPONENT = "component"
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	There are the stable names of all misuse conditions the engine reports.

	Each returned *ekaerr.Error of that family carries the matching name
	in its message and in the "saluton_error" field.
	None of these conditions is ever worth a retry:
	all of them stem from a static misconfiguration or a caller error.
	*/

	// A key's language set differs from the fragment's canonical one.
	// Normalization time. Fatal for the whole fragment.
	ERR_INCONSISTENT_LANGUAGE_SET = "InconsistentLanguageSet"

	// A reserved name is used as a translation key.
	ERR_RESERVED_KEY = "ReservedKeyError"

	// The requested key is absent in the merged dictionary.
	// Treat it as a programming error, not a recoverable condition.
	ERR_UNKNOWN_KEY = "UnknownKeyError"

	// An Args value is neither a string nor a number.
	ERR_INVALID_PARAM_TYPE = "InvalidParamTypeError"

	// A computed producer panicked.
	// The error is attributable to the exact (key, language) pair.
	ERR_VALUE_PRODUCER = "ValueProducerError"

	// A leaf request declares more than one delivery mode at once.
	ERR_AMBIGUOUS_MODE = "AmbiguousModeError"
)

/*
IsReservedKey reports whether key is one of the three reserved names
(RESERVED_KEY_CHILDREN, RESERVED_KEY_RENDER, RESERVED_KEY_COMPONENT).

A reserved name can not be used as a translation key.
An attempt to do that is rejected by both Normalize() and Scope.Resolve().
*/
func IsReservedKey(key string) bool {
	switch key {
	case RESERVED_KEY_CHILDREN, RESERVED_KEY_RENDER, RESERVED_KEY_COMPONENT:
		return true
	default:
		return false
	}
}

/*
DetectAmbient derives the host environment's ambient default language
from the platform locale environment variables:
"LC_ALL", then "LC_MESSAGES", then "LANG".

The value is parsed leniently (a BCP 47 tag or a POSIX locale like "en_US.UTF-8"
are both fine) and reduced to its base language ("en", "es", "ja", ...).

If nothing usable is set, "en" is returned.

DetectAmbient is consulted by nobody inside the engine.
It exists for callers constructing a root Scope:

        root := saluton.Root(saluton.DetectAmbient())
*/
func DetectAmbient() string {

	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {

		value := os.Getenv(envVar)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}

		// Strip the POSIX charset suffix, if any ("en_US.UTF-8" -> "en_US"),
		// and hyphenate the language-region separator for the BCP 47 parser.
		if idx := strings.IndexByte(value, '.'); idx != -1 {
			value = value[:idx]
		}
		value = strings.ReplaceAll(value, "_", "-")

		tag, legacyErr := language.Parse(value)
		if legacyErr != nil {
			continue
		}

		if base, confidence := tag.Base(); confidence > language.No {
			return base.String()
		}
	}

	return "en"
}
