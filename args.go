// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

type (
	/*
	Args represents the parameter record a computed translation value
	is produced from.

	Only strings and numbers (ints, uints, floats) are allowed as values.
	Anything else (booleans, nils, nested structures, ...) is a caller error
	and is rejected by Scope.Resolve() before any producer is invoked.
	*/
	Args map[string]interface{}
)
