// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

/*
isValid ensures that the current Scope object is not nil and initialized
correctly (created by Root() or Child(), not manually instantiated).
Returns true if this is correct object.
*/
func (s *Scope) isValid() bool {
	return s != nil && s.merged != nil
}

/*
mergeFragment builds the merged dictionary of a child scope:
a copy of the parent's accumulator with the fragment's keys
overwritten into it, key by key.

A key present in the fragment fully replaces the parent's entry
at that key, whole language map included.

The parent's map is never touched. The child shares the *phrase values
with the fragment itself, which is fine: both are immutable.
*/
func mergeFragment(parent map[string]*phrase, fragment *Fragment) map[string]*phrase {

	merged := make(map[string]*phrase, len(parent)+len(fragment.phrases))

	for key, ph := range parent {
		merged[key] = ph
	}
	for key, ph := range fragment.phrases {
		merged[key] = ph
	}

	return merged
}
