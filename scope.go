// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

type (
	/*
	Scope is one node of the host's composition tree,
	linked to its parent and thus representing the whole root-to-node chain.

	A Scope may contribute a dictionary Fragment, a language override,
	both, or neither. Descendants inherit and override
	ancestor contributions:

	 - Dictionary: fragments are merged root-to-leaf, key by key;
	   a key present in a descendant fully replaces, at that key,
	   the ancestor's entry (whole-key replacement,
	   not a deep per-language merge).

	 - Language: the override of the nearest scope
	   (self first, then nearest ancestor) wins.
	   If no scope of the chain declares one,
	   the ambient default language of the root is used.

	A Scope is NEVER mutated after creation.
	Cascading is achieved by recomputation at the Child() call,
	not by shared mutable state: the merged dictionary of a child is built
	once, eagerly, from the parent's one. That makes any two chains
	with equal content resolve identically, no matter what other chains
	do meanwhile, and makes concurrent resolutions of independent chains
	safe without any coordination.

	You must not instantiate this class manually.
	A manually instantiated (or nil) Scope is considered not initialized:
	its methods degrade gracefully instead of panicking.
	*/
	Scope struct {
		parent   *Scope
		fragment *Fragment
		language string // explicit override; empty if the scope declares none
		ambient  string // host-supplied ambient default; same along the chain
		merged   map[string]*phrase
	}
)

/*
Root creates the root Scope of a composition tree.

ambientLanguage is the host environment's ambient default language,
supplied exactly once, here. It is consulted only when no scope
of a chain declares an explicit language override
(DetectAmbient() derives one from the platform locale, if you need that).

The root itself contributes no dictionary and no override;
attach those with Child().
*/
func Root(ambientLanguage string) *Scope {
	return &Scope{
		ambient: ambientLanguage,
		merged:  make(map[string]*phrase),
	}
}

/*
Child derives a new Scope from the current one.

fragment is the dictionary contribution of the new scope (nil for none),
language is its explicit language override (empty for none).
Both absent is fine: such a scope changes nothing and just extends the chain.

The fragment must be normalized (built by Normalize() or a FragmentFrom...
loader). A manually instantiated Fragment is ignored as if it was nil.

Neither the current Scope nor the passed Fragment are mutated, ever.
The merged dictionary of the child is computed here, once.

Nil safe: deriving from a nil Scope returns nil.
*/
func (s *Scope) Child(fragment *Fragment, language string) *Scope {
	if !s.isValid() {
		return nil
	}

	child := &Scope{
		parent:   s,
		language: language,
		ambient:  s.ambient,
		merged:   s.merged,
	}

	if fragment.isValid() {
		child.fragment = fragment
		child.merged = mergeFragment(s.merged, fragment)
	}

	return child
}

/*
ActiveLanguage returns the language all resolutions at this scope run under:
the language override of the nearest scope that declares one
(self first, then nearest ancestor), or, if none does,
the ambient default language the root was created with.

Nil safe. An empty string is returned for a not initialized Scope.
*/
func (s *Scope) ActiveLanguage() string {
	if !s.isValid() {
		return ""
	}
	for scope := s; scope != nil; scope = scope.parent {
		if scope.language != "" {
			return scope.language
		}
	}
	return s.ambient
}

/*
AmbientLanguage returns the host-supplied ambient default language
the chain's root was created with.

Nil safe. An empty string is returned for a not initialized Scope.
*/
func (s *Scope) AmbientLanguage() string {
	if !s.isValid() {
		return ""
	}
	return s.ambient
}

/*
Has reports whether the merged dictionary of the chain
(root up to and including this scope) carries the passed translation key.
Nil safe.
*/
func (s *Scope) Has(key string) bool {
	if !s.isValid() {
		return false
	}
	_, found := s.merged[key]
	return found
}

/*
Len returns the number of translation keys
the merged dictionary of the chain carries. Nil safe.
*/
func (s *Scope) Len() int {
	if !s.isValid() {
		return 0
	}
	return len(s.merged)
}
