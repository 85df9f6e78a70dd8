// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

type (
	_SpecialTranslationClass string
)

//goland:noinspection GoSnakeCaseUsage
const (
	__SPTR_PREFIX = _SpecialTranslationClass("i18nErr: ")
	__SPTR_SUFFIX = _SpecialTranslationClass(". Key: ")

	_SPTR_TRANSLATION_NOT_FOUND = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationNotFound") + __SPTR_SUFFIX

	_SPTR_SCOPE_IS_NIL = __SPTR_PREFIX +
		_SpecialTranslationClass("ScopeIsNil") + __SPTR_SUFFIX

	_SPTR_TRANSLATION_KEY_IS_EMPTY = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationKeyIsEmpty") + __SPTR_SUFFIX

	_SPTR_TRANSLATION_KEY_IS_RESERVED = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationKeyIsReserved") + __SPTR_SUFFIX

	_SPTR_BAD_ARGUMENTS = __SPTR_PREFIX +
		_SpecialTranslationClass("BadArguments") + __SPTR_SUFFIX

	_SPTR_PRODUCER_FAILED = __SPTR_PREFIX +
		_SpecialTranslationClass("ProducerFailed") + __SPTR_SUFFIX
)

/*
Trivia:
Scope.Tr() may have an error.
Not existed or empty or reserved translation key, a nil Scope,
a prohibited argument type, a panicked producer.

We need to way to say caller that there was an error.
I do not want to use *ekaerr.Error
as a 2nd return argument of Scope.Tr() method
(Scope.Resolve() exists for those who do).
Caller's checks will be too hard to read.

There is another way.
A special strings. It's OK. Users will say:
"Ha, bad translations. Found an easter egg. Or visual translation bug."
And it's ok. It will not lead to some bad consequences. I mean, very bad.

So, sptr() is just a generator of that "easter egg" - a special string
that you (as a caller) may get instead of language phrase. If something went wrong.

And "_SPTR_" starts constants are classes for that generator.
*/
func sptr(class _SpecialTranslationClass, originalKey string) string {
	return string(class) + originalKey
}
