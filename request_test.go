// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInline(t *testing.T) {
	fragment := mustNormalize(t, RawFragment{
		"greetings": {{"en", "Hello"}},
	})
	scope := Root("en").Child(fragment, "")

	output, err := scope.Render(ByKey("greetings", nil))
	require.True(t, err.IsNil())
	assert.Equal(t, "Hello", output)
}

func TestRenderCallbackBypass(t *testing.T) {
	fragment := mustNormalize(t, RawFragment{
		"greetings": {{"en", "Hey!"}},
	})
	scope := Root("en").Child(fragment, "")

	output, err := scope.Render(ByKeyWithCallback("greetings", nil,
		func(text string) interface{} {
			return "[" + text + "]"
		}))

	require.True(t, err.IsNil())

	// The callback's return value is the output;
	// the raw resolved string is never itself embedded.
	assert.Equal(t, "[Hey!]", output)
	assert.NotEqual(t, "Hey!", output)
}

func TestRenderVariantSelection(t *testing.T) {
	variants := map[string]interface{}{
		"en": "fragment-en",
		"es": "fragment-es",
	}

	// Exact active language match.
	scope := Root("en").Child(nil, "es")
	output, err := scope.Render(ByVariants(variants))
	require.True(t, err.IsNil())
	assert.Equal(t, "fragment-es", output)

	// No exact match: the ambient default is tried.
	scope = Root("en").Child(nil, "ja")
	output, err = scope.Render(ByVariants(variants))
	require.True(t, err.IsNil())
	assert.Equal(t, "fragment-en", output)

	// Neither matches: nothing is rendered, and that is not an error.
	scope = Root("eo").Child(nil, "ja")
	output, err = scope.Render(ByVariants(variants))
	require.True(t, err.IsNil())
	assert.Nil(t, output)
}

func TestRequestModeValidation(t *testing.T) {
	for name, request := range map[string]Request{
		"key and variants": {
			Key:      "greetings",
			Variants: map[string]interface{}{"en": "fragment-en"},
		},
		"callback without key": {
			Callback: func(text string) interface{} { return text },
		},
		"empty request": {},
	} {
		require.True(t, request.Validate().IsNotNil(), name)

		_, err := Root("en").Render(request)
		require.True(t, err.IsNotNil(), name)
	}

	// The three constructors produce valid requests.
	assert.True(t, ByKey("greetings", nil).Validate().IsNil())
	assert.True(t, ByKeyWithCallback("greetings", nil,
		func(text string) interface{} { return text }).Validate().IsNil())
	assert.True(t, ByVariants(map[string]interface{}{
		"en": "fragment-en",
	}).Validate().IsNil())
}

func TestRenderFailureIsScopedToTheLeaf(t *testing.T) {
	fragment := mustNormalize(t, RawFragment{
		"greetings": {{"en", "Hello"}},
	})
	scope := Root("en").Child(fragment, "")

	_, err := scope.Render(ByKey("whatever", nil))
	require.True(t, err.IsNotNil())

	// A sibling leaf of the same scope renders fine afterwards.
	output, err := scope.Render(ByKey("greetings", nil))
	require.True(t, err.IsNil())
	assert.Equal(t, "Hello", output)
}

func TestRenderOnNilScope(t *testing.T) {
	var scope *Scope
	_, err := scope.Render(ByKey("greetings", nil))
	assert.True(t, err.IsNotNil())
}
