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

func TestNormalize(t *testing.T) {
	fragment, err := Normalize(RawFragment{
		"greetings": {
			{"en", "Hello"},
			{"es", "¡Hola!"},
		},
		"farewell": {
			{"es", "Adiós"},
			{"en", "Bye"},
		},
	})
	require.True(t, err.IsNil())
	require.NotNil(t, fragment)

	assert.Equal(t, 2, fragment.Len())
	assert.True(t, fragment.Has("greetings"))
	assert.True(t, fragment.Has("farewell"))
	assert.False(t, fragment.Has("whatever"))
	assert.Equal(t, []string{"farewell", "greetings"}, fragment.Keys())

	// The canonical order comes from the first processed key
	// (keys are processed sorted, so "farewell" establishes it).
	assert.Equal(t, []string{"es", "en"}, fragment.Languages())
}

func TestNormalizeIdempotence(t *testing.T) {
	fragment, err := Normalize(RawFragment{
		"greetings": {{"en", "Hello"}},
	})
	require.True(t, err.IsNil())

	again, err := Normalize(fragment)
	require.True(t, err.IsNil())

	// Normalizing an already normalized fragment is a no-op.
	assert.Same(t, fragment, again)
}

func TestNormalizeConsistencyEnforcement(t *testing.T) {
	fragment, err := Normalize(RawFragment{
		"greetings": {
			{"en", "Hello"},
			{"es", "¡Hola!"},
		},
		"farewell": {
			{"en", "Bye"},
			{"ja", "さようなら"},
		},
	})
	require.True(t, err.IsNotNil())
	assert.Nil(t, fragment)
}

func TestNormalizeRejectsReservedKeys(t *testing.T) {
	for _, reserved := range []string{
		RESERVED_KEY_CHILDREN,
		RESERVED_KEY_RENDER,
		RESERVED_KEY_COMPONENT,
	} {
		fragment, err := Normalize(RawFragment{
			reserved: {{"en", "whatever"}},
		})
		require.True(t, err.IsNotNil(), reserved)
		assert.Nil(t, fragment, reserved)
	}
}

func TestNormalizeScalarValues(t *testing.T) {
	fragment, err := Normalize(RawFragment{
		"int":   {{"en", 42}},
		"uint":  {{"en", uint(42)}},
		"float": {{"en", 4.5}},
		"bool":  {{"en", true}},
		"nil":   {{"en", nil}},
	})
	require.True(t, err.IsNil())

	scope := Root("en").Child(fragment, "")
	assert.Equal(t, "42", scope.Tr("int", nil))
	assert.Equal(t, "42", scope.Tr("uint", nil))
	assert.Equal(t, "4.50", scope.Tr("float", nil))
	assert.Equal(t, "true", scope.Tr("bool", nil))
	assert.Equal(t, "<undefined>", scope.Tr("nil", nil))
}

func TestNormalizeFailures(t *testing.T) {
	for name, raw := range map[string]RawFragment{
		"empty fragment":     {},
		"empty key":          {"": {{"en", "x"}}},
		"no languages":       {"greetings": {}},
		"empty language":     {"greetings": {{"", "x"}}},
		"duplicate language": {"greetings": {{"en", "x"}, {"en", "y"}}},
		"prohibited value":   {"greetings": {{"en", []string{"x"}}}},
		"nil function":       {"greetings": {{"en", (func(Args) string)(nil)}}},
		"zero producer":      {"greetings": {{"en", Producer{}}}},
	} {
		fragment, err := Normalize(raw)
		require.True(t, err.IsNotNil(), name)
		assert.Nil(t, fragment, name)
	}
}

func TestNormalizeUnexpectedSourceType(t *testing.T) {
	for name, source := range map[string]interface{}{
		"nil":          nil,
		"nil fragment": (*Fragment)(nil),
		"number":       42,
		"string":       "greetings",
	} {
		fragment, err := Normalize(source)
		require.True(t, err.IsNotNil(), name)
		assert.Nil(t, fragment, name)
	}
}
