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

func TestLiteral(t *testing.T) {
	text, panicked := Literal("Hello").call(Args{"whatever": "ignored"})
	require.Nil(t, panicked)
	assert.Equal(t, "Hello", text)

	assert.True(t, Literal("").IsValid())
}

func TestComputed(t *testing.T) {
	producer := Computed(func(args Args) string {
		if name, found := args["name"]; found {
			return "Hello " + name.(string) + "!"
		}
		return "Hello World!"
	})
	require.True(t, producer.IsValid())

	text, panicked := producer.call(Args{"name": "Francisco"})
	require.Nil(t, panicked)
	assert.Equal(t, "Hello Francisco!", text)

	text, panicked = producer.call(nil)
	require.Nil(t, panicked)
	assert.Equal(t, "Hello World!", text)

	assert.False(t, Computed(nil).IsValid())
	assert.False(t, Producer{}.IsValid())
}

func TestTemplate(t *testing.T) {
	tf := func(template string, args Args, want string) {
		text, panicked := Template(template).call(args)
		require.Nil(t, panicked)
		assert.Equal(t, want, text)
	}

	tf("test string", nil, "test string")
	tf("test {{", nil, "test {{")
	tf("test {{as}}", nil, "test {{as}}")

	tf("test {{key}}", Args{"key": "string"}, "test string")

	tf("{{s1}} {{i_}} {{unexisted}} {{", Args{
		"s1": "string",
		"i_": 124,
	}, "string 124 {{unexisted}} {{")
}

func TestProducerPanicIsContained(t *testing.T) {
	producer := Computed(func(_ Args) string {
		panic("boom")
	})

	text, panicked := producer.call(nil)
	assert.Equal(t, "", text)
	require.NotNil(t, panicked)
	assert.Equal(t, "boom", panicked)
}

func TestProducerNilPanicIsContained(t *testing.T) {
	producer := Computed(func(_ Args) string {
		panic(nil)
	})

	// recover() reports a panic(nil) as nil;
	// the containment must catch it anyway.
	text, panicked := producer.call(nil)
	assert.Equal(t, "", text)
	require.NotNil(t, panicked)
}
