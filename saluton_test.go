// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReservedKey(t *testing.T) {
	assert.True(t, IsReservedKey(RESERVED_KEY_CHILDREN))
	assert.True(t, IsReservedKey(RESERVED_KEY_RENDER))
	assert.True(t, IsReservedKey(RESERVED_KEY_COMPONENT))

	assert.False(t, IsReservedKey("greetings"))
	assert.False(t, IsReservedKey(""))
}

func TestDetectAmbient(t *testing.T) {
	localeEnvVars := []string{"LC_ALL", "LC_MESSAGES", "LANG"}

	for _, envVar := range localeEnvVars {
		saved := os.Getenv(envVar)
		defer os.Setenv(envVar, saved)
	}

	setEnv := func(lcAll, lcMessages, lang string) {
		for i, value := range []string{lcAll, lcMessages, lang} {
			os.Setenv(localeEnvVars[i], value)
		}
	}

	// LC_ALL takes precedence, the charset suffix is stripped.
	setEnv("ja_JP.UTF-8", "es_ES", "en_US")
	assert.Equal(t, "ja", DetectAmbient())

	// An empty LC_ALL falls through to LC_MESSAGES.
	setEnv("", "es_ES", "en_US")
	assert.Equal(t, "es", DetectAmbient())

	// A not parseable value falls through to the next variable.
	setEnv("!!!", "", "eo")
	assert.Equal(t, "eo", DetectAmbient())

	// The "C" / "POSIX" locales are skipped, not parsed.
	setEnv("C", "POSIX", "es_ES")
	assert.Equal(t, "es", DetectAmbient())

	// Nothing usable is set: the default.
	setEnv("", "", "")
	assert.Equal(t, "en", DetectAmbient())

	setEnv("C", "", "POSIX")
	assert.Equal(t, "en", DetectAmbient())
}
