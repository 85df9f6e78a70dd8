// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package saluton

import (
	"io/ioutil"

	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	SourceFormat allows you to know which format a dictionary source has:
	YAML? TOML? Not recognized yet?
	*/
	SourceFormat uint8
)

//goland:noinspection GoSnakeCaseUsage
const (
	SOURCE_FORMAT_UNKNOWN SourceFormat = 0
	SOURCE_FORMAT_YAML    SourceFormat = 1
	SOURCE_FORMAT_TOML    SourceFormat = 2
)

/*
String returns a human readable name of the current SourceFormat.
*/
func (f SourceFormat) String() string {
	switch f {
	case SOURCE_FORMAT_YAML:
		return "YAML"
	case SOURCE_FORMAT_TOML:
		return "TOML"
	default:
		return "<unknown>"
	}
}

/*
SniffFormat reports which format the passed dictionary content has:
each supported decoder is tried in order (YAML first, then TOML)
and the first one that accepts the content names it.

SOURCE_FORMAT_UNKNOWN is returned if no decoder accepts the content.
Only the DECODING is checked; normalization constraints are not.
*/
func SniffFormat(content []byte) SourceFormat {
	for _, contentResolver := range sourceContentResolvers {
		if _, err := contentResolver.Decode(content); err.IsNil() {
			return contentResolver.AssociatedFormat
		}
	}
	return SOURCE_FORMAT_UNKNOWN
}

/*
FragmentFromYAML decodes the passed YAML content into a dictionary fragment
and normalizes it (the same path Normalize() takes, same guarantees).

The document must be a mapping: translation key -> language -> value.
Language declaration order of the document is preserved:
the first language of each key is that key's fallback language.

Keys may be grouped; nested groups flatten into one key
with DEFAULT_DELIMITER between the parts:

        menu:
          file:
            open: { en: "Open", eo: "Malfermi" }

declares the translation key "menu/file/open".
*/
func FragmentFromYAML(content []byte) (*Fragment, *ekaerr.Error) {
	const e = "Failed to load a dictionary fragment from YAML content. "

	raw, err := rawFromYAML(content)
	if err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	fragment, err := normalizeRaw(raw)
	if err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	return fragment, nil
}

/*
FragmentFromTOML is FragmentFromYAML's counterpart for TOML content.

The same shape, the same flattening of nested tables,
the same preservation of the language declaration order
(recovered from the key positions in the document).
*/
func FragmentFromTOML(content []byte) (*Fragment, *ekaerr.Error) {
	const e = "Failed to load a dictionary fragment from TOML content. "

	raw, err := rawFromTOML(content)
	if err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	fragment, err := normalizeRaw(raw)
	if err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			Throw()
	}

	return fragment, nil
}

/*
FragmentFromBytes decodes dictionary content of a not known format:
each supported decoder is tried in order (YAML first, then TOML)
until one of them accepts the content.

Keep in mind that only the DECODING is tried per-format;
a fragment that decodes fine but violates a normalization constraint
fails immediately with that constraint's error,
it's not masked by trying the next format.
*/
func FragmentFromBytes(content []byte) (*Fragment, *ekaerr.Error) {
	const e = "Failed to load a dictionary fragment from byte content. "

	var (
		raw    RawFragment
		format = SOURCE_FORMAT_UNKNOWN
	)

	for _, contentResolver := range sourceContentResolvers {
		if decoded, err := contentResolver.Decode(content); err.IsNil() {
			raw, format = decoded, contentResolver.AssociatedFormat
			break
		}
	}

	if format == SOURCE_FORMAT_UNKNOWN {
		return nil, ekaerr.IllegalFormat.
			New(e + "All options for decoding the byte content have failed.").
			Throw()
	}

	fragment, err := normalizeRaw(raw)
	if err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			AddFields("saluton_source_format", format.String()).
			Throw()
	}

	return fragment, nil
}

/*
FragmentFromFile reads the file the passed path points to
and decodes it by its extension:
".yml" / ".yaml" as YAML, ".toml" as TOML,
anything else through the FragmentFromBytes() sniffing.

It's a convenience shortcut for hosts that keep dictionaries on disk;
the engine itself never touches the filesystem.
*/
func FragmentFromFile(path string) (*Fragment, *ekaerr.Error) {
	const e = "Failed to load a dictionary fragment from a file. "

	content, legacyErr := ioutil.ReadFile(path)
	if legacyErr != nil {
		return nil, ekaerr.DataUnavailable.
			Wrap(legacyErr, e+"Failed to read provided path.").
			AddFields("saluton_source_path", path).
			Throw()
	}

	var (
		fragment *Fragment
		err      *ekaerr.Error
	)

	switch formatByExtension(path) {
	case SOURCE_FORMAT_YAML:
		fragment, err = FragmentFromYAML(content)
	case SOURCE_FORMAT_TOML:
		fragment, err = FragmentFromTOML(content)
	default:
		fragment, err = FragmentFromBytes(content)
	}

	if err.IsNotNil() {
		return nil, err.
			AddMessage(e).
			AddFields("saluton_source_path", path).
			Throw()
	}

	return fragment, nil
}
