// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"strings"
)

// DictionaryBaseURL is the root of the wooorm/dictionaries collection
// of Hunspell .aff/.dic pairs keyed by BCP-47-ish language tag, used to
// resolve a dictionary name not found on any local search path.
const DictionaryBaseURL = "https://raw.githubusercontent.com/wooorm/dictionaries/main/dictionaries"

// ResolveDictionary downloads (or returns the already-verified cached
// copy of) the .aff and .dic files for name, satisfying
// dictionary.Resolver. name is translated from hunspell's underscore
// form ("en_US") to the collection's hyphenated tag ("en-US").
func (c *Cache) ResolveDictionary(ctx context.Context, name string) (aff, dic string, err error) {
	tag := strings.ReplaceAll(name, "_", "-")
	base := DictionaryBaseURL + "/" + tag + "/index"

	aff, err = c.Resolve(ctx, base+".aff")
	if err != nil {
		return "", "", err
	}
	dic, err = c.Resolve(ctx, base+".dic")
	if err != nil {
		return "", "", err
	}
	return aff, dic, nil
}
