// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queries embeds the tree-sitter query source for every
// supported language, generalizing the teacher's embed.go (which embeds
// a single data file) to N query files selected by build-time embed
// directives.
package queries

import _ "embed"

//go:embed go.scm
var Go string

//go:embed python.scm
var Python string

//go:embed javascript.scm
var JavaScript string

//go:embed typescript.scm
var TypeScript string

//go:embed rust.scm
var Rust string

//go:embed c.scm
var C string

//go:embed bash.scm
var Bash string

//go:embed yaml.scm
var Yaml string
