// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

// commonWords lists jargon encountered across every supported language
// that general-purpose dictionaries routinely miss, generalized from the
// teacher's single Go-only knownWords list.
var commonWords = []string{
	// Common hosters and ecosystem nouns.
	"bitbucket", "github", "gitlab", "sourcehut", "sr", "ht",
	"npm", "pip", "cargo", "gomod", "changelog", "readme", "gitignore",
	"async", "args", "kwargs", "stdin", "stdout", "stderr", "utf",
	"json", "yaml", "toml", "xml", "html", "css", "sql", "http", "https",
	"api", "url", "uri", "uuid", "regex", "enum", "struct", "bool",
	"localhost", "hostname", "symlink", "symlinks", "toolchain", "toolchains",
	"codec", "endian", "allocator", "boolean", "booleans", "NaN", "NaNs",
}

// languageWords holds words specific to a single language's keyword set
// and standard library/builtin vocabulary, keyed by LanguageDescriptor
// id (§4.D), the per-language generalization of the teacher's single
// Go-keywords list promised by SPEC_FULL's "dictionary_hints" addition.
var languageWords = map[string][]string{
	"go": {
		"golang",
		"break", "case", "chan", "const", "continue", "default",
		"defer", "else", "fallthrough", "for", "func", "go", "goto",
		"if", "import", "interface", "map", "package", "range",
		"return", "select", "struct", "switch", "type", "var",
		"append", "cap", "cgo", "copy", "goroutine", "goroutines", "init",
		"inits", "len", "make", "new", "nil", "panic", "print",
		"println", "recover",
		"int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128", "byte", "rune",
		"linkname", "nocheckptr", "noescape", "noinline", "nointerface",
		"norace", "nosplit", "notinheap", "nowritebarrier",
		"nowritebarrierrec", "registerparams", "systemstack",
		"uintptrescapes", "yeswritebarrierrec",
		"aix", "amd64", "arm64", "darwin", "freebsd", "illumos", "ios", "js",
		"linux", "mips", "mips64", "mips64le", "mipsle", "netbsd", "openbsd",
		"ppc64", "ppc64le", "riscv64", "s390x", "solaris", "wasm", "windows",
	},
	"python": {
		"def", "elif", "lambda", "yield", "nonlocal", "dataclass",
		"dunder", "init", "repr", "iter", "str", "len", "enumerate",
		"pythonic", "pypi", "conda", "numpy", "pandas", "pytest",
		"asyncio", "coroutine", "decorator", "decorators", "kwarg", "kwargs",
	},
	"javascript": {
		"const", "let", "async", "await", "promise", "promises", "npm",
		"webpack", "babel", "eslint", "jsx", "tsx", "es6", "nodejs",
		"undefined", "null", "typeof", "instanceof", "prototype",
	},
	"typescript": {
		"interface", "enum", "readonly", "tsconfig", "tsc", "typeof",
		"keyof", "infer", "generics", "namespace", "decorator",
	},
	"rust": {
		"impl", "trait", "enum", "struct", "mut", "crate", "cargo",
		"clippy", "rustc", "lifetime", "lifetimes", "borrow", "borrowed",
		"ownership", "dyn", "unwrap",
	},
	"c": {
		"struct", "typedef", "enum", "sizeof", "const", "volatile",
		"malloc", "calloc", "realloc", "memcpy", "memset", "stdlib",
		"stdio", "printf", "scanf", "uintptr", "ptrdiff",
	},
	"bash": {
		"bash", "shebang", "stdin", "stdout", "stderr", "exec", "subshell",
		"heredoc", "fi", "esac", "elif", "printf", "grep", "sed", "awk",
	},
	"yaml": {
		"yaml", "yml", "anchors", "frontmatter", "kubernetes", "helm",
	},
}

// WordsFor returns the built-in supplemental vocabulary for a language
// id: the common cross-language jargon list plus that language's own
// keyword/builtin list, if any is registered.
func WordsFor(languageID string) []string {
	words := make([]string, 0, len(commonWords)+8)
	words = append(words, commonWords...)
	words = append(words, languageWords[languageID]...)
	return words
}
