package languages

import (
	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Tagged template literals name their embedded language by the tag identifier,
// following the convention of the upstream injections.scm files.
const ecmaInjections = `
        (call_expression
            function: (identifier) @injection.language
            arguments: (template_string) @injection.content)
    `

func setupBash(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_bash.Language())
	queryStr := `
        (comment) @comment
        (string) @string
        (raw_string) @string
        (heredoc_body) @string
        (number) @number
        (variable_name) @variable
        (command_name (word) @function)
        (function_definition name: (word) @function)
        ["if" "then" "else" "elif" "fi" "for" "while" "until" "do" "done"
         "case" "esac" "in" "function" "declare" "export" "local"] @keyword
    `
	return newConfig(d, lang, queryStr, "")
}

func setupC(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_c.Language())
	queryStr := `
        (comment) @comment
        (string_literal) @string
        (system_lib_string) @string.special
        (char_literal) @string
        (number_literal) @number
        (call_expression function: (identifier) @function)
        (function_declarator declarator: (identifier) @function)
        (preproc_function_def name: (identifier) @function)
        (field_identifier) @property
        (statement_identifier) @constant
        (type_identifier) @type
        (primitive_type) @type.builtin
        ["if" "else" "while" "for" "do" "return" "break" "continue" "switch"
         "case" "default" "goto" "struct" "union" "enum" "typedef" "extern"
         "static" "const" "inline" "sizeof"] @keyword
        ["#include" "#define" "#ifdef" "#ifndef" "#if" "#else" "#endif"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}

func setupCpp(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_cpp.Language())
	queryStr := `
        (comment) @comment
        (string_literal) @string
        (raw_string_literal) @string
        (char_literal) @string
        (number_literal) @number
        (call_expression function: (identifier) @function)
        (call_expression function: (field_expression field: (field_identifier) @function))
        (function_declarator declarator: (identifier) @function)
        (function_declarator declarator: (field_identifier) @function)
        (field_identifier) @property
        (namespace_identifier) @module
        (type_identifier) @type
        (primitive_type) @type.builtin
        (auto) @type.builtin
        ["if" "else" "while" "for" "do" "return" "break" "continue" "switch"
         "case" "default" "class" "struct" "union" "enum" "typedef" "template"
         "typename" "namespace" "using" "public" "private" "protected"
         "virtual" "override" "new" "delete" "const" "constexpr" "static"
         "inline" "operator" "try" "catch" "throw" "sizeof"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}

func setupCSharp(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_csharp.Language())
	queryStr := `
        (comment) @comment
        (string_literal) @string
        (verbatim_string_literal) @string
        (character_literal) @string
        (integer_literal) @number
        (real_literal) @number
        (invocation_expression function: (identifier) @function)
        (invocation_expression function: (member_access_expression name: (identifier) @function))
        (method_declaration name: (identifier) @function)
        (constructor_declaration name: (identifier) @constructor)
        (predefined_type) @type.builtin
        [(boolean_literal) (null_literal)] @constant.builtin
        ["if" "else" "while" "for" "foreach" "do" "return" "break" "continue"
         "switch" "case" "default" "class" "struct" "interface" "enum"
         "namespace" "using" "public" "private" "protected" "internal"
         "static" "readonly" "const" "var" "new" "try" "catch" "finally"
         "throw" "async" "await"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}

func setupGo(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_go.Language())
	queryStr := `
        (comment) @comment
        (interpreted_string_literal) @string
        (raw_string_literal) @string
        (rune_literal) @string
        (escape_sequence) @string.special
        [(int_literal) (float_literal) (imaginary_literal)] @number
        (call_expression function: (identifier) @function)
        (call_expression function: (selector_expression field: (field_identifier) @function))
        (function_declaration name: (identifier) @function)
        (method_declaration name: (field_identifier) @function)
        (field_identifier) @property
        (package_identifier) @module
        (type_identifier) @type
        [(true) (false) (nil) (iota)] @constant.builtin
        ["func" "return" "if" "else" "for" "range" "switch" "case" "default"
         "break" "continue" "go" "defer" "select" "chan" "map" "struct"
         "interface" "type" "var" "const" "package" "import" "fallthrough"
         "goto"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}

func setupJava(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_java.Language())
	queryStr := `
        (line_comment) @comment
        (block_comment) @comment
        (string_literal) @string
        (character_literal) @string
        [(decimal_integer_literal) (hex_integer_literal) (decimal_floating_point_literal)] @number
        (method_invocation name: (identifier) @function)
        (method_declaration name: (identifier) @function)
        (constructor_declaration name: (identifier) @constructor)
        (field_access field: (identifier) @property)
        (type_identifier) @type
        [(boolean_type) (integral_type) (floating_point_type) (void_type)] @type.builtin
        [(true) (false) (null_literal)] @constant.builtin
        ["if" "else" "while" "for" "do" "return" "break" "continue" "switch"
         "case" "default" "class" "interface" "enum" "extends" "implements"
         "package" "import" "public" "private" "protected" "static" "final"
         "abstract" "new" "try" "catch" "finally" "throw" "throws"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}

func setupJavaScript(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	return newConfig(d, lang, ecmaHighlights, ecmaInjections)
}

const ecmaHighlights = `
        (comment) @comment
        (string) @string
        (template_string) @string
        (regex) @string.special
        (number) @number
        (call_expression function: (identifier) @function)
        (call_expression function: (member_expression property: (property_identifier) @function))
        (function_declaration name: (identifier) @function)
        (method_definition name: (property_identifier) @function)
        (pair key: (property_identifier) @property)
        (member_expression property: (property_identifier) @property)
        (class_declaration name: (_) @type)
        [(true) (false) (null) (undefined)] @constant.builtin
        (shorthand_property_identifier) @property
        ["if" "else" "while" "for" "do" "return" "break" "continue" "switch"
         "case" "default" "function" "class" "extends" "new" "const" "let"
         "var" "import" "export" "from" "async" "await" "try" "catch"
         "finally" "throw" "typeof" "instanceof" "in" "of" "yield"] @keyword
        (identifier) @variable
    `

const typescriptExtras = `
        (type_identifier) @type
        (predefined_type) @type.builtin
        ["interface" "type" "enum" "namespace" "declare" "readonly"
         "implements" "keyof" "as"] @keyword
    `

func setupTypeScript(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	return newConfig(d, lang, typescriptExtras+ecmaHighlights, ecmaInjections)
}

func setupTsx(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	queryStr := typescriptExtras + `
        (jsx_opening_element name: (identifier) @tag)
        (jsx_closing_element name: (identifier) @tag)
        (jsx_self_closing_element name: (identifier) @tag)
        (jsx_attribute (property_identifier) @attribute)
    ` + ecmaHighlights
	return newConfig(d, lang, queryStr, ecmaInjections)
}

func setupPhp(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP())
	queryStr := `
        (comment) @comment
        (string) @string
        (encapsed_string) @string
        (integer) @number
        (float) @number
        (function_call_expression function: (name) @function)
        (method_declaration name: (name) @function)
        (function_definition name: (name) @function)
        (member_access_expression name: (name) @property)
        (variable_name) @variable
        (php_tag) @tag
        [(boolean) (null)] @constant.builtin
        ["if" "else" "elseif" "while" "for" "foreach" "do" "return" "break"
         "continue" "switch" "case" "default" "function" "class" "interface"
         "trait" "extends" "implements" "namespace" "use" "public" "private"
         "protected" "static" "const" "new" "try" "catch" "finally" "throw"
         "echo"] @keyword
    `
	return newConfig(d, lang, queryStr, "")
}

func setupPython(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_python.Language())
	queryStr := `
        (comment) @comment
        (string) @string
        (escape_sequence) @string.special
        [(integer) (float)] @number
        (call function: (identifier) @function)
        (call function: (attribute attribute: (identifier) @function))
        (function_definition name: (identifier) @function)
        (class_definition name: (identifier) @type)
        (attribute attribute: (identifier) @property)
        (decorator) @attribute
        [(true) (false) (none)] @constant.builtin
        ["if" "elif" "else" "while" "for" "return" "break" "continue" "pass"
         "def" "class" "lambda" "import" "from" "as" "with" "try" "except"
         "finally" "raise" "global" "nonlocal" "assert" "yield" "async"
         "await" "in" "is" "not" "and" "or" "del"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}

func setupRust(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_rust.Language())
	queryStr := `
        (line_comment) @comment
        (block_comment) @comment
        (string_literal) @string
        (raw_string_literal) @string
        (char_literal) @string
        [(integer_literal) (float_literal)] @number
        (call_expression function: (identifier) @function)
        (call_expression function: (field_expression field: (field_identifier) @function))
        (macro_invocation macro: (identifier) @function)
        (function_item name: (identifier) @function)
        (field_identifier) @property
        (type_identifier) @type
        (primitive_type) @type.builtin
        (lifetime) @attribute
        (self) @variable.builtin
        [(mutable_specifier)] @keyword
        ["fn" "let" "if" "else" "while" "for" "loop" "return" "break"
         "continue" "match" "struct" "enum" "trait" "impl" "mod" "use" "pub"
         "const" "static" "ref" "move" "async" "await" "dyn" "where"
         "unsafe" "as" "in"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}

func setupZig(d *definition) *Config {
	lang := tree_sitter.NewLanguage(tree_sitter_zig.Language())
	queryStr := `
        (function_declaration (identifier) @function)
        ["fn" "const" "var" "if" "else" "while" "for" "return" "break"
         "continue" "switch" "struct" "enum" "union" "pub" "try" "catch"
         "defer" "errdefer" "comptime" "test" "and" "or"] @keyword
        (identifier) @variable
    `
	return newConfig(d, lang, queryStr, "")
}
