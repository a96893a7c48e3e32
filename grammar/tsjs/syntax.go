package tsjs

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/splicer/grammar"

var syntax = &grammar.Syntax{
	Contexts: []grammar.InsertionContext{
		{
			Name:    "object member",
			Parents: []string{"object"},
			Prefix:  "({",
			Suffix:  "})",
			Trim:    ",",
			Unwrap:  []string{"expression_statement", "parenthesized_expression", "object"},
		},
		{
			Name:    "JSX attribute",
			Parents: []string{"jsx_opening_element", "jsx_self_closing_element"},
			Field:   "attribute",
			Prefix:  "<X ",
			Suffix:  "/>",
			Unwrap:  []string{"expression_statement", "jsx_self_closing_element"},
			Holder:  "attribute",
		},
		{
			Name:    "JSX child",
			Parents: []string{"jsx_element"},
			Prefix:  "<X>",
			Suffix:  "</X>",
			Unwrap:  []string{"expression_statement", "jsx_element"},
		},
		{
			Name:    "template segment",
			Parents: []string{"template_string"},
			Prefix:  "`",
			Suffix:  "`",
			Unwrap:  []string{"expression_statement", "template_string"},
			Max:     1,
		},
		{
			Name:    "string content",
			Parents: []string{"string"},
			Prefix:  `"`,
			Suffix:  `"`,
			Delimit: true,
			Unwrap:  []string{"expression_statement", "string"},
		},
		{
			Name:    "class member",
			Parents: []string{"class_body"},
			Field:   grammar.Any,
			Prefix:  "class X {",
			Suffix:  "}",
			Trim:    ";",
			Unwrap:  []string{"class_declaration", "class_body"},
			Holder:  grammar.Any,
		},
		{
			Name:    "argument",
			Parents: []string{"arguments"},
			Prefix:  "f(",
			Suffix:  ")",
			Trim:    ",",
			Unwrap:  []string{"expression_statement", "call_expression", "arguments"},
		},
		{
			Name:    "array element",
			Parents: []string{"array"},
			Prefix:  "[",
			Suffix:  "]",
			Trim:    ",",
			Unwrap:  []string{"expression_statement", "array"},
		},
		{
			Name:    "parameter",
			Parents: []string{"formal_parameters"},
			Prefix:  "function f(",
			Suffix:  ") {}",
			Trim:    ",",
			Unwrap:  []string{"function_declaration", "formal_parameters"},
		},
	},
	Default: grammar.InsertionContext{
		Name: "statement",
		Lift: "expression_statement",
	},
	Identifiers: []string{
		"identifier",
		"property_identifier",
		"shorthand_property_identifier",
		"shorthand_property_identifier_pattern",
		"private_property_identifier",
		"type_identifier",
		"statement_identifier",
		"jsx_identifier",
	},
	NameFields:  []string{"name", "key", "function", "constructor", "open_tag"},
	LeadingName: []string{"jsx_attribute"},
	Blocks: []string{
		"program",
		"statement_block",
		"class_body",
		"switch_body",
		"switch_case",
		"switch_default",
	},
	Statements: []string{"_statement", "_declaration"},
	Sequences: map[string][]string{
		"jsx_opening_element":        {"attribute"},
		"jsx_self_closing_element":   {"attribute"},
		"class_declaration":          {"decorator"},
		"class":                      {"decorator"},
		"abstract_class_declaration": {"decorator"},
		"switch_case":                {"body"},
		"switch_default":             {"body"},
		"class_body":                 {"member"},
	},
	Aliases: map[string][]string{
		"Property":                 {"pair", "shorthand_property_identifier", "method_definition"},
		"ObjectExpression":         {"object"},
		"ArrayExpression":          {"array"},
		"ArrowFunctionExpression":  {"arrow_function"},
		"FunctionExpression":       {"function_expression", "function"},
		"TemplateLiteral":          {"template_string"},
		"Literal":                  {"string", "number", "true", "false", "null", "regex"},
		"StringLiteral":            {"string"},
		"NumericLiteral":           {"number"},
		"VariableDeclaration":      {"lexical_declaration", "variable_declaration"},
		"ImportDeclaration":        {"import_statement"},
		"ExportNamedDeclaration":   {"export_statement"},
		"ExportDefaultDeclaration": {"export_statement"},
		"BlockStatement":           {"statement_block"},
		"ClassExpression":          {"class"},
		"PropertyDefinition":       {"public_field_definition", "field_definition"},
		"JSXElement":               {"jsx_element", "jsx_self_closing_element"},
		"JSXExpressionContainer":   {"jsx_expression"},
		"TSInterfaceDeclaration":   {"interface_declaration"},
		"TSTypeAliasDeclaration":   {"type_alias_declaration"},
		"TSTypeAnnotation":         {"type_annotation"},
		"TSEnumDeclaration":        {"enum_declaration"},
	},
}
