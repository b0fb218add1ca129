package utils

import (
	"strings"
	"unicode"
)

// LeadingIdentifier extracts the leading identifier from a type expression,
// stopping at generic argument lists, member access, or any punctuation.
// "Dictionary<String, Int>" yields "Dictionary", "Foo.Bar" yields "Foo".
func LeadingIdentifier(typeText string) string {
	typeText = strings.TrimSpace(typeText)

	for i, r := range typeText {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return ""
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return typeText[:i]
		}
	}

	return typeText
}

// UpperFirst returns the string with its first rune upper-cased
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// LowerFirst returns the string with its first rune lower-cased
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// IsSwiftIdentifier reports whether the string is a plain Swift identifier
// (letters, digits, underscore, not starting with a digit)
func IsSwiftIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// reservedWords are Swift keywords that need backticks when used as a
// property name or referenced in an expression. Contextual keywords such
// as get, async, or any stay usable without escaping and are not listed.
var reservedWords = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true,
	"open": true, "operator": true, "private": true, "precedencegroup": true,
	"protocol": true, "public": true, "rethrows": true, "static": true,
	"struct": true, "subscript": true, "typealias": true, "var": true,
	"break": true, "case": true, "catch": true, "continue": true,
	"default": true, "defer": true, "do": true, "else": true,
	"fallthrough": true, "for": true, "guard": true, "if": true,
	"in": true, "repeat": true, "return": true, "switch": true,
	"throw": true, "where": true, "while": true,
	"as": true, "false": true, "is": true, "nil": true,
	"self": true, "Self": true, "super": true, "throws": true,
	"true": true, "try": true,
}

// IsReservedWord reports whether the identifier is a Swift keyword that
// must be backtick-escaped outside of argument label position
func IsReservedWord(s string) bool {
	return reservedWords[s]
}

// EscapeIdentifier wraps reserved words in backticks so they stay legal
// as property names and in expressions. Identifiers already escaped in
// the source pass through unchanged.
func EscapeIdentifier(s string) string {
	if IsReservedWord(s) {
		return "`" + s + "`"
	}
	return s
}
