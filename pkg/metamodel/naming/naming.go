// Package naming implements the naming conventions used to
// relate support methods to the members they support.
//
// Convention prefixes are matched case-normalized on their first
// character, so that exported Go method names (ValidatePlaceOrder)
// and lower case declared names (validatePlaceOrder) are treated
// identically. A prefix only matches if it is followed by an upper
// case letter or a digit.
package naming

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	Get        = "get"
	Set        = "set"
	Clear      = "clear"
	AddTo      = "addTo"
	RemoveFrom = "removeFrom"

	Validate     = "validate"
	Default      = "default"
	Choices      = "choices"
	AutoComplete = "autoComplete"
	Hide         = "hide"
	Disable      = "disable"
	AlwaysHide   = "alwaysHide"
	Protect      = "protect"
	Name         = "name"
	Description  = "description"

	Debug       = "debug"
	Exploration = "exploration"

	Title = "title"
)

// SupportPrefixes are the prefixes of methods supporting
// other members.
var SupportPrefixes = []string{
	Set, Clear, AddTo, RemoveFrom,
	Validate, Default, Choices, AutoComplete,
	AlwaysHide, Hide, Disable, Protect,
	Name, Description,
}

// MarkerPrefixes are prefixes of action names marking
// the action itself.
var MarkerPrefixes = []string{Debug, Exploration}

func Capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func Decapitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// HasPrefix checks whether the name starts with the given
// convention prefix.
func HasPrefix(name, prefix string) bool {
	if len(prefix) == 0 || len(name) <= len(prefix) {
		return false
	}
	if Decapitalize(name[:len(prefix)]) != Decapitalize(prefix) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[len(prefix):])
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

// TrimPrefix removes a convention prefix. The result
// is the unchanged name, if the prefix does not match.
func TrimPrefix(name, prefix string) (string, bool) {
	if !HasPrefix(name, prefix) {
		return name, false
	}
	return name[len(prefix):], true
}

// MatchPrefix returns the first matching prefix.
func MatchPrefix(name string, prefixes ...string) (string, bool) {
	for _, p := range prefixes {
		if HasPrefix(name, p) {
			return p, true
		}
	}
	return "", false
}

// IsSupportMethod checks for names carrying a support prefix.
func IsSupportMethod(name string) bool {
	_, ok := MatchPrefix(name, SupportPrefixes...)
	return ok
}

// SupportName composes the name of a support method for a member.
// The case of the first character follows the member name.
// An optional parameter number is placed between prefix and member
// name (default0PlaceOrder).
func SupportName(prefix, member string, param ...int) string {
	r, _ := utf8.DecodeRuneInString(member)
	if unicode.IsUpper(r) {
		prefix = Capitalize(prefix)
	} else {
		prefix = Decapitalize(prefix)
	}
	if len(param) > 0 {
		prefix += strconv.Itoa(param[0])
	}
	return prefix + Capitalize(member)
}

// MemberName composes the name of a member for an accessor
// and mutator name tail (Name -> name for declared names, Name
// for exported Go names).
func MemberName(method, tail string) string {
	r, _ := utf8.DecodeRuneInString(method)
	if unicode.IsUpper(r) {
		return Capitalize(tail)
	}
	return Decapitalize(tail)
}

// NumberedTail splits the tail following a prefix into a parameter
// number and the member part (default0PlaceOrder -> 0, PlaceOrder).
func NumberedTail(name, prefix string) (int, string, bool) {
	tail, ok := TrimPrefix(name, prefix)
	if !ok {
		return 0, "", false
	}
	i := 0
	for i < len(tail) && tail[i] >= '0' && tail[i] <= '9' {
		i++
	}
	if i == 0 || i == len(tail) {
		return 0, "", false
	}
	n, err := strconv.Atoi(tail[:i])
	if err != nil {
		return 0, "", false
	}
	return n, tail[i:], true
}

// StripMarker removes a leading marker prefix from an action name.
// Only the first marker is considered.
func StripMarker(name string) (string, string) {
	for _, m := range MarkerPrefixes {
		if tail, ok := TrimPrefix(name, m); ok {
			return m, tail
		}
	}
	return "", name
}

// Humanize converts a method or type name into a natural
// name (anActionWithDebugPrefix -> An Action With Debug Prefix).
func Humanize(name string) string {
	runes := []rune(strings.ReplaceAll(name, "_", " "))
	var b strings.Builder
	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		prev := runes[i-1]
		space := false
		switch {
		case r == ' ' || prev == ' ':
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			space = true
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			space = true
		case unicode.IsDigit(r) && !unicode.IsDigit(prev):
			space = true
		}
		if space {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Pluralize provides a plural for a natural name.
func Pluralize(name string) string {
	switch {
	case name == "":
		return name
	case strings.HasSuffix(name, "y") && len(name) > 1 && !strings.ContainsRune("aeiou", rune(name[len(name)-2])):
		return name[:len(name)-1] + "ies"
	case strings.HasSuffix(name, "s"), strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "ch"), strings.HasSuffix(name, "sh"):
		return name + "es"
	default:
		return name + "s"
	}
}
