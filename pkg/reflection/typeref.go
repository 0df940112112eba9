package reflection

import (
	"reflect"
	"strings"

	"github.com/mandelsoft/facets/pkg/applib"
	"github.com/mandelsoft/facets/pkg/utils"
)

// Kind classifies types as far as the naming conventions care.
type Kind string

const (
	KindVoid       Kind = "void"
	KindBool       Kind = "bool"
	KindString     Kind = "string"
	KindNumber     Kind = "number"
	KindCollection Kind = "collection"
	KindObject     Kind = "object"
	KindUser       Kind = "user"
	KindOther      Kind = "other"
)

type TypeRef struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

var Void = TypeRef{Name: "void", Kind: KindVoid}

func (t TypeRef) String() string {
	return t.Name
}

func (t TypeRef) IsVoid() bool {
	return t.Kind == KindVoid || t.Kind == ""
}

var userType = utils.TypeOf[applib.User]()

// TypeRefFor maps a Go type to a type reference.
func TypeRefFor(t reflect.Type) TypeRef {
	if t == nil {
		return Void
	}
	ref := TypeRef{Name: t.String()}
	switch t.Kind() {
	case reflect.Bool:
		ref.Kind = KindBool
	case reflect.String:
		ref.Kind = KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		ref.Kind = KindNumber
	case reflect.Slice, reflect.Array, reflect.Map:
		ref.Kind = KindCollection
	case reflect.Struct, reflect.Interface:
		ref.Kind = KindObject
	case reflect.Pointer:
		ref.Kind = KindObject
		t = t.Elem()
	default:
		ref.Kind = KindOther
	}
	if t == userType {
		ref.Kind = KindUser
	}
	return ref
}

var kindsByName = map[string]Kind{
	"":        KindVoid,
	"void":    KindVoid,
	"bool":    KindBool,
	"string":  KindString,
	"int":     KindNumber,
	"int8":    KindNumber,
	"int16":   KindNumber,
	"int32":   KindNumber,
	"int64":   KindNumber,
	"uint":    KindNumber,
	"uint8":   KindNumber,
	"uint16":  KindNumber,
	"uint32":  KindNumber,
	"uint64":  KindNumber,
	"float32": KindNumber,
	"float64": KindNumber,
	"user":    KindUser,
}

// ParseTypeRef parses a textual type reference as used by
// declarative class documents. Slices, arrays and maps are
// collections, known scalar names map to their kinds, "user"
// and applib.User denote the session user and everything else
// denotes an object type.
func ParseTypeRef(s string) TypeRef {
	s = strings.TrimSpace(s)
	if k, ok := kindsByName[s]; ok {
		if k == KindVoid {
			return Void
		}
		return TypeRef{Name: s, Kind: k}
	}
	name := strings.TrimPrefix(s, "*")
	switch {
	case strings.HasPrefix(s, "[") || strings.HasPrefix(s, "map["):
		return TypeRef{Name: s, Kind: KindCollection}
	case name == userType.String():
		return TypeRef{Name: s, Kind: KindUser}
	}
	return TypeRef{Name: s, Kind: KindObject}
}
