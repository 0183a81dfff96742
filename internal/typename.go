package internal

import (
	"fmt"
	"reflect"
	"strings"
)

// FullName returns the package qualified name of t, like
// "github.com/acme/app.Service" or "*github.com/acme/app.Service".
//
// Unnamed composite types are spelled out recursively so their element
// types are qualified as well. Everything else falls back to t.String().
func FullName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	if t.Name() != "" {
		// predeclared types: int, string, error...
		return t.String()
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + FullName(t.Elem())
	case reflect.Slice:
		return "[]" + FullName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), FullName(t.Elem()))
	case reflect.Map:
		return "map[" + FullName(t.Key()) + "]" + FullName(t.Elem())
	default:
		return t.String()
	}
}

func FullNames(types []reflect.Type) []string {
	return Map(types, FullName)
}

// GenericName splits an instantiated generic type into the full name of its
// open form and its type argument list, as reflect spells them.
//
//	Repository[github.com/acme/app.User]  -> "github.com/acme/app.Repository", "github.com/acme/app.User"
//	*SqlRepository[github.com/acme/app.User] -> "*github.com/acme/app.SqlRepository", "github.com/acme/app.User"
//
// ok is false when t is not an instantiated generic type.
func GenericName(t reflect.Type) (open string, arguments string, ok bool) {
	if t == nil {
		return "", "", false
	}

	if t.Kind() == reflect.Pointer && t.Name() == "" {
		open, arguments, ok = GenericName(t.Elem())
		if !ok {
			return "", "", false
		}
		return "*" + open, arguments, true
	}

	name := t.Name()
	bracket := strings.IndexByte(name, '[')
	if bracket <= 0 || !strings.HasSuffix(name, "]") {
		return "", "", false
	}

	return t.PkgPath() + "." + name[:bracket], name[bracket+1 : len(name)-1], true
}
