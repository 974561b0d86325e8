package template

import (
	"reflect"
	"runtime"
	"strings"
)

// Identity names an element type for template lookup.
type Identity struct {
	// Name is the fully qualified type name, e.g. "github.com/acme/ui/widgets.Card".
	Name string
	// Source is the type's source file, used when no Locator knows Name.
	Source string
}

// ShortName returns the type name without its package path.
func (id Identity) ShortName() string {
	name := id.Name
	if i := strings.LastIndexAny(name, "./"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (id Identity) String() string { return id.Name }

// IdentityOf derives an Identity from the dynamic type of v. Pointer types are
// dereferenced. Source is left empty.
func IdentityOf(v any) Identity {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return Identity{}
	}
	if t.PkgPath() == "" {
		return Identity{Name: t.Name()}
	}
	return Identity{Name: t.PkgPath() + "." + t.Name()}
}

// Here returns an Identity named name whose Source is the file of the caller.
// Element constructors call it so templates can sit next to their Go source:
//
//	var cardIdentity = template.Here("widgets.Card")
func Here(name string) Identity {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return Identity{Name: name}
	}
	return Identity{Name: name, Source: file}
}
