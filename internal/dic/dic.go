//nolint:ireturn
package dic

import (
	"reflect"

	"github.com/pkg/errors"
)

var services = make(map[string]any) //nolint:gochecknoglobals

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func GetService[T any]() T {
	service, exist := LookupService[T]()
	if !exist {
		panic(errors.Errorf("service %s does not exist", typeName[T]()))
	}
	return service
}

// LookupService is GetService without the panic, for optional services.
func LookupService[T any]() (T, bool) {
	service, exist := services[typeName[T]()]
	if !exist {
		var zero T
		return zero, false
	}
	return service.(T), true //nolint:forcetypeassert
}

// Register keeps the first implementation registered for a type, so tests can
// override services before the container is built.
func Register[T any](implementation T) error {
	if _, exist := services[typeName[T]()]; exist {
		return nil
	}
	services[typeName[T]()] = implementation
	return nil
}

func ResetContainer() {
	services = make(map[string]interface{}, len(services))
}
