package internal

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/reflectwalk"
)

// CheckFinite walks any value (usually a *Scene) and fails on the first NaN or infinite float, naming the field
// path with YAML names when available (e.g. "hexagons.3.position.1").
// Remember that reflect is relatively slow: only run it when a scene is (re)loaded.
func CheckFinite(v interface{}) error {
	return reflectwalk.Walk(v, &finiteWalker{})
}

type finiteWalker struct {
	path    []string
	pending string // Name of the field/element about to be entered
}

func (w *finiteWalker) Enter(loc reflectwalk.Location) error {
	switch loc {
	case reflectwalk.StructField, reflectwalk.SliceElem, reflectwalk.ArrayElem:
		w.path = append(w.path, w.pending)
	default:
	}
	return nil
}

func (w *finiteWalker) Exit(loc reflectwalk.Location) error {
	switch loc {
	case reflectwalk.StructField, reflectwalk.SliceElem, reflectwalk.ArrayElem:
		w.path = w.path[:len(w.path)-1]
	default:
	}
	return nil
}

func (w *finiteWalker) Struct(_ reflect.Value) error {
	return nil
}

func (w *finiteWalker) StructField(field reflect.StructField, _ reflect.Value) error {
	if !field.IsExported() {
		return reflectwalk.SkipEntry
	}
	w.pending = field.Name
	if tag, _, _ := strings.Cut(field.Tag.Get("yaml"), ","); tag != "" && tag != "-" {
		w.pending = tag
	}
	return nil
}

func (w *finiteWalker) Slice(_ reflect.Value) error {
	return nil
}

func (w *finiteWalker) SliceElem(i int, _ reflect.Value) error {
	w.pending = strconv.Itoa(i)
	return nil
}

func (w *finiteWalker) Array(_ reflect.Value) error {
	return nil
}

func (w *finiteWalker) ArrayElem(i int, _ reflect.Value) error {
	w.pending = strconv.Itoa(i)
	return nil
}

func (w *finiteWalker) Primitive(v reflect.Value) error {
	if !v.IsValid() { // nil pointers
		return nil
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if f := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s: %v is not a finite number", strings.Join(w.path, "."), f)
		}
	default:
	}
	return nil
}
