package workq

import (
	"reflect"

	"github.com/pkg/errors"
)

// seenSet records the keys of every item accepted by a unique Queue.
type seenSet[T any] interface {
	// insert records item's key. It reports false when the key was already
	// present and leaves the set untouched on error.
	insert(item T) (bool, error)
	contains(item T) (bool, error)
}

type keyedSet[T any, K comparable] struct {
	key  func(T) (K, error)
	keys map[K]struct{}
	// check is set when K may hold a dynamic value that panics as a map key.
	check bool
}

func newKeyedSet[T any, K comparable](key func(T) (K, error)) *keyedSet[T, K] {
	return &keyedSet[T, K]{
		key:   key,
		keys:  make(map[K]struct{}),
		check: mayPanicAsKey(reflect.TypeFor[K]()),
	}
}

func (s *keyedSet[T, K]) keyOf(item T) (K, error) {
	k, err := s.key(item)
	if err != nil {
		return k, err
	}
	if s.check && !hashable(reflect.ValueOf(&k).Elem()) {
		return k, errors.Wrapf(ErrUnhashable, "key of type %T", any(k))
	}
	return k, nil
}

func (s *keyedSet[T, K]) insert(item T) (bool, error) {
	k, err := s.keyOf(item)
	if err != nil {
		return false, err
	}
	if _, exists := s.keys[k]; exists {
		return false, nil
	}
	s.keys[k] = struct{}{}
	return true, nil
}

func (s *keyedSet[T, K]) contains(item T) (bool, error) {
	k, err := s.keyOf(item)
	if err != nil {
		return false, err
	}
	_, ok := s.keys[k]
	return ok, nil
}

// mayPanicAsKey reports whether a value of the comparable type t can still
// hold an incomparable dynamic value somewhere inside it.
func mayPanicAsKey(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && mayPanicAsKey(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mayPanicAsKey(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// hashable reports whether v can be used as a map key without panicking.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}
