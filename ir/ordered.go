package ir

import (
	"fmt"
	"strings"
)

type named interface {
	Name() string
}

// ordered is an insertion-order preserving, case-insensitively keyed
// container. The sequence and the name index live in this one type so
// they can never disagree.
type ordered[T named] struct {
	seq []T
	idx map[string]T
}

func fold(name string) string { return strings.ToLower(name) }

func (o *ordered[T]) Len() int { return len(o.seq) }

func (o *ordered[T]) At(i int) T { return o.seq[i] }

func (o *ordered[T]) Get(name string) (T, bool) {
	v, ok := o.idx[fold(name)]
	return v, ok
}

func (o *ordered[T]) Has(name string) bool {
	_, ok := o.idx[fold(name)]
	return ok
}

func (o *ordered[T]) Add(v T) error {
	return o.Insert(len(o.seq), v)
}

func (o *ordered[T]) Insert(i int, v T) error {
	if i < 0 || i > len(o.seq) {
		return fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	key := fold(v.Name())
	if _, ok := o.idx[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, v.Name())
	}
	if o.idx == nil {
		o.idx = map[string]T{}
	}
	o.seq = append(o.seq[:i], append([]T{v}, o.seq[i:]...)...)
	o.idx[key] = v
	return nil
}

func (o *ordered[T]) IndexOf(name string) int {
	key := fold(name)
	for i, v := range o.seq {
		if fold(v.Name()) == key {
			return i
		}
	}
	return -1
}

func (o *ordered[T]) Remove(name string) bool {
	return o.RemoveAt(o.IndexOf(name))
}

func (o *ordered[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(o.seq) {
		return false
	}
	delete(o.idx, fold(o.seq[i].Name()))
	o.seq = append(o.seq[:i], o.seq[i+1:]...)
	return true
}

// Replace swaps the element with v's name for v, keeping its position.
// It reports whether a replacement happened.
func (o *ordered[T]) Replace(v T) bool {
	i := o.IndexOf(v.Name())
	if i < 0 {
		return false
	}
	delete(o.idx, fold(o.seq[i].Name()))
	o.seq[i] = v
	o.idx[fold(v.Name())] = v
	return true
}

func (o *ordered[T]) Clear() {
	o.seq = nil
	o.idx = nil
}

func (o *ordered[T]) Names() []string {
	ns := make([]string, len(o.seq))
	for i, v := range o.seq {
		ns[i] = v.Name()
	}
	return ns
}
