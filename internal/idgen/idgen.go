// Package idgen produces item identifiers for the store.
package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Func returns an id that no live item uses yet.
type Func func() model.ID

// UUID returns random v4 UUIDs.
func UUID() Func {
	return func() model.ID { return model.ID(uuid.NewString()) }
}

// Sequence returns "<prefix>-1", "<prefix>-2", ... Not safe for concurrent use.
func Sequence(prefix string) Func {
	n := 0
	return func() model.ID {
		n++
		return model.ID(fmt.Sprintf("%s-%d", prefix, n))
	}
}

// ByName maps a strategy name ("uuid", "seq") to a generator.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uuid":
		return UUID(), nil
	case "seq", "sequence":
		return Sequence("item"), nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", name)
}
