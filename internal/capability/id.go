package capability

import "strings"

// ID identifies one integration provider.
type ID string

const (
	Dialog         ID = "dialog"
	Opener         ID = "opener"
	Shell          ID = "shell"
	FS             ID = "fs"
	Log            ID = "log"
	Store          ID = "store"
	Notification   ID = "notification"
	SecureStorage  ID = "secure-storage"
	Biometric      ID = "biometric"
	SafeAreaInsets ID = "safe-area-insets"
	AndroidFS      ID = "android-fs"
)

// Set is an ordered, duplicate-free sequence of integrations. Order is the
// attach order.
type Set struct {
	ids []ID
}

// NewSet builds a Set, dropping repeated ids while keeping first occurrence.
func NewSet(ids ...ID) Set {
	seen := make(map[ID]bool, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return Set{ids: out}
}

// IDs returns a copy of the ids in attach order.
func (s Set) IDs() []ID {
	out := make([]ID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of integrations.
func (s Set) Len() int {
	return len(s.ids)
}

// Contains reports whether id is part of the set.
func (s Set) Contains(id ID) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every id in other is part of s.
func (s Set) ContainsAll(other Set) bool {
	for _, id := range other.ids {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same ids in the same order.
func (s Set) Equal(other Set) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

// Strings returns the ids as plain strings.
func (s Set) Strings() []string {
	out := make([]string, len(s.ids))
	for i, id := range s.ids {
		out[i] = string(id)
	}
	return out
}

func (s Set) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}
