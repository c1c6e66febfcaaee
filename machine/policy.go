package machine

import (
	"strings"
)

// Policy selects how the machine treats a data pointer outside the tape.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_FATAL = Policy(0) // fatal
	POLICY_WRAP  = Policy(1) // wrap
	POLICY_GROW  = Policy(2) // grow
)

// Valid returns true for a known policy.
func (p Policy) Valid() bool {
	return p >= POLICY_FATAL && p <= POLICY_GROW
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (p Policy, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p = POLICY_FATAL; p.Valid(); p++ {
		if p.String() == name {
			return
		}
	}

	p = POLICY_FATAL
	err = ErrPolicyName(name)
	return
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() (text []byte, err error) {
	if !p.Valid() {
		err = ErrPolicy
		return
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) (err error) {
	*p, err = ParsePolicy(string(text))
	return
}
