package pkg

import (
	"golang.org/x/sys/unix"
)

type PrivilegeChecker interface {
	IsPrivileged() bool
}

// EffectiveUID accepts only effective uid 0. There is no way to request elevation.
type EffectiveUID struct{}

func (EffectiveUID) IsPrivileged() bool {
	return unix.Geteuid() == 0
}
