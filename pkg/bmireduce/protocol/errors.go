package protocol

import "errors"

var (
	ErrShortRecord         = errors.New("short partial record")
	ErrCorruptRecord       = errors.New("corrupt partial record")
	ErrIncompatibleVersion = errors.New("incompatible version")
)
