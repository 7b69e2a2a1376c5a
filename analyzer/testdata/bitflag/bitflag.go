package bitflag

type Mode uint8

const (
	ModeRead Mode = 1 << iota
	ModeWrite
	ModeAppend
	ModeTruncate
)

type Perm uint16

const (
	PermNone  Perm = 0
	PermRead  Perm = 1
	PermWrite Perm = 2
	PermExec  Perm = 4
	PermAll   Perm = 7
	PermOwner Perm = 11 // want `Bit flag constant 'PermOwner' has value 0xb, which is not a power of two or a combination of other flags`
)

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Untyped groups are not analyzed.
const (
	flagA = 1 << iota
	flagB
	flagC
)
