package address

// Family tags the variant carried by an Addr. The zero value is FamilyNone
// so a zero Addr is invalid rather than a spurious IPv4.
type Family byte

const (
	FamilyNone Family = iota
	FamilyIPv4
	FamilyIPv6
)

func (f Family) IsIPv4() bool {
	return f == FamilyIPv4
}

func (f Family) IsIPv6() bool {
	return f == FamilyIPv6
}

func (f Family) IsValid() bool {
	return f == FamilyIPv4 || f == FamilyIPv6
}

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "none"
	}
}
