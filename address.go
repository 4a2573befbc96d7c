package address

import "strings"

// Addr is a closed variant over the two IP families. It is immutable,
// comparable, and equal to another Addr iff family and binary payload match.
// IPv4 payloads occupy the first four bytes; the rest stay zero so direct
// comparison remains well-defined.
type Addr struct {
	family Family
	bytes  [16]byte
}

func AddrFromIPv4(addr IPv4) Addr {
	a := Addr{family: FamilyIPv4}
	copy(a.bytes[:4], addr[:])
	return a
}

func AddrFromIPv6(addr IPv6) Addr {
	return Addr{family: FamilyIPv6, bytes: addr}
}

// DetectFamily classifies a candidate address text. IPv4 is probed first;
// the grammars are disjoint, so the order only decides which family rejects
// unparseable input.
func DetectFamily(addressString string) Family {
	if ValidateIPv4(addressString) {
		return FamilyIPv4
	}
	if ValidateIPv6(addressString) {
		return FamilyIPv6
	}
	return FamilyNone
}

func ParseAddr(addressString string) (Addr, error) {
	addr4, err4 := parseIPv4(addressString)
	if err4 == nil {
		return AddrFromIPv4(addr4), nil
	}
	addr6, err6 := parseIPv6(addressString)
	if err6 == nil {
		return AddrFromIPv6(addr6), nil
	}
	// both rejected: surface the error of the family the text resembles
	if strings.Contains(addressString, ".") && strings.Count(addressString, ":") <= 1 {
		return Addr{}, err4
	}
	return Addr{}, err6
}

func ValidateAddr(addressString string) bool {
	return DetectFamily(addressString).IsValid()
}

func (a Addr) Family() Family {
	return a.family
}

func (a Addr) IsValid() bool {
	return a.family.IsValid()
}

func (a Addr) IsIPv4() bool {
	return a.family.IsIPv4()
}

func (a Addr) IsIPv6() bool {
	return a.family.IsIPv6()
}

// IPv4 returns the IPv4 payload. Meaningful only when IsIPv4 reports true.
func (a Addr) IPv4() IPv4 {
	var addr IPv4
	copy(addr[:], a.bytes[:4])
	return addr
}

// IPv6 returns the IPv6 payload. Meaningful only when IsIPv6 reports true.
func (a Addr) IPv6() IPv6 {
	return IPv6(a.bytes)
}

// Bytes returns a copy of the binary payload, 4 or 16 bytes by family, nil
// for an invalid Addr.
func (a Addr) Bytes() []byte {
	switch a.family {
	case FamilyIPv4:
		addr := a.IPv4()
		return addr[:]
	case FamilyIPv6:
		addr := a.IPv6()
		return addr[:]
	default:
		return nil
	}
}

// String renders the canonical display form of the owning family, empty for
// an invalid Addr.
func (a Addr) String() string {
	switch a.family {
	case FamilyIPv4:
		return a.IPv4().String()
	case FamilyIPv6:
		return a.IPv6().String()
	default:
		return ""
	}
}

func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Addr) UnmarshalText(text []byte) error {
	addr, err := ParseAddr(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
