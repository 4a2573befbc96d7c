package address

import "strconv"

// Port is a 16-bit transport port. The full range [0, 65535] is accepted,
// 65535 included.
type Port uint16

type PortClass uint8

const (
	PortWellKnown PortClass = iota
	PortRegistered
	PortDynamic
	PortUnknown
)

func (c PortClass) String() string {
	switch c {
	case PortWellKnown:
		return "well-known"
	case PortRegistered:
		return "registered"
	case PortDynamic:
		return "dynamic/private"
	default:
		return "unknown"
	}
}

func ParsePort(portString string) (Port, error) {
	value, err := strconv.ParseInt(portString, 10, 64)
	if err != nil {
		if numError, isNumError := err.(*strconv.NumError); isNumError && numError.Err == strconv.ErrRange {
			return 0, newError(KindOutOfRange, portString)
		}
		return 0, newError(KindNotANumber, portString)
	}
	if value < 0 || value > 65535 {
		return 0, newError(KindOutOfRange, portString)
	}
	return Port(value), nil
}

func ValidatePort(portString string) bool {
	_, err := ParsePort(portString)
	return err == nil
}

// Class places the port in its IANA range. PortUnknown is unreachable while
// the three ranges stay contiguous over the full 16-bit domain.
func (p Port) Class() PortClass {
	switch {
	case p <= 1023:
		return PortWellKnown
	case p <= 49151:
		return PortRegistered
	default:
		return PortDynamic
	}
}

func (p Port) String() string {
	return strconv.Itoa(int(p))
}

func (p Port) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Port) UnmarshalText(text []byte) error {
	port, err := ParsePort(string(text))
	if err != nil {
		return err
	}
	*p = port
	return nil
}
