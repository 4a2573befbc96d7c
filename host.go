package address

import "strings"

// Host pairs an address with an optional port. It is immutable and
// comparable; WithPort and WithoutPort derive new values instead of
// mutating.
type Host struct {
	addr    Addr
	port    Port
	hasPort bool
}

func HostFrom(addr Addr) Host {
	return Host{addr: addr}
}

func HostFromAddrPort(addr Addr, port Port) Host {
	return Host{addr: addr, port: port, hasPort: true}
}

// ParseHost splits a combined address+port text and delegates the parts.
//
// A text containing brackets is handled as "[ipv6]" with an optional ":port"
// suffix. Otherwise the text splits on its last colon; the split only wins
// when the right side is a valid port and the left side is a valid address,
// so a bare compressed IPv6 such as "::1" still parses as an address with no
// port.
func ParseHost(hostString string) (Host, error) {
	if strings.ContainsAny(hostString, "[]") {
		return parseBracketedHost(hostString)
	}
	if index := strings.LastIndexByte(hostString, ':'); index >= 0 {
		addressPart, portPart := hostString[:index], hostString[index+1:]
		if ValidatePort(portPart) && ValidateAddr(addressPart) {
			addr, _ := ParseAddr(addressPart)
			port, _ := ParsePort(portPart)
			return HostFromAddrPort(addr, port), nil
		}
	}
	addr, err := ParseAddr(hostString)
	if err != nil {
		return Host{}, err
	}
	return HostFrom(addr), nil
}

func parseBracketedHost(hostString string) (Host, error) {
	if !strings.HasPrefix(hostString, "[") {
		return Host{}, newError(KindMalformedBracket, hostString)
	}
	closeIndex := strings.IndexByte(hostString, ']')
	if closeIndex < 0 {
		return Host{}, newError(KindMalformedBracket, hostString)
	}
	inner := hostString[1:closeIndex]
	suffix := hostString[closeIndex+1:]
	if strings.ContainsAny(inner, "[]") || strings.ContainsAny(suffix, "[]") {
		return Host{}, newError(KindMalformedBracket, hostString)
	}
	addr6, err := parseIPv6(inner)
	if err != nil {
		return Host{}, err
	}
	addr := AddrFromIPv6(addr6)
	if suffix == "" {
		return HostFrom(addr), nil
	}
	if suffix[0] != ':' {
		return Host{}, newError(KindMalformedBracket, hostString)
	}
	port, err := ParsePort(suffix[1:])
	if err != nil {
		return Host{}, err
	}
	return HostFromAddrPort(addr, port), nil
}

func ValidateHost(hostString string) bool {
	_, err := ParseHost(hostString)
	return err == nil
}

func (h Host) Addr() Addr {
	return h.addr
}

func (h Host) Port() (Port, bool) {
	return h.port, h.hasPort
}

func (h Host) IsValid() bool {
	return h.addr.IsValid()
}

func (h Host) WithPort(port Port) Host {
	return HostFromAddrPort(h.addr, port)
}

func (h Host) WithoutPort() Host {
	return HostFrom(h.addr)
}

// String renders "[addr]:port" for IPv6 with a port, "addr:port" for IPv4
// with a port, and the bare canonical address otherwise.
func (h Host) String() string {
	if !h.hasPort {
		return h.addr.String()
	}
	if h.addr.IsIPv6() {
		return "[" + h.addr.String() + "]:" + h.port.String()
	}
	return h.addr.String() + ":" + h.port.String()
}

func (h Host) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Host) UnmarshalText(text []byte) error {
	host, err := ParseHost(string(text))
	if err != nil {
		return err
	}
	*h = host
	return nil
}
