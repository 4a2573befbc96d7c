package address

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// IPv4 is a 4-octet address stored big-endian.
type IPv4 [4]byte

var (
	IPv4Localhost = IPv4{127, 0, 0, 1}
	IPv4Broadcast = IPv4{255, 255, 255, 255}
)

// parseIPv4 is the single pipeline behind ParseIPv4 and ValidateIPv4.
//
// A trailing ":port" is tolerated and checked but not returned: the codec
// accepts the combined form so the host layer can probe candidate splits.
func parseIPv4(addressString string) (IPv4, error) {
	text := addressString
	if index := strings.IndexByte(text, ':'); index >= 0 {
		if _, err := ParsePort(text[index+1:]); err != nil {
			return IPv4{}, err
		}
		text = text[:index]
	}
	if strings.HasSuffix(text, ".") {
		return IPv4{}, newError(KindTrailingOrLeadingSeparator, addressString)
	}
	parts := strings.Split(text, ".")
	if len(parts) != 4 {
		return IPv4{}, newError(KindWrongGroupCount, addressString)
	}
	var addr IPv4
	for i, part := range parts {
		if part == "" || len(part) > 1 && part[0] == '0' {
			return IPv4{}, newError(KindNotANumber, addressString)
		}
		value, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			if numError, isNumError := err.(*strconv.NumError); isNumError && numError.Err == strconv.ErrRange {
				return IPv4{}, newError(KindOutOfRange, addressString)
			}
			return IPv4{}, newError(KindNotANumber, addressString)
		}
		if value > 255 {
			return IPv4{}, newError(KindOutOfRange, addressString)
		}
		addr[i] = byte(value)
	}
	return addr, nil
}

func ParseIPv4(addressString string) (IPv4, error) {
	return parseIPv4(addressString)
}

func ValidateIPv4(addressString string) bool {
	_, err := parseIPv4(addressString)
	return err == nil
}

// String renders the canonical dotted form, byte-identical to any canonical
// input the value was parsed from.
func (a IPv4) String() string {
	return strconv.Itoa(int(a[0])) + "." +
		strconv.Itoa(int(a[1])) + "." +
		strconv.Itoa(int(a[2])) + "." +
		strconv.Itoa(int(a[3]))
}

func (a IPv4) Uint32() uint32 {
	return binary.BigEndian.Uint32(a[:])
}

func IPv4FromUint32(value uint32) IPv4 {
	var addr IPv4
	binary.BigEndian.PutUint32(addr[:], value)
	return addr
}

func (a IPv4) IsLocalhost() bool {
	return a[0] == 127
}

func (a IPv4) IsPrivate() bool {
	switch {
	case a[0] == 10:
		return true
	case a[0] == 172 && a[1]&0xF0 == 16:
		return true
	case a[0] == 192 && a[1] == 168:
		return true
	}
	return false
}

func (a IPv4) IsMulticast() bool {
	return a[0] >= 224 && a[0] <= 239
}

func (a IPv4) IsBroadcast() bool {
	return a == IPv4Broadcast
}

// Network keeps the bits selected by mask, the classic subnet convention:
// a set mask bit is a network bit.
func (a IPv4) Network(mask IPv4) IPv4 {
	return IPv4FromUint32(a.Uint32() & mask.Uint32())
}

// Broadcast fills every host bit of the address under mask.
func (a IPv4) Broadcast(mask IPv4) IPv4 {
	return IPv4FromUint32(a.Uint32() | ^mask.Uint32())
}

// InRange reports whether a and other share a network under mask.
func (a IPv4) InRange(other IPv4, mask IPv4) bool {
	return a.Network(mask) == other.Network(mask)
}

// MapTo6 returns the IPv4-mapped IPv6 form ::ffff:a.b.c.d.
func (a IPv4) MapTo6() IPv6 {
	var addr IPv6
	addr[10] = 0xFF
	addr[11] = 0xFF
	copy(addr[12:], a[:])
	return addr
}

func (a IPv4) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *IPv4) UnmarshalText(text []byte) error {
	addr, err := parseIPv4(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
