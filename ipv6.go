package address

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// IPv6 is a 16-byte address stored big-endian, eight 16-bit groups always
// fully materialized. Zero compression only exists in the textual forms.
type IPv6 [16]byte

var IPv6Localhost = IPv6{15: 1}

const hexDigits = "0123456789abcdef"

// expandElision rewrites the single "::" token of an IPv6 text into the zero
// groups it stands for, returning a fully expanded colon-separated string
// ready for an 8-way split.
//
// The token count is checked textually before any substitution: inferring it
// from group counts alone cannot distinguish "1::2::3" from a short address.
func expandElision(text string) (string, error) {
	switch strings.Count(text, "::") {
	case 0:
		if strings.HasPrefix(text, ":") || strings.HasSuffix(text, ":") {
			return "", newError(KindTrailingOrLeadingSeparator, text)
		}
		return text, nil
	case 1:
	default:
		return "", newError(KindAmbiguousCompression, text)
	}
	// ":::" hides a second overlapping token from the count above.
	if strings.Contains(text, ":::") {
		return "", newError(KindAmbiguousCompression, text)
	}
	index := strings.Index(text, "::")
	left, right := text[:index], text[index+2:]
	if strings.HasPrefix(left, ":") || strings.HasSuffix(right, ":") {
		return "", newError(KindTrailingOrLeadingSeparator, text)
	}
	var explicit []string
	if left != "" {
		explicit = strings.Split(left, ":")
	}
	var trailing []string
	if right != "" {
		trailing = strings.Split(right, ":")
	}
	missing := 8 - len(explicit) - len(trailing)
	if missing < 1 {
		return "", newError(KindWrongGroupCount, text)
	}
	groups := make([]string, 0, 8)
	groups = append(groups, explicit...)
	for i := 0; i < missing; i++ {
		groups = append(groups, "0")
	}
	groups = append(groups, trailing...)
	return strings.Join(groups, ":"), nil
}

// parseIPv6 is the single pipeline behind ParseIPv6 and ValidateIPv6.
//
// Accepts the bare colon-hex form and the bracket-wrapped form with an
// optional ":port" suffix, which is checked and discarded.
func parseIPv6(addressString string) (IPv6, error) {
	text := addressString
	if strings.HasPrefix(text, "[") {
		text = text[1:]
		closeIndex := strings.IndexByte(text, ']')
		if closeIndex < 0 {
			return IPv6{}, newError(KindMalformedBracket, addressString)
		}
		suffix := text[closeIndex+1:]
		if strings.ContainsAny(suffix, "[]") {
			return IPv6{}, newError(KindMalformedBracket, addressString)
		}
		if suffix != "" {
			if suffix[0] != ':' {
				return IPv6{}, newError(KindMalformedBracket, addressString)
			}
			if _, err := ParsePort(suffix[1:]); err != nil {
				return IPv6{}, err
			}
		}
		text = text[:closeIndex]
	} else if strings.ContainsAny(text, "[]") {
		return IPv6{}, newError(KindMalformedBracket, addressString)
	}
	if text == "" {
		return IPv6{}, newError(KindWrongGroupCount, addressString)
	}
	expanded, err := expandElision(text)
	if err != nil {
		return IPv6{}, err
	}
	parts := strings.Split(expanded, ":")
	if len(parts) != 8 {
		return IPv6{}, newError(KindWrongGroupCount, addressString)
	}
	var addr IPv6
	for i, part := range parts {
		if part == "" {
			return IPv6{}, newError(KindTrailingOrLeadingSeparator, addressString)
		}
		if len(part) > 4 {
			return IPv6{}, newError(KindOutOfRange, addressString)
		}
		value, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return IPv6{}, newError(KindNotANumber, addressString)
		}
		binary.BigEndian.PutUint16(addr[i*2:], uint16(value))
	}
	return addr, nil
}

func ParseIPv6(addressString string) (IPv6, error) {
	return parseIPv6(addressString)
}

func ValidateIPv6(addressString string) bool {
	_, err := parseIPv6(addressString)
	return err == nil
}

// String renders the compressed canonical form: lowercase hex groups without
// leading zeros, with the first run of one or more zero groups collapsed to
// "::". A single zero group is still collapsed; re-parsing stays exact either
// way, so the historic rule is kept over the RFC 5952 longest-run rule.
func (a IPv6) String() string {
	groups := a.Groups()
	runStart, runEnd := -1, -1
	for i := 0; i < 8; i++ {
		if groups[i] == 0 {
			runStart = i
			runEnd = i + 1
			for runEnd < 8 && groups[runEnd] == 0 {
				runEnd++
			}
			break
		}
	}
	var builder strings.Builder
	builder.Grow(39)
	if runStart < 0 {
		for i := 0; i < 8; i++ {
			if i > 0 {
				builder.WriteByte(':')
			}
			builder.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
		}
		return builder.String()
	}
	for i := 0; i < runStart; i++ {
		if i > 0 {
			builder.WriteByte(':')
		}
		builder.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
	builder.WriteString("::")
	for i := runEnd; i < 8; i++ {
		if i > runEnd {
			builder.WriteByte(':')
		}
		builder.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
	return builder.String()
}

// RawString renders all eight groups as zero-padded 4-digit hex, never
// compressed. The result is unique per value regardless of compression
// policy.
func (a IPv6) RawString() string {
	var builder strings.Builder
	builder.Grow(39)
	for i := 0; i < 8; i++ {
		if i > 0 {
			builder.WriteByte(':')
		}
		group := a.Group(i)
		builder.WriteByte(hexDigits[group>>12])
		builder.WriteByte(hexDigits[group>>8&0xF])
		builder.WriteByte(hexDigits[group>>4&0xF])
		builder.WriteByte(hexDigits[group&0xF])
	}
	return builder.String()
}

func (a IPv6) Group(index int) uint16 {
	return binary.BigEndian.Uint16(a[index*2:])
}

func (a IPv6) Groups() [8]uint16 {
	var groups [8]uint16
	for i := range groups {
		groups[i] = binary.BigEndian.Uint16(a[i*2:])
	}
	return groups
}

func IPv6FromGroups(groups [8]uint16) IPv6 {
	var addr IPv6
	for i, group := range groups {
		binary.BigEndian.PutUint16(addr[i*2:], group)
	}
	return addr
}

// Uint64Pair packs groups 0-3 into the high half and groups 4-7 into the low
// half, both big-endian.
func (a IPv6) Uint64Pair() (high uint64, low uint64) {
	return binary.BigEndian.Uint64(a[:8]), binary.BigEndian.Uint64(a[8:])
}

func IPv6FromUint64Pair(high uint64, low uint64) IPv6 {
	var addr IPv6
	binary.BigEndian.PutUint64(addr[:8], high)
	binary.BigEndian.PutUint64(addr[8:], low)
	return addr
}

func (a IPv6) IsLocalhost() bool {
	return a == IPv6Localhost
}

func (a IPv6) IsMulticast() bool {
	return a[0] == 0xFF
}

func (a IPv6) IsLinkLocal() bool {
	return a[0] == 0xFE && a[1]&0xC0 == 0x80
}

// Is4Mapped reports whether the value lies in ::ffff:0:0/96.
func (a IPv6) Is4Mapped() bool {
	for i := 0; i < 10; i++ {
		if a[i] != 0 {
			return false
		}
	}
	return a[10] == 0xFF && a[11] == 0xFF
}

// Unmap extracts the IPv4 value from an IPv4-mapped address.
func (a IPv6) Unmap() (IPv4, bool) {
	if !a.Is4Mapped() {
		return IPv4{}, false
	}
	var addr IPv4
	copy(addr[:], a[12:])
	return addr, true
}

func (a IPv6) Network(mask IPv6) IPv6 {
	var network IPv6
	for i := range a {
		network[i] = a[i] & mask[i]
	}
	return network
}

func (a IPv6) Broadcast(mask IPv6) IPv6 {
	var broadcast IPv6
	for i := range a {
		broadcast[i] = a[i] | ^mask[i]
	}
	return broadcast
}

func (a IPv6) InRange(other IPv6, mask IPv6) bool {
	return a.Network(mask) == other.Network(mask)
}

func (a IPv6) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *IPv6) UnmarshalText(text []byte) error {
	addr, err := parseIPv6(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
