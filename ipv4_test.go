package address_test

import (
	"net/netip"
	"testing"

	address "github.com/sagernet/sing-address"

	"github.com/stretchr/testify/require"
	"go4.org/netipx"
)

func TestParseIPv4(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		for addressString, expected := range map[string]address.IPv4{
			"0.0.0.0":         {0, 0, 0, 0},
			"127.0.0.1":       {127, 0, 0, 1},
			"10.0.200.3":      {10, 0, 200, 3},
			"192.168.1.1":     {192, 168, 1, 1},
			"255.255.255.255": {255, 255, 255, 255},
			"192.168.1.1:80":  {192, 168, 1, 1},
			"8.8.8.8:65535":   {8, 8, 8, 8},
		} {
			addr, err := address.ParseIPv4(addressString)
			require.NoError(t, err, addressString)
			require.Equal(t, expected, addr, addressString)
			require.True(t, address.ValidateIPv4(addressString), addressString)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for addressString, kind := range map[string]address.ErrorKind{
			"999.999.999.999": address.KindOutOfRange,
			"256.1.1.1":       address.KindOutOfRange,
			"192.168.1.1.1":   address.KindWrongGroupCount,
			"192.168.1":       address.KindWrongGroupCount,
			"192.168.1.1.":    address.KindTrailingOrLeadingSeparator,
			"01.2.3.4":        address.KindNotANumber,
			"1.2.3.04":        address.KindNotANumber,
			"1..2.3":          address.KindNotANumber,
			"a.b.c.d":         address.KindNotANumber,
			"":                address.KindWrongGroupCount,
			"192.168.1.1:":    address.KindNotANumber,
			"192.168.1.1:cat": address.KindNotANumber,
			"192.168.1.1:-1":  address.KindOutOfRange,
			"1.2.3.4:65536":   address.KindOutOfRange,
		} {
			_, err := address.ParseIPv4(addressString)
			requireKind(t, err, kind, addressString)
			require.False(t, address.ValidateIPv4(addressString), addressString)
		}
	})

	t.Run("zero octet is canonical", func(t *testing.T) {
		t.Parallel()
		addr, err := address.ParseIPv4("0.10.0.1")
		require.NoError(t, err)
		require.Equal(t, "0.10.0.1", addr.String())
	})
}

func TestIPv4Canonical(t *testing.T) {
	t.Parallel()
	for _, addressString := range []string{"0.0.0.0", "127.0.0.1", "10.20.30.40", "255.255.255.255"} {
		addr, err := address.ParseIPv4(addressString)
		require.NoError(t, err)
		require.Equal(t, addressString, addr.String())
		again, err := address.ParseIPv4(addr.String())
		require.NoError(t, err)
		require.Equal(t, addr, again)
	}
}

func TestIPv4Uint32(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint32(0xC0A80101), address.IPv4{192, 168, 1, 1}.Uint32())
	require.Equal(t, address.IPv4{192, 168, 1, 1}, address.IPv4FromUint32(0xC0A80101))

	for _, value := range []uint32{0, 1, 0x7F000001, 0x80000000, 0xFFFFFFFE, 0xFFFFFFFF} {
		require.Equal(t, value, address.IPv4FromUint32(value).Uint32())
	}
	// sampled sweep across the full domain
	for value := uint32(0); value < 0xFFFF0000; value += 0x10101 {
		require.Equal(t, value, address.IPv4FromUint32(value).Uint32())
	}
}

func TestIPv4Predicates(t *testing.T) {
	t.Parallel()
	require.True(t, address.IPv4{127, 0, 0, 1}.IsLocalhost())
	require.True(t, address.IPv4{127, 255, 0, 1}.IsLocalhost())
	require.False(t, address.IPv4{128, 0, 0, 1}.IsLocalhost())

	require.True(t, address.IPv4{10, 0, 0, 1}.IsPrivate())
	require.True(t, address.IPv4{172, 16, 0, 1}.IsPrivate())
	require.True(t, address.IPv4{172, 31, 255, 1}.IsPrivate())
	require.False(t, address.IPv4{172, 32, 0, 1}.IsPrivate())
	require.True(t, address.IPv4{192, 168, 44, 1}.IsPrivate())
	require.False(t, address.IPv4{192, 169, 0, 1}.IsPrivate())
	require.False(t, address.IPv4{8, 8, 8, 8}.IsPrivate())

	require.True(t, address.IPv4{224, 0, 0, 1}.IsMulticast())
	require.True(t, address.IPv4{239, 255, 255, 255}.IsMulticast())
	require.False(t, address.IPv4{240, 0, 0, 1}.IsMulticast())
	require.False(t, address.IPv4{223, 0, 0, 1}.IsMulticast())

	require.True(t, address.IPv4Broadcast.IsBroadcast())
	require.False(t, address.IPv4{255, 255, 255, 254}.IsBroadcast())
}

func TestIPv4MaskOps(t *testing.T) {
	t.Parallel()
	addr := address.IPv4{192, 168, 44, 77}
	mask := address.IPv4{255, 255, 255, 0}

	require.Equal(t, address.IPv4{192, 168, 44, 0}, addr.Network(mask))
	require.Equal(t, address.IPv4{192, 168, 44, 255}, addr.Broadcast(mask))
	require.True(t, addr.InRange(address.IPv4{192, 168, 44, 1}, mask))
	require.False(t, addr.InRange(address.IPv4{192, 168, 45, 1}, mask))

	t.Run("cross-check against netipx", func(t *testing.T) {
		t.Parallel()
		for addressString, bits := range map[string]int{
			"10.20.30.40":  12,
			"192.168.44.7": 24,
			"172.16.5.9":   20,
			"8.8.8.8":      8,
		} {
			addr, err := address.ParseIPv4(addressString)
			require.NoError(t, err)
			mask := address.IPv4FromUint32(^uint32(0) << (32 - bits))
			prefix, err := netip.MustParseAddr(addressString).Prefix(bits)
			require.NoError(t, err)
			ipRange := netipx.RangeOfPrefix(prefix)
			require.Equal(t, ipRange.From().As4(), [4]byte(addr.Network(mask)), addressString)
			require.Equal(t, ipRange.To().As4(), [4]byte(addr.Broadcast(mask)), addressString)
		}
	})
}

func TestIPv4MappedRoundTrip(t *testing.T) {
	t.Parallel()
	for _, addr := range []address.IPv4{
		{0, 0, 0, 0},
		{127, 0, 0, 1},
		{192, 168, 1, 1},
		{255, 255, 255, 255},
	} {
		mapped := addr.MapTo6()
		require.True(t, mapped.Is4Mapped())
		unmapped, isMapped := mapped.Unmap()
		require.True(t, isMapped)
		require.Equal(t, addr, unmapped)
	}
	_, isMapped := address.IPv6Localhost.Unmap()
	require.False(t, isMapped)
}
