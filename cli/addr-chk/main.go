package main

import (
	address "github.com/sagernet/sing-address"
	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	logrus.SetLevel(logrus.TraceLevel)
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func main() {
	command := &cobra.Command{
		Use:  "addr-chk [host]...",
		Args: cobra.MinimumNArgs(1),
		Run:  run,
	}
	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		if err := check(arg); err != nil {
			logrus.Fatal(err)
		}
	}
}

func check(hostString string) error {
	host, err := address.ParseHost(hostString)
	if err != nil {
		return E.Cause(err, "parse ", hostString)
	}
	addr := host.Addr()
	logrus.Info(hostString, " -> ", host.String(), " (", addr.Family(), ")")
	switch addr.Family() {
	case address.FamilyIPv4:
		addr4 := addr.IPv4()
		logrus.Info("integer form: ", addr4.Uint32())
		logrus.Info("localhost: ", addr4.IsLocalhost(), ", private: ", addr4.IsPrivate(), ", multicast: ", addr4.IsMulticast())
	case address.FamilyIPv6:
		addr6 := addr.IPv6()
		logrus.Info("raw form: ", addr6.RawString())
		logrus.Info("localhost: ", addr6.IsLocalhost(), ", multicast: ", addr6.IsMulticast(), ", link-local: ", addr6.IsLinkLocal())
		if mapped, isMapped := addr6.Unmap(); isMapped {
			logrus.Info("ipv4-mapped: ", mapped.String())
		}
	}
	if port, hasPort := host.Port(); hasPort {
		logrus.Info("port ", port, " (", port.Class(), ")")
	}
	return nil
}
