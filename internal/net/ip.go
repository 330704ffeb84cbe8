package net

import (
	"net"

	"go.uber.org/zap"
)

// OutgoingIP finds the local address other machines on the LAN can reach
// the mirror on.
func OutgoingIP(log *zap.Logger) string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route to the internet; look at the interfaces instead.
		return interfaceIP(log)
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

func interfaceIP(log *zap.Logger) string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Warn("listing interface addresses", zap.Error(err))
		return "127.0.0.1"
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	log.Warn("no non-loopback IPv4 address, mirror URL may be unreachable")
	return "127.0.0.1"
}
