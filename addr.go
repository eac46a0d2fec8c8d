package sctp

import (
	"net"
	"strconv"
	"strings"
)

// SCTPAddr represents the address of one SCTP endpoint interface: a
// single IP, a port and an optional IPv6 zone. Multi-homed endpoints
// are expressed as address lists passed to the X constructor variants,
// not as a compound address value.
type SCTPAddr struct {
	IP   net.IP
	Port int
	Zone string // IPv6 scoped addressing zone
}

func (a *SCTPAddr) Network() string { return "sctp" }

func (a *SCTPAddr) String() string {
	if a == nil {
		return "<nil>"
	}
	ip := ""
	if len(a.IP) > 0 {
		ip = a.IP.String()
	}
	if a.Zone != "" {
		return net.JoinHostPort(ip+"%"+a.Zone, strconv.Itoa(a.Port))
	}
	return net.JoinHostPort(ip, strconv.Itoa(a.Port))
}

func (a *SCTPAddr) family() int {
	if a == nil || len(a.IP) <= net.IPv4len || a.IP.To4() != nil {
		return afInet
	}
	return afInet6
}

func (a *SCTPAddr) opAddr() net.Addr {
	if a == nil {
		return nil
	}
	return a
}

// familyOf picks the socket family for an address list: AF_INET6 as
// soon as any address needs it, AF_INET otherwise.
func familyOf(addrs []SCTPAddr) int {
	for i := range addrs {
		if addrs[i].family() == afInet6 {
			return afInet6
		}
	}
	return afInet
}

// ResolveSCTPAddr returns an address of an SCTP endpoint. The network
// must be an SCTP network name ("sctp", "sctp4", "sctp6") and the
// address has the usual host:port form, where host may be a literal IP,
// a host name resolved through the system resolver, or empty for the
// wildcard address.
func ResolveSCTPAddr(network, address string) (*SCTPAddr, error) {
	switch network {
	case "sctp", "sctp4", "sctp6":
	case "": // a hint wildcard for Go 1.0 undocumented behavior
		network = "sctp"
	default:
		return nil, &OpError{Op: "resolve", Kind: ErrInvalidInput, Err: net.UnknownNetworkError(network)}
	}
	// The host:port syntax and resolver behavior are exactly TCP's, so
	// lean on the TCP resolver and rewrap.
	tcpAddr, err := net.ResolveTCPAddr(strings.Replace(network, "sctp", "tcp", 1), address)
	if err != nil {
		return nil, &OpError{Op: "resolve", Kind: ErrInvalidInput, Err: err}
	}
	return &SCTPAddr{IP: tcpAddr.IP, Port: tcpAddr.Port, Zone: tcpAddr.Zone}, nil
}

// resolveAddrList resolves a list of host:port strings for the multi-homed
// constructors. An empty list is rejected before touching the resolver.
func resolveAddrList(op string, addresses []string) ([]SCTPAddr, error) {
	if len(addresses) == 0 {
		return nil, argError(op, nil, ErrInvalidInput, "empty address list")
	}
	addrs := make([]SCTPAddr, 0, len(addresses))
	for _, address := range addresses {
		a, err := ResolveSCTPAddr("sctp", address)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, *a)
	}
	return addrs, nil
}
