// Package rdns resolves reverse DNS (PTR) hostnames for IP addresses
// against a configurable nameserver.
package rdns

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_rdns/client.go . Client

// Client is the DNS exchange client used by the resolver, satisfied
// by *dns.Client.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}

type Resolver struct {
	client     Client
	nameserver string
}

func New(settings Settings) *Resolver {
	settings.SetDefaults()
	return &Resolver{
		client: &dns.Client{
			Timeout: settings.Timeout,
		},
		nameserver: *settings.Nameserver,
	}
}

var (
	ErrNoPTRRecord = errors.New("no PTR record found")
	ErrBadRcode    = errors.New("bad response code received")
)

// Lookup returns the PTR hostname for the given address, without the
// trailing dot.
func (r *Resolver) Lookup(ctx context.Context, address netip.Addr) (
	hostname string, err error) {
	arpa, err := dns.ReverseAddr(address.String())
	if err != nil {
		return "", fmt.Errorf("reversing address: %w", err)
	}

	message := new(dns.Msg).SetQuestion(arpa, dns.TypePTR)

	response, _, err := r.client.ExchangeContext(ctx, message, r.nameserver)
	if err != nil {
		return "", fmt.Errorf("exchanging DNS message: %w", err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return "", fmt.Errorf("%w: %s",
			ErrBadRcode, dns.RcodeToString[response.Rcode])
	}

	for _, answer := range response.Answer {
		ptr, ok := answer.(*dns.PTR)
		if !ok {
			continue
		}
		return strings.TrimSuffix(ptr.Ptr, "."), nil
	}

	return "", fmt.Errorf("%w: for %s", ErrNoPTRRecord, address)
}
