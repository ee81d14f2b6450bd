package server

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/mdns"
)

// serviceType is the mDNS service boards are announced under.
const serviceType = "_sketchwall._tcp"

// advertise announces this instance on the local network so clients
// can find the board server without knowing its address. The returned
// function stops the announcement.
func advertise(name string, port int) (func(), error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("get hostname: %w", err)
	}
	if name == "" {
		name = host
	}

	service, err := mdns.NewMDNSService(
		name,        // instance name
		serviceType, // service type
		"",          // domain, defaults to .local
		"",          // hostname, defaults to the OS hostname
		port,
		nil, // IPs, auto-detected
		[]string{"sketchwall board server"},
	)
	if err != nil {
		return nil, fmt.Errorf("create mdns service: %w", err)
	}

	srv, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("start mdns server: %w", err)
	}
	return func() { _ = srv.Shutdown() }, nil
}

// Browse looks up sketchwall servers on the local network and invokes
// found with the instance name and host:port of each server discovered.
// It returns when the underlying query completes.
func Browse(found func(instance, addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(instanceName(e.Name), fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()

	// Lookup never closes the channel itself.
	err := mdns.Lookup(serviceType, entries)
	close(entries)
	<-done
	return err
}

// instanceName strips the service type and domain suffix from a
// discovered entry name, leaving the human-readable instance.
func instanceName(name string) string {
	name = strings.TrimSuffix(name, ".")
	name = strings.TrimSuffix(name, ".local")
	name = strings.TrimSuffix(name, "."+serviceType)
	return name
}
