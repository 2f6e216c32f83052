package discovery

import (
	"net"
	"sort"
	"time"

	"golang.org/x/exp/slices"

	"github.com/google/uuid"
	ssdp "github.com/koron/go-ssdp"

	"github.com/ra3zac/Siebenschraem/pkg/log"
)

const (
	ServiceType = "game:schraem"
	serverName  = "SchraemServer/1.0"
	cacheMaxAge = 30 * time.Minute
)

var serverUniqueId = uuid.NewString()

// Advertise the table server via SSDP at the given hostLocation.
// Close() the returned Advertiser when done.
func AdvertiseService(hostLocation string) (*ssdp.Advertiser, error) {
	log.WithField("location", hostLocation).Info("advertising via SSDP")
	return ssdp.Advertise(ServiceType, serverUniqueId, hostLocation, serverName, int(cacheMaxAge.Seconds()))
}

// Find any table servers on the current LAN via SSDP.
// Returns a sorted list of host addresses without duplicates.
func FindService(waitTime time.Duration) ([]string, error) {
	servers, err := ssdp.Search(ServiceType, int(waitTime.Seconds()), "")
	if err != nil {
		return nil, err
	}
	return locations(servers), nil
}

func locations(servers []ssdp.Service) []string {
	var locs []string
	for _, svr := range servers {
		if svr.Type != ServiceType {
			continue
		}
		locs = append(locs, svr.Location)
	}
	sort.Strings(locs)
	return slices.Compact(locs)
}

// ListenOnlyTo restricts SSDP to the named interface. Falls back to all interfaces.
func ListenOnlyTo(name string) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		log.Warnf("Can't find interface %q. SSDP listening on all interfaces", name)
		return
	}
	ssdp.Interfaces = []net.Interface{*iface}
}
