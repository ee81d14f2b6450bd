package cli

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/sketchwall/sketchwall/internal/server"
)

// foundServer is one board server seen during an mDNS browse.
type foundServer struct {
	instance string
	addr     string
}

// newDiscoverCmd creates the discover command. It browses the local
// network for board servers announced over mDNS and prints how to
// reach them.
func newDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Find board servers on the local network",
		Long: `Find board servers on the local network.

Servers started with 'sketchwall serve --mdns' announce themselves via
multicast DNS. The browse lasts about a second; servers on other
subnets or with mDNS disabled will not appear.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(cmd)
		},
	}
}

func runDiscover(cmd *cobra.Command) error {
	spinner := newSpinner(cmd.Context(), "Browsing the local network...")
	spinner.Start()

	var (
		mu    sync.Mutex
		found []foundServer
		seen  = map[string]bool{}
	)
	err := server.Browse(func(instance, addr string) {
		mu.Lock()
		defer mu.Unlock()
		if seen[addr] {
			return
		}
		seen[addr] = true
		found = append(found, foundServer{instance: instance, addr: addr})
		spinner.SetMessage(fmt.Sprintf("Browsing the local network... %d found", len(found)))
	})
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(found) == 0 {
		printWarning("No board servers found")
		printDetail("Start one with: sketchwall serve --mdns")
		return nil
	}

	sort.Slice(found, func(i, j int) bool { return found[i].instance < found[j].instance })

	printSuccess("Found %d board server(s)", len(found))
	for _, f := range found {
		fmt.Println("  " + StyleValue.Render(f.instance) + "  " + StyleLink.Render("http://"+f.addr))
	}
	printNewline()
	printNextStep("List boards", fmt.Sprintf("curl http://%s/api/boards", found[0].addr))
	return nil
}
