package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ipecho/pkg/clientip"
)

func resolveCmd() *cobra.Command {
	var forwardedFor, peer string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the address the service would report",
		Long: `Print the address the service would report for a request carrying the
given X-Forwarded-For value from the given peer. Omitting --forwarded-for
means the header is absent; omitting --peer means the peer is unknown.`,
		Example: `  ipecho resolve --forwarded-for "203.0.113.7, 10.0.0.1"
  ipecho resolve --peer 192.0.2.10:51234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := http.Header{}
			if cmd.Flags().Changed("forwarded-for") {
				h.Set(clientip.HeaderXForwardedFor, forwardedFor)
			}

			var peerHost *string
			if cmd.Flags().Changed("peer") {
				peerHost = clientip.PeerHost(peer)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), clientip.Resolve(clientip.HTTPHeaders(h), peerHost))
			return err
		},
	}

	cmd.Flags().StringVar(&forwardedFor, "forwarded-for", "", "X-Forwarded-For header value")
	cmd.Flags().StringVar(&peer, "peer", "", "transport peer address, host or host:port")
	return cmd
}
