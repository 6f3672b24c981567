package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ngenohkevin/zid-admin/internal/dashboard"
	"github.com/spf13/cobra"
)

type options struct {
	gateway string
	token   string
	timeout time.Duration
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "adminctl",
		Short: "Operate a Zid store through the admin gateway",
		Long: `adminctl issues requests against a running admin gateway and prints the
response envelope as JSON. A failed envelope exits with status 1.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.gateway, "gateway", envOrDefault("ZIDADMIN_GATEWAY_URL", "http://localhost:8080"), "Gateway base URL (or set ZIDADMIN_GATEWAY_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("ZIDADMIN_TOKEN"), "Operator bearer token (or set ZIDADMIN_TOKEN)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Request timeout")

	root.AddCommand(
		newLoginCmd(opts),
		newOrdersCmd(opts),
		newProductsCmd(opts),
		newCustomersCmd(opts),
		newWebhooksCmd(opts),
		newAuditCmd(opts),
		newHashPasswordCmd(),
	)
	return root
}

func (o *options) client() *dashboard.Client {
	return dashboard.NewClient(o.gateway,
		dashboard.WithToken(o.token),
		dashboard.WithHTTPClient(&http.Client{Timeout: o.timeout}),
	)
}

// run executes req through a hook and prints the resulting envelope
func run[T any](cmd *cobra.Command, opts *options, req dashboard.RequestFunc) (dashboard.State[T], error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	hook := dashboard.NewHook[T]()
	env := hook.Execute(ctx, req)

	if err := printJSON(cmd.OutOrStdout(), env); err != nil {
		return hook.State(), err
	}
	if !env.Success {
		return hook.State(), errors.New(env.Error)
	}
	return hook.State(), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	return nil
}

func optionalInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func optionalString(cmd *cobra.Command, name, v string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
