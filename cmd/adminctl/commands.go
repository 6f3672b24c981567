package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/services"
	"github.com/spf13/cobra"
)

func newLoginCmd(opts *options) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print an operator token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("ZIDADMIN_PASSWORD")
			}
			state, err := run[models.LoginResponse](cmd, opts, opts.client().Login(username, password))
			if err != nil {
				return err
			}
			if state.Data == nil {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "export ZIDADMIN_TOKEN=%s\n", state.Data.AccessToken)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Operator username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Operator password (or set ZIDADMIN_PASSWORD)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newOrdersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect store orders",
	}

	var page, pageSize int
	var status, from, to string
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := models.OrderListParams{
				Page:     optionalInt(cmd, "page", page),
				PageSize: optionalInt(cmd, "page-size", pageSize),
				Status:   optionalString(cmd, "status", status),
				DateFrom: optionalString(cmd, "from", from),
				DateTo:   optionalString(cmd, "to", to),
			}
			_, err := run[models.PaginatedResponse[json.RawMessage]](cmd, opts, opts.client().ListOrders(params))
			return err
		},
	}
	list.Flags().IntVar(&page, "page", 1, "Page number")
	list.Flags().IntVar(&pageSize, "page-size", models.DefaultPageSize, "Items per page")
	list.Flags().StringVar(&status, "status", "", "Order status filter")
	list.Flags().StringVar(&from, "from", "", "Earliest order date (YYYY-MM-DD)")
	list.Flags().StringVar(&to, "to", "", "Latest order date (YYYY-MM-DD)")

	get := &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[json.RawMessage](cmd, opts, opts.client().GetOrder(args[0]))
			return err
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func newProductsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage store products",
	}

	var page, pageSize int
	var category, search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := models.ProductListParams{
				Page:       optionalInt(cmd, "page", page),
				PageSize:   optionalInt(cmd, "page-size", pageSize),
				CategoryID: optionalString(cmd, "category", category),
				Search:     optionalString(cmd, "search", search),
			}
			_, err := run[models.PaginatedResponse[json.RawMessage]](cmd, opts, opts.client().ListProducts(params))
			return err
		},
	}
	list.Flags().IntVar(&page, "page", 1, "Page number")
	list.Flags().IntVar(&pageSize, "page-size", models.DefaultPageSize, "Items per page")
	list.Flags().StringVar(&category, "category", "", "Category ID filter")
	list.Flags().StringVar(&search, "search", "", "Free-text search")

	bulkDelete := &cobra.Command{
		Use:   "bulk-delete <product-id>...",
		Short: "Delete several products; each is attempted independently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := run[models.BulkDeleteResult](cmd, opts, opts.client().BulkDeleteProducts(args))
			if err != nil {
				return err
			}
			if state.Data != nil && state.Data.Failed > 0 {
				return fmt.Errorf("%d of %d deletes failed", state.Data.Failed, len(args))
			}
			return nil
		},
	}

	duplicate := &cobra.Command{
		Use:   "duplicate <product-id>",
		Short: "Copy a product under a new name and SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[json.RawMessage](cmd, opts, opts.client().DuplicateProduct(args[0]))
			return err
		},
	}

	stock := &cobra.Command{
		Use:   "stock <product-id>",
		Short: "Show stock levels of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[json.RawMessage](cmd, opts, opts.client().GetProductStock(args[0]))
			return err
		},
	}

	cmd.AddCommand(list, bulkDelete, duplicate, stock)
	return cmd
}

func newCustomersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Inspect store customers",
	}

	var page, pageSize int
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := models.CustomerListParams{
				Page:     optionalInt(cmd, "page", page),
				PageSize: optionalInt(cmd, "page-size", pageSize),
				Search:   optionalString(cmd, "search", search),
			}
			_, err := run[models.PaginatedResponse[json.RawMessage]](cmd, opts, opts.client().ListCustomers(params))
			return err
		},
	}
	list.Flags().IntVar(&page, "page", 1, "Page number")
	list.Flags().IntVar(&pageSize, "page-size", models.DefaultPageSize, "Items per page")
	list.Flags().StringVar(&search, "search", "", "Free-text search")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show customer statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[json.RawMessage](cmd, opts, opts.client().CustomerStats())
			return err
		},
	}

	var email, subject, message string
	sendEmail := &cobra.Command{
		Use:   "send-email <customer-id>",
		Short: "Email a customer through the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[json.RawMessage](cmd, opts, opts.client().SendCustomerEmail(args[0], email, subject, message))
			return err
		},
	}
	sendEmail.Flags().StringVar(&email, "email", "", "Recipient address")
	sendEmail.Flags().StringVar(&subject, "subject", "", "Subject line")
	sendEmail.Flags().StringVar(&message, "message", "", "Message body")

	cmd.AddCommand(list, stats, sendEmail)
	return cmd
}

func newWebhooksCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Inspect store webhooks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[json.RawMessage](cmd, opts, opts.client().ListWebhooks())
			return err
		},
	}

	test := &cobra.Command{
		Use:   "test <webhook-id>",
		Short: "Send a test delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[json.RawMessage](cmd, opts, opts.client().TestWebhook(args[0]))
			return err
		},
	}

	cmd.AddCommand(list, test)
	return cmd
}

func newAuditCmd(opts *options) *cobra.Command {
	var resource string
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent mutating requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := run[[]models.AuditEntry](cmd, opts, opts.client().ListAudit(resource, limit))
			return err
		},
	}
	cmd.Flags().StringVar(&resource, "resource", "", "Resource filter, e.g. products")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries")
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print an argon2id hash for the operators section of the config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := services.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
