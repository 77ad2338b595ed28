package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-books-go/library/client"
)

type connection struct {
	server   string
	user     string
	password string
}

func (c *connection) client() *client.Client {
	return client.New(c.server, c.user, c.password)
}

func newRootCommand() *cobra.Command {
	conn := &connection{}

	root := &cobra.Command{
		Use:          "libraryctl",
		Short:        "Manage the books of a library server",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&conn.server, "server", envOr("LIBRARY_SERVER", "http://localhost:8080"), "base URL of the library server")
	root.PersistentFlags().StringVar(&conn.user, "user", os.Getenv("LIBRARY_USER"), "basic auth user")
	root.PersistentFlags().StringVar(&conn.password, "password", os.Getenv("LIBRARY_PASSWORD"), "basic auth password")

	root.AddCommand(
		newListCommand(conn),
		newAddCommand(conn),
		newSetTitleCommand(conn),
		newDelCommand(conn),
	)

	return root
}

func newListCommand(conn *connection) *cobra.Command {
	return &cobra.Command{
		Use:   "list [text]",
		Short: "List the books, optionally only those matching text",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := conn.client().ListBooks(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			for _, book := range books {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", book.ID, book.Title)
			}

			return nil
		},
	}
}

func newAddCommand(conn *connection) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>...",
		Short: "Add one book per title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := conn.client()

			for _, title := range args {
				id, err := c.AddBook(cmd.Context(), title)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Book added with ID %s.\n", id)
			}

			return nil
		},
	}
}

func newSetTitleCommand(conn *connection) *cobra.Command {
	return &cobra.Command{
		Use:   "set-title <id> <title>",
		Short: "Change the title of a book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := conn.client().SetTitle(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Title set for Book ID %s.\n", args[0])

			return nil
		},
	}
}

func newDelCommand(conn *connection) *cobra.Command {
	return &cobra.Command{
		Use:   "del <id>...",
		Short: "Remove books from the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := conn.client()

			for _, id := range args {
				if err := c.DeleteBook(cmd.Context(), id); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Book with ID %s deleted.\n", id)
			}

			return nil
		},
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
