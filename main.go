package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/mpilhlt/bookreviews-api/internal/handlers"
	"github.com/mpilhlt/bookreviews-api/internal/models"
	"github.com/mpilhlt/bookreviews-api/internal/store"
	"github.com/mpilhlt/bookreviews-api/internal/textproc"

	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	huma "github.com/danielgtaylor/huma/v2"
)

func main() {
	// Settings in a .env file end up as SERVICE_* environment variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("    Unable to load .env file: %v\n", err)
	}

	var (
		server     *http.Server
		closeTable = func() {}
	)

	// Create a CLI app
	cli := humacli.New(func(hooks humacli.Hooks, options *models.Options) {

		// Start server
		hooks.OnStart(func() {
			println()
			println("=== Starting Book Reviews API ...")
			fmt.Printf("    Options are debug:%v host:%v port:%v store:%s\n",
				options.Debug, options.Host, options.Port, options.Store)

			if err := validator.New(validator.WithRequiredStructEnabled()).Struct(options); err != nil {
				fmt.Printf("    Invalid options: %v\n", err)
				os.Exit(1)
			}

			// Open the review table
			table, closeFn, err := store.Open(context.Background(), options)
			if err != nil {
				fmt.Printf("    Unable to open review store: %v\n", err)
				os.Exit(1)
			}
			closeTable = closeFn

			// Create a new router & API
			router := http.NewServeMux()
			api := newAPI(router, options.Debug)

			// Add routes to the API
			err = handlers.AddRoutes(table, api)
			if err != nil {
				fmt.Printf("    Unable to add routes: %v\n", err)
				os.Exit(1)
			}

			// Create the HTTP server
			server = &http.Server{
				Addr:              fmt.Sprintf("%s:%d", options.Host, options.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			fmt.Printf("=== Starting API server on port %d (docs at /docs) ...\n\n", options.Port)
			err = server.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				fmt.Printf("listen error: %s\n", err)
			} else {
				fmt.Printf("    API server on port %d stopped.\n", options.Port)
			}
		})

		// Gracefully shutdown server
		hooks.OnStop(func() {
			fmt.Printf("\n=== Shutting down API server on port %d...\n", options.Port)

			// Create a context with a timeout for the shutdown process
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if server != nil {
				if err := server.Shutdown(ctx); err != nil {
					fmt.Printf("Shutdown error: %v\n", err)
				}
			}

			closeTable()
			fmt.Print("=== Book Reviews API stopped.\n\n")
		})
	})

	cli.Root().AddCommand(openAPICommand(), processTextCommand())

	// Run the CLI. When passed no commands, it starts the server.
	cli.Run()
}

// newAPI creates the API on the given router.
func newAPI(router *http.ServeMux, debug bool) huma.API {
	config := huma.DefaultConfig("Book Reviews API", "0.1.0")
	config.Info.Description = "Text processing endpoints and a book review store."
	api := humago.New(router, config)
	api.UseMiddleware(handlers.RequestLogger(debug))
	return api
}

// openAPICommand prints the OpenAPI document without starting the server.
func openAPICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := newAPI(http.NewServeMux(), false)
			if err := handlers.AddRoutes(nil, api); err != nil {
				return err
			}
			b, err := api.OpenAPI().YAML()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

// processTextCommand runs the text processing locally, the same way the
// /process-text endpoint does.
func processTextCommand() *cobra.Command {
	var (
		duplicationFactor int
		capitalization    string
	)
	cmd := &cobra.Command{
		Use:   "process-text [text]",
		Short: "Apply capitalization and duplication rules to a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := textproc.Process(args[0], duplicationFactor, capitalization)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().IntVar(&duplicationFactor, "duplication-factor", textproc.DefaultDuplicationFactor, "Number of times to repeat the text on new lines")
	cmd.Flags().StringVar(&capitalization, "capitalization", "", "Capitalization rule (UPPER or LOWER)")
	return cmd
}
