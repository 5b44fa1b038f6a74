// Command prospector exposes the prospecting tool adapters for operator use:
// it runs a single search, scrape, or fetch and prints the structured JSON
// response, or exports the tool descriptions for agent-runtime registration.
// Credentials are loaded once at startup from the environment (a .env file is
// honoured); the LLM turn-taking loop itself lives outside this repository.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/leofalp/prospector/internal/config"
	"github.com/leofalp/prospector/internal/logging"
	"github.com/leofalp/prospector/internal/utils"
	"github.com/leofalp/prospector/providers/tool"
	"github.com/leofalp/prospector/providers/tool/firecrawl"
	"github.com/leofalp/prospector/providers/tool/pagefetch"
	"github.com/leofalp/prospector/providers/tool/tavily"
)

func main() {
	logging.Setup()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildCatalog wires every adapter into a catalog, with credentials injected
// from the configuration. Adapters with a missing credential stay registered
// and answer with a structured missing_credential error.
func buildCatalog(cfg config.Config) *tool.Catalog {
	return tool.NewCatalogWithTools(
		tavily.NewSearchTool(tavily.NewClient(cfg.TavilyAPIKey)),
		firecrawl.NewScrapeTool(firecrawl.NewClient(cfg.FirecrawlAPIKey)),
		pagefetch.NewFetchTool(pagefetch.NewClient()),
	)
}

// dispatch invokes a registered tool through the same GenericTool.Call path
// the agent runtime uses, and prints the JSON response on stdout.
func dispatch(ctx context.Context, catalog *tool.Catalog, name string, input any) error {
	registered, ok := catalog.Get(name)
	if !ok {
		return fmt.Errorf("tool %q is not registered", name)
	}

	output, err := registered.Call(ctx, utils.JSONToString(input))
	if err != nil {
		return fmt.Errorf("tool %q failed: %w", name, err)
	}

	fmt.Println(output)
	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prospector",
		Short:         "Tool adapters for a prospecting agent",
		Long:          "prospector runs the web search, web scraping, and local page fetch adapters used by a prospecting agent to find decision-makers at a named company. Each command performs one adapter call and prints the structured JSON response.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSearchCmd(), newScrapeCmd(), newFetchCmd(), newToolsCmd())
	return rootCmd
}

func newSearchCmd() *cobra.Command {
	var searchDepth string
	var maxResults int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the web for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := buildCatalog(config.FromEnv())
			input := tavily.SearchInput{
				Query:       args[0],
				SearchDepth: searchDepth,
				MaxResults:  utils.Ptr(tavily.FlexInt(maxResults)),
			}
			return dispatch(cmd.Context(), catalog, "WebSearch", input)
		},
	}

	cmd.Flags().StringVar(&searchDepth, "depth", "basic", "search depth: basic or advanced")
	cmd.Flags().IntVar(&maxResults, "max", tavily.DefaultMaxResults, "maximum number of results")
	return cmd
}

func newScrapeCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Scrape a website via the Firecrawl API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := buildCatalog(config.FromEnv())
			input := firecrawl.ScrapeInput{
				WebsiteURL: args[0],
				SessionID:  sessionID,
			}
			return dispatch(cmd.Context(), catalog, "ScrapeWebsite", input)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "default_session", "opaque session label for log correlation")
	return cmd
}

func newFetchCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a page locally, without a scraping API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := buildCatalog(config.FromEnv())
			input := pagefetch.FetchInput{
				WebsiteURL: args[0],
				SessionID:  sessionID,
			}
			return dispatch(cmd.Context(), catalog, "FetchPage", input)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "default_session", "opaque session label for log correlation")
	return cmd
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool descriptions for agent-runtime registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := buildCatalog(config.FromEnv())
			fmt.Println(utils.JSONToString(catalog.Descriptions(), true))
			return nil
		},
	}
}
