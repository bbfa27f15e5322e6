// ABOUTME: read command drives the view state controller and renders the result
// ABOUTME: Loads the first page for the chosen intent, then more pages while available

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/news"
	"newsfeed-api/core/providers"
	"newsfeed-api/core/viewstate"
	stdhttp "newsfeed-api/infrastructure/http/standard"
	"newsfeed-api/presentation/terminal"
)

// errFetchFailed signals that the error banner was already rendered
var errFetchFailed = errors.New("fetch failed")

func newReadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Fetch and render articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRead(cmd)
		},
	}

	cmd.Flags().StringP("query", "q", "", "free-text search; clears the category")
	cmd.Flags().StringP("category", "c", "", "category filter (see 'newsfeed categories')")
	cmd.Flags().Int("pages", 1, "number of pages to load")
	cmd.Flags().String("proxy", "", "base URL of a newsfeed proxy (default $NEWSFEED_PROXY_URL)")

	_ = a.v.BindPFlag("query", cmd.Flags().Lookup("query"))
	_ = a.v.BindPFlag("category", cmd.Flags().Lookup("category"))
	_ = a.v.BindPFlag("pages", cmd.Flags().Lookup("pages"))
	_ = a.v.BindPFlag("proxy_url", cmd.Flags().Lookup("proxy"))

	return cmd
}

func (a *app) runRead(cmd *cobra.Command) error {
	pages := a.v.GetInt("pages")
	if pages < 1 {
		return fmt.Errorf("--pages must be at least 1, got %d", pages)
	}
	if category := a.v.GetString("category"); category != "" && !domain.IsKnownCategory(category) {
		return fmt.Errorf("unknown category %q (see 'newsfeed categories')", category)
	}

	settingsService, closeSettings, err := a.openSettings()
	if err != nil {
		return err
	}
	defer closeSettings()
	theme := settingsService.Load(commandContext(cmd))

	controller := viewstate.NewController(a.newsService(), a.logger)
	defer controller.Close()

	controller.Subscribe(func(s viewstate.State) {
		a.logger.Debug("View state changed", map[string]interface{}{
			"status":   s.Status.String(),
			"page":     s.Page,
			"articles": len(s.Articles),
		})
	})

	switch query, category := a.v.GetString("query"), a.v.GetString("category"); {
	case query != "":
		controller.Search(query)
	case category != "":
		controller.SelectCategory(category)
	default:
		controller.Start()
	}
	controller.Wait()

	// A failed page ends the run so its banner is what gets rendered
	for loaded := 1; loaded < pages; loaded++ {
		if controller.State().Status == viewstate.Error || !controller.LoadMore() {
			break
		}
		controller.Wait()
	}

	state := controller.State()
	renderer := terminal.NewRenderer(cmd.OutOrStdout(), theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(state))

	if state.Status == viewstate.Error {
		return errFetchFailed
	}
	return nil
}

// newsService builds the orchestrator, routed through a proxy when configured
func (a *app) newsService() *news.Service {
	httpClient := stdhttp.NewStandardHTTPClient(a.cfg.Server.UpstreamTimeout, stdhttp.WithLogger(a.logger))
	deps := interfaces.Dependencies{HTTPClient: httpClient, Logger: a.logger}

	var primary providers.Provider = providers.NewGNews(a.cfg.Providers.GNewsBaseURL, a.cfg.Providers.GNewsKey)
	var secondary providers.Provider = providers.NewNewsAPI(a.cfg.Providers.NewsAPIBaseURL, a.cfg.Providers.NewsAPIKey)

	if proxyURL := a.v.GetString("proxy_url"); proxyURL != "" {
		a.logger.Debug("Fetching through proxy", map[string]interface{}{"proxy": proxyURL})
		primary = providers.ViaProxy(primary, proxyURL)
		secondary = providers.ViaProxy(secondary, proxyURL)
	}

	return news.NewService(deps, primary, secondary)
}

// commandContext returns the command's context, or Background outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
