package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var (
	filterTerm  string
	minCapacity string
	maxCapacity string
	fromDate    string
	toDate      string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(arenasCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(searchArenasCmd)
	rootCmd.AddCommand(searchMatchesCmd)
	rootCmd.AddCommand(metricsCmd)

	matchesCmd.Flags().StringVar(&filterTerm, "filter", "", "Filter matches locally by arena city, team name or tournament")
	searchArenasCmd.Flags().StringVar(&minCapacity, "min", "", "Minimum capacity (inclusive)")
	searchArenasCmd.Flags().StringVar(&maxCapacity, "max", "", "Maximum capacity (inclusive)")
	searchMatchesCmd.Flags().StringVar(&fromDate, "from", "", "Start date (YYYY-MM-DD)")
	searchMatchesCmd.Flags().StringVar(&toDate, "to", "", "End date (YYYY-MM-DD)")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Trigger a full reload of the collections from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/refresh")
	},
}

var arenasCmd = &cobra.Command{
	Use:   "arenas",
	Short: "List the loaded arenas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/arenas")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the loaded teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the loaded players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the loaded matches, optionally filtered locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/matches"
		if filterTerm != "" {
			endpoint += "?filter=" + url.QueryEscape(filterTerm)
		}
		return performGetRequest(endpoint)
	},
}

var searchArenasCmd = &cobra.Command{
	Use:   "search-arenas",
	Short: "Search arenas by capacity range",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if minCapacity != "" {
			params.Set("min", minCapacity)
		}
		if maxCapacity != "" {
			params.Set("max", maxCapacity)
		}
		endpoint := "/arenas/search"
		if len(params) > 0 {
			endpoint += "?" + params.Encode()
		}
		return performGetRequest(endpoint)
	},
}

var searchMatchesCmd = &cobra.Command{
	Use:   "search-matches [tournament]",
	Short: "Search matches by tournament name or date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return performGetRequest("/matches/search/tournament?q=" + url.QueryEscape(strings.Join(args, " ")))
		}
		params := url.Values{}
		if fromDate != "" {
			params.Set("from", fromDate)
		}
		if toDate != "" {
			params.Set("to", toDate)
		}
		return performGetRequest("/matches/search/date?" + params.Encode())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
