package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/alexanderjkslfj/nicebot"
	"github.com/alexanderjkslfj/nicebot/internal/build"
	"github.com/alexanderjkslfj/nicebot/internal/config"
	"github.com/alexanderjkslfj/nicebot/pkg/fileutil"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	agentKey      string
	percentDecode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "nicebot",
	Short:   "Check a path against a robots.txt policy.",
	Version: build.FullVersion(),
	Long: `nicebot reads a robots.txt file and reports whether a given path or
URL is Allowed, Denied, or Unspecified for a named crawler agent.`,
}

// checkCmd implements "nicebot check <robots-file> <path-or-url>".
var checkCmd = &cobra.Command{
	Use:   "check <robots-file> <path-or-url>",
	Short: "Check whether a path is allowed by a robots.txt file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		permission, err := runCheck(args[0], args[1], os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(2)
		}
		fmt.Println(permission)
		if permission == nicebot.Denied {
			os.Exit(1)
		}
		os.Exit(0)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().StringVar(&agentKey, "agent", "", "case-insensitive substring to match in User-agent lines (empty matches only \"*\")")
	rootCmd.PersistentFlags().BoolVar(&percentDecode, "percent-decode", false, "percent-decode Allow/Disallow pattern values")
	rootCmd.AddCommand(checkCmd)
}

// runCheck reads robotsPath (or stdin, for "-"), builds an Engine from
// InitConfig's settings, and checks target against it. target may be a
// bare path or a full URL; only its path component is used.
func runCheck(robotsPath, target string, stdin *os.File) (nicebot.Permission, error) {
	cfg, err := InitConfigWithError()
	if err != nil {
		return nicebot.Unspecified, err
	}

	body, classified := fileutil.ReadInput(robotsPath, stdin)
	if classified != nil {
		return nicebot.Unspecified, classified
	}

	engine := nicebot.NewEngine(cfg.AgentKey(), cfg.DecodePercent())
	engine.Add(string(body))

	path := extractPath(target)
	return engine.Check(path), nil
}

// extractPath returns target's URL path if target parses as a URL with a
// host ("/" when that path is empty), and target itself otherwise, with a
// leading "/" added if it lacks one, so a bare path like "/private" works
// the same as a full URL.
func extractPath(target string) string {
	if u, err := url.Parse(target); err == nil && u.Host != "" {
		path := u.EscapedPath()
		if path == "" {
			return "/"
		}
		return path
	}
	if !strings.HasPrefix(target, "/") {
		return "/" + target
	}
	return target
}

// InitConfig builds a Config from the --config flag or the other CLI
// flags, exiting the process on error.
func InitConfig() config.Config {
	cfg, err := InitConfigWithError()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(2)
	}
	return cfg
}

// InitConfigWithError is InitConfig but returns errors instead of exiting,
// making it easier to test error cases.
func InitConfigWithError() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	builder := config.WithDefault()
	if agentKey != "" {
		builder = builder.WithAgentKey(agentKey)
	}
	if percentDecode {
		builder = builder.WithDecodePercent(percentDecode)
	}
	return builder.Build()
}

func ResetFlags() {
	cfgFile = ""
	agentKey = ""
	percentDecode = false
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetAgentKeyForTest(agent string) {
	agentKey = agent
}

func SetPercentDecodeForTest(decode bool) {
	percentDecode = decode
}
