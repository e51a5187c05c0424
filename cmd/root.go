package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/commait/commait/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	jiraTicket string
	debugMode  bool
	modelName  string
)

var rootCmd = &cobra.Command{
	Use:   "commait",
	Short: "Generate a git commit message with a local LLM",
	Long: `commait stages your changes, reads the staged diff, and asks a locally
hosted Ollama model for a commit message styled after your repository's
own history. The result pre-fills an interactive git commit.

The server and model are started automatically when not already running.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/commait/config.toml)")
	rootCmd.Flags().StringVar(&jiraTicket, "jira", "", "JIRA ticket for a [BUGFIX ...] prefix (e.g. ANA3-42)")
	rootCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "print the prompt and the suggested message")
	rootCmd.Flags().StringVar(&modelName, "model", "", "override the configured Ollama model")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "commait")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("COMMAIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults()

	if err := viper.ReadInConfig(); err == nil && debugMode {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
