package cli

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"fabric-scaffold/internal/adapters"
	"fabric-scaffold/internal/app"
	"fabric-scaffold/internal/core"
	"fabric-scaffold/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "FABRIC_SCAFFOLD"

// isTerminal can be overridden in tests.
var isTerminal = term.IsTerminal

type RootConfig struct {
	ConfigFile  string
	LogLevel    string
	CatalogFile string
	HTTPTimeout int
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "fabric-scaffold",
		Short:   "Scaffold Fabric mods with a compatible toolchain",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.CatalogFile, "catalog-file", "", "Read catalogs from a snapshot instead of the network")
	cmd.PersistentFlags().IntVar(&cfg.HTTPTimeout, "http-timeout", 30, "HTTP timeout in seconds (0 = default)")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("catalog_file", cmd.PersistentFlags().Lookup("catalog-file"))
	_ = viper.BindPFlag("http_timeout_sec", cmd.PersistentFlags().Lookup("http-timeout"))

	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newVersionsCommand())
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newInspectCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	setConfigDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("fabric-scaffold")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/fabric-scaffold")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setConfigDefaults() {
	endpoints := types.DefaultCatalogEndpoints()
	viper.SetDefault("game_versions_url", endpoints.GameVersionsURL)
	viper.SetDefault("api_files_url", endpoints.APIFilesURL)
	viper.SetDefault("yarn_url", endpoints.YarnURL)
	viper.SetDefault("loom_metadata_url", endpoints.LoomMetadataURL)
	viper.SetDefault("loader_url", endpoints.LoaderURL)

	rules := core.DefaultCompatibilityRules()
	viper.SetDefault("baseline_game_version", rules.BaselineGameVersion)
	viper.SetDefault("baseline_yarn_build", rules.BaselineYarnBuild)
	viper.SetDefault("legacy_loom_ceiling", rules.LegacyLoomCeiling)
	viper.SetDefault("modern_loom_default", rules.ModernLoomDefault)
	viper.SetDefault("legacy_loom_default", rules.LegacyLoomDefault)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isTerminal(int(os.Stderr.Fd())),
	})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newAppService wires the service from config. A catalog snapshot, when
// configured, replaces the network catalogs.
func newAppService(cmd *cobra.Command) app.Service {
	service := app.NewService()
	catalogFile := strings.TrimSpace(viper.GetString("catalog_file"))
	if catalogFile != "" {
		service.Catalogs = adapters.NewCatalogFileAdapter(catalogFile)
	} else {
		service.Catalogs = adapters.NewCatalogHTTPAdapter(types.CatalogEndpoints{
			GameVersionsURL: viper.GetString("game_versions_url"),
			APIFilesURL:     viper.GetString("api_files_url"),
			YarnURL:         viper.GetString("yarn_url"),
			LoomMetadataURL: viper.GetString("loom_metadata_url"),
			LoaderURL:       viper.GetString("loader_url"),
		}, viper.GetInt("http_timeout_sec"))
	}
	service.Rules = core.CompatibilityRules{
		BaselineGameVersion: viper.GetString("baseline_game_version"),
		BaselineYarnBuild:   viper.GetInt("baseline_yarn_build"),
		LegacyLoomCeiling:   viper.GetString("legacy_loom_ceiling"),
		ModernLoomDefault:   viper.GetString("modern_loom_default"),
		LegacyLoomDefault:   viper.GetString("legacy_loom_default"),
	}
	if cmd != nil {
		service.Prompter = adapters.NewTerminalPrompterAdapter(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return service
}

func exitCodeForError(err error) int {
	switch {
	case types.IsKind(err, types.ErrorKindTransport):
		return 5
	case types.IsKind(err, types.ErrorKindParse):
		return 6
	case types.IsKind(err, types.ErrorKindNoCompatible):
		return 4
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	default:
		return 1
	}
}
