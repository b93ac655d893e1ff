package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpe-synth/internal/adapters"
	"cpe-synth/internal/app"
	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

type generateOptions struct {
	API         bool
	Count       int
	OutputDir   string
	JSONFile    string
	CSVFile     string
	YAMLFile    string
	Catalog     string
	NVDEndpoint string
	NVDAPIKey   string
	NVDDelayMs  int
	NVDTimeout  int
	NVDPageSize int
	NVDMaxPages int
	Keywords    []string
	SQLitePath  string
	PostgresDSN string
	NoSummary   bool
}

func bindGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	flags := cmd.Flags()
	flags.BoolVar(&opts.API, "api", false, "Query the NVD CPE API instead of the built-in catalog")
	flags.IntVar(&opts.Count, "count", 50, "Number of records to generate")
	flags.StringVar(&opts.OutputDir, "output", ".", "Directory for relative export paths")
	flags.StringVar(&opts.JSONFile, "json-file", "cpe_data.json", "JSON export path")
	flags.StringVar(&opts.CSVFile, "csv-file", "cpe_data.csv", "CSV export path")
	flags.StringVar(&opts.YAMLFile, "yaml-file", "", "Optional YAML export path")
	flags.StringVar(&opts.Catalog, "catalog", "", "Catalog file with one CPE URI per line (default: built-in)")
	flags.StringVar(&opts.NVDEndpoint, "nvd-endpoint", adapters.DefaultNVDEndpoint, "NVD CPE API endpoint")
	flags.StringVar(&opts.NVDAPIKey, "nvd-api-key", "", "NVD API key")
	flags.IntVar(&opts.NVDDelayMs, "nvd-delay-ms", 6000, "Delay between NVD requests in milliseconds")
	flags.IntVar(&opts.NVDTimeout, "nvd-timeout", 30, "NVD request timeout in seconds")
	flags.IntVar(&opts.NVDPageSize, "nvd-page-size", 20, "Results requested per NVD query")
	flags.IntVar(&opts.NVDMaxPages, "nvd-max-pages", 1, "Pages fetched per keyword")
	flags.StringSliceVar(&opts.Keywords, "keyword", nil, "NVD search keywords (default: built-in list)")
	flags.StringVar(&opts.SQLitePath, "sqlite", "", "Also store records in this SQLite database")
	flags.StringVar(&opts.PostgresDSN, "postgres-dsn", "", "Also store records in this PostgreSQL database")
	flags.BoolVar(&opts.NoSummary, "no-summary", false, "Skip the console summary")

	_ = viper.BindPFlag("api", flags.Lookup("api"))
	_ = viper.BindPFlag("count", flags.Lookup("count"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("json_file", flags.Lookup("json-file"))
	_ = viper.BindPFlag("csv_file", flags.Lookup("csv-file"))
	_ = viper.BindPFlag("yaml_file", flags.Lookup("yaml-file"))
	_ = viper.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = viper.BindPFlag("nvd_endpoint", flags.Lookup("nvd-endpoint"))
	_ = viper.BindPFlag("nvd_api_key", flags.Lookup("nvd-api-key"))
	_ = viper.BindPFlag("nvd_delay_ms", flags.Lookup("nvd-delay-ms"))
	_ = viper.BindPFlag("nvd_timeout", flags.Lookup("nvd-timeout"))
	_ = viper.BindPFlag("nvd_page_size", flags.Lookup("nvd-page-size"))
	_ = viper.BindPFlag("nvd_max_pages", flags.Lookup("nvd-max-pages"))
	_ = viper.BindPFlag("keywords", flags.Lookup("keyword"))
	_ = viper.BindPFlag("sqlite", flags.Lookup("sqlite"))
	_ = viper.BindPFlag("postgres_dsn", flags.Lookup("postgres-dsn"))
	_ = viper.BindPFlag("no_summary", flags.Lookup("no-summary"))
}

func resolveGenerateOptions(cmd *cobra.Command, opts generateOptions) generateOptions {
	return generateOptions{
		API:         resolveBool(cmd, opts.API, "api", "api"),
		Count:       resolveInt(cmd, opts.Count, "count", "count"),
		OutputDir:   resolveString(cmd, opts.OutputDir, "output", "output"),
		JSONFile:    resolveString(cmd, opts.JSONFile, "json_file", "json-file"),
		CSVFile:     resolveString(cmd, opts.CSVFile, "csv_file", "csv-file"),
		YAMLFile:    resolveString(cmd, opts.YAMLFile, "yaml_file", "yaml-file"),
		Catalog:     resolveString(cmd, opts.Catalog, "catalog", "catalog"),
		NVDEndpoint: resolveString(cmd, opts.NVDEndpoint, "nvd_endpoint", "nvd-endpoint"),
		NVDAPIKey:   resolveString(cmd, opts.NVDAPIKey, "nvd_api_key", "nvd-api-key"),
		NVDDelayMs:  resolveInt(cmd, opts.NVDDelayMs, "nvd_delay_ms", "nvd-delay-ms"),
		NVDTimeout:  resolveInt(cmd, opts.NVDTimeout, "nvd_timeout", "nvd-timeout"),
		NVDPageSize: resolveInt(cmd, opts.NVDPageSize, "nvd_page_size", "nvd-page-size"),
		NVDMaxPages: resolveInt(cmd, opts.NVDMaxPages, "nvd_max_pages", "nvd-max-pages"),
		Keywords:    resolveStrings(cmd, opts.Keywords, "keywords", "keyword"),
		SQLitePath:  resolveString(cmd, opts.SQLitePath, "sqlite", "sqlite"),
		PostgresDSN: resolveString(cmd, opts.PostgresDSN, "postgres_dsn", "postgres-dsn"),
		NoSummary:   resolveBool(cmd, opts.NoSummary, "no_summary", "no-summary"),
	}
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	resolved := resolveGenerateOptions(cmd, opts)
	service := newAppService(resolved)
	result, err := service.Generate(ctx, app.GenerateRequest{
		Source:    sourceKind(resolved),
		Count:     resolved.Count,
		OutputDir: resolved.OutputDir,
		JSONFile:  resolved.JSONFile,
		CSVFile:   resolved.CSVFile,
		YAMLFile:  resolved.YAMLFile,
	})
	if err != nil {
		return err
	}
	if resolved.NoSummary {
		return nil
	}
	return renderGenerateSummary(os.Stdout, result)
}

func newAppService(opts generateOptions) app.Service {
	return app.NewService(newSource(opts), newSinks(opts)...)
}

func sourceKind(opts generateOptions) types.SourceKind {
	if opts.API {
		return types.SourceKindNVD
	}
	return types.SourceKindCatalog
}

func newSource(opts generateOptions) ports.SourcePort {
	if sourceKind(opts) == types.SourceKindCatalog {
		return adapters.NewCatalogSourceAdapter(opts.Catalog)
	}
	return adapters.NewNVDSourceAdapter(adapters.NVDSourceConfig{
		Endpoint: opts.NVDEndpoint,
		APIKey:   opts.NVDAPIKey,
		Keywords: opts.Keywords,
		Delay:    time.Duration(opts.NVDDelayMs) * time.Millisecond,
		Timeout:  time.Duration(opts.NVDTimeout) * time.Second,
		PageSize: opts.NVDPageSize,
		MaxPages: opts.NVDMaxPages,
	})
}

func newSinks(opts generateOptions) []ports.SinkPort {
	var sinks []ports.SinkPort
	if path := strings.TrimSpace(opts.SQLitePath); path != "" {
		sinks = append(sinks, adapters.NewSQLiteSinkAdapter(path))
	}
	if dsn := strings.TrimSpace(opts.PostgresDSN); dsn != "" {
		sinks = append(sinks, adapters.NewPostgresSinkAdapter(dsn))
	}
	return sinks
}
