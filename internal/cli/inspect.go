package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpe-synth/internal/app"
)

type inspectOptions struct {
	File    string
	Preview int
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a previous JSON, CSV or YAML export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "cpe_data.json", "Export file to read")
	cmd.Flags().IntVar(&opts.Preview, "preview", 5, "Number of leading records to show")
	_ = viper.BindPFlag("inspect_file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("inspect_preview", cmd.Flags().Lookup("preview"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := app.NewService(nil)
	result, err := service.Inspect(app.InspectRequest{
		File:        resolveString(cmd, opts.File, "inspect_file", "file"),
		PreviewSize: resolveInt(cmd, opts.Preview, "inspect_preview", "preview"),
	})
	if err != nil {
		return err
	}
	return renderInspect(os.Stdout, result)
}
