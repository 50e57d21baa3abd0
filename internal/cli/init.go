package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fabric-scaffold/internal/adapters"
	"fabric-scaffold/internal/app"
)

type initOptions struct {
	Output  string
	Answers string
}

func newInitCommand() *cobra.Command {
	opts := initOptions{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Ask for mod metadata and toolchain versions and write the selection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "fabric-selection.yaml", "Selection output path")
	cmd.Flags().StringVar(&opts.Answers, "answers", "", "Answer questions from a YAML or TOML file instead of the terminal")
	_ = viper.BindPFlag("selection_file", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("answers_file", cmd.Flags().Lookup("answers"))
	return cmd
}

func runInit(ctx context.Context, cmd *cobra.Command, opts initOptions) error {
	service := newAppService(cmd)
	if answers := strings.TrimSpace(resolveString(cmd, opts.Answers, "answers_file", "answers")); answers != "" {
		prompter, err := adapters.NewAnswersFileAdapter(answers)
		if err != nil {
			return err
		}
		service.Prompter = prompter
	}
	result, err := service.Init(ctx, app.InitRequest{
		OutputPath: resolveString(cmd, opts.Output, "selection_file", "output"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote selection: %s\n", result.OutputPath)
	printSelection(cmd, result.Selection)
	return nil
}
