package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/atos-labs/chatbot-setup/internal/scaffold"
	"github.com/spf13/cobra"
)

var filesShow string

func init() {
	filesCmd.Flags().StringVar(&filesShow, "show", "", "Print the content of one generated file")
	rootCmd.AddCommand(filesCmd)
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files the setup writes",
	Long: `List every file the setup writes, with its size and mode, without
touching the filesystem. Use --show <path> to print one file's content.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := scaffold.Manifest(scaffold.NewData())
		if err != nil {
			return fmt.Errorf("rendering files: %w", err)
		}

		if filesShow != "" {
			for _, f := range files {
				if f.Path == filesShow {
					_, err := cmd.OutOrStdout().Write(f.Content)
					return err
				}
			}
			return fmt.Errorf("no generated file %q; run '%s files' for the list", filesShow, cmd.Root().Name())
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PATH\tSIZE\tMODE")
		for _, f := range files {
			fmt.Fprintf(w, "%s\t%d\t%s\n", f.Path, len(f.Content), f.Perm)
		}
		return w.Flush()
	},
}
