package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gradientlab/pkg/editor"
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var design designFlags

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a design interactively in the terminal",
		Long: `Edit a design in a full-screen terminal editor with a live preview.

Press t to switch the gradient type, tab to select a stop or node, e to
type a color and c to copy the CSS. Mesh nodes and gradient centers can be
dragged with the mouse. The final CSS is printed when the editor exits.

Truecolor terminals show the preview exactly; others show an
approximation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			spec, err := design.spec(cmd, cfg.Design)
			if err != nil {
				return err
			}

			store := editor.NewStore(editor.NewState(spec))
			edits := 0
			store.OnChange(func(prev, next editor.State) { edits++ })

			model := newEditorModel(store, cfg.Preview.Workers, func(css string) {
				copyToClipboard(os.Stderr, css)
			})
			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := p.Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
					return cmd.Context().Err()
				}
				return fmt.Errorf("run editor: %w", err)
			}

			c.Logger.Debug("editor closed", "edits", edits)
			fmt.Fprintln(cmd.OutOrStdout(), store.State().CSS())
			return nil
		},
	}

	design.register(cmd)

	return cmd
}
