package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wedshare/internal/presentation/function"
)

var functionCmd = &cobra.Command{
	Use:   "function <config>",
	Short: "Serve one function event read from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return HandleFunction(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// HandleFunction decodes a single event, serves it with the HTTP application
// and writes the function response as JSON.
func HandleFunction(ctx context.Context, path string, in io.Reader, out io.Writer) error {
	a, err := newApp(path)
	if err != nil {
		return err
	}
	defer a.close()

	var ev function.Event
	if err := json.NewDecoder(in).Decode(&ev); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	resp, err := function.New(a.server).Invoke(ctx, ev)
	if err != nil {
		return err
	}

	return json.NewEncoder(out).Encode(resp)
}
