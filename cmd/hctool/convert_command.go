package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hctool/internal/fileutil"
	"hctool/internal/legacy"
	"hctool/internal/savefile"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a pre-release binary save to the release JSON format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			input := args[0]

			file, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer file.Close()

			log.Info("converting legacy save", "input", input)
			save, err := legacy.NewDecoder(log).Decode(file)
			if err != nil {
				return fmt.Errorf("convert %s: %w", input, err)
			}

			out, err := savefile.Serialize(save)
			if err != nil {
				return err
			}

			dest := outputPath
			if dest == "" {
				dest = inferOutputPath(input)
			}
			if err := fileutil.WriteFileAtomic(dest, out, 0o644); err != nil {
				return fmt.Errorf("write converted save %s: %w", dest, err)
			}
			log.Info("wrote converted save", "output", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Where to write the converted save (defaults next to the input)")
	return cmd
}

// convertedNames maps the pre-release save file names onto the slot files
// the release build reads. savegame.bin was slot one; later slots carried
// a 1-based suffix.
var convertedNames = map[string]string{
	"savegame.bin":  "savefile0.json",
	"savegame2.bin": "savefile1.json",
	"savegame3.bin": "savefile2.json",
	"savegame4.bin": "savefile3.json",
}

func inferOutputPath(input string) string {
	if name, ok := convertedNames[filepath.Base(input)]; ok {
		return filepath.Join(filepath.Dir(input), name)
	}
	return input + ".json"
}
