package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/begraf/tourenblick/building"
	"gitlab.com/begraf/tourenblick/config"
	"gitlab.com/begraf/tourenblick/filesystem"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Merge raw recordings and publish the tour directory",
	RunE:  runBuildCmd,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "O", "", "Build directory")
	buildCmd.Flags().Bool("skip-images", false, "Skip photo copying and thumbnails")
	buildCmd.Flags().BoolP("yes", "y", false, "Trash consumed raw files without asking")

	if err := viper.BindPFlag(config.KeyBuildDirectory, buildCmd.Flags().Lookup("output")); err != nil {
		panic(err)
	}
}

func runBuildCmd(cmd *cobra.Command, args []string) error {
	if !config.HasToursDirectory() {
		return fmt.Errorf("no tours directory configured")
	}

	skipImages, err := cmd.Flags().GetBool("skip-images")
	if err != nil {
		return err
	}

	assumeYes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}

	opts := building.Options{
		ToursDirectory: filesystem.Abs(config.ToursDirectory()),
		BuildDirectory: filesystem.Abs(config.BuildDirectory()),
		SkipImages:     skipImages,
		ConfirmTrash:   confirmTrash(assumeYes),
	}

	return building.Build(opts)
}

func confirmTrash(assumeYes bool) func(tourID string, fileCount int) bool {
	if assumeYes {
		return func(string, int) bool { return true }
	}

	return func(tourID string, fileCount int) bool {
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Trash %d raw files of %s?", fileCount, tourID),
			Default: false,
		}

		var shouldTrash bool
		if err := survey.AskOne(prompt, &shouldTrash, nil); err != nil {
			return false
		}

		return shouldTrash
	}
}
