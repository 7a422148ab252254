package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress, rewards and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to erase data without --yes")
		}
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
		fmt.Println("All data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm erasing all data")
}
