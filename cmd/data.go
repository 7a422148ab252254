package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "List the stored records",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.Entries(cmd.Context())
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("Nothing stored yet.")
			return nil
		}

		fmt.Printf("%-22s  %8s  %s\n", "Key", "Bytes", "Updated")
		fmt.Println(strings.Repeat("─", 54))
		for _, e := range entries {
			fmt.Printf("%-22s  %8d  %s\n", e.Key, e.Size, e.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}
