package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gsonntag/bruinbite/configs"
	"github.com/gsonntag/bruinbite/repository"
)

var recalcCmd = &cobra.Command{
	Use:   "recalc-ratings",
	Short: "Recompute every dish's stored average from its ratings",
	Run: func(cmd *cobra.Command, args []string) {
		setup()

		ratings := repository.NewRatingRepository(configs.DB())
		if err := ratings.RecalculateAll(); err != nil {
			log.Fatalf("recalculating averages: %v", err)
		}
		log.Println("averages recalculated")
	},
}

func init() {
	rootCmd.AddCommand(recalcCmd)
}
