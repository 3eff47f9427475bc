package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gsonntag/bruinbite/configs"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/search"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the dish and user search indexes from the database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := setup()
		db := configs.DB()

		dishIdx, err := search.OpenDishIndex(cfg.DishIndexPath, true)
		if err != nil {
			log.Fatalf("recreating dish index: %v", err)
		}
		defer dishIdx.Close()

		userIdx, err := search.OpenUserIndex(cfg.UserIndexPath, true)
		if err != nil {
			log.Fatalf("recreating user index: %v", err)
		}
		defer userIdx.Close()

		indexer := search.NewIndexer(
			repository.NewDishRepository(db),
			repository.NewHallRepository(db),
			repository.NewUserRepository(db),
			dishIdx, userIdx, 100,
		)
		if err := indexer.ReindexAll(); err != nil {
			log.Fatalf("reindex failed: %v", err)
		}
		log.Println("reindex complete")
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}
