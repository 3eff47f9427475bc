package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gsonntag/bruinbite/configs"
	"github.com/gsonntag/bruinbite/ingest"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/search"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <menu-file.json>",
	Short: "Load a scraped menu dump into the database",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := setup()
		db := configs.DB()

		halls := repository.NewHallRepository(db)
		dishes := repository.NewDishRepository(db)
		menus := repository.NewMenuRepository(db)
		users := repository.NewUserRepository(db)

		ingestor := ingest.NewIngestor(db, halls, dishes, menus)
		created, err := ingestor.IngestFile(args[0])
		if err != nil {
			log.Fatalf("ingest failed after %d menus: %v", created, err)
		}
		log.Printf("ingested %d menus", created)

		if created == 0 {
			return
		}

		// new dishes need to be searchable
		dishIdx, err := search.OpenDishIndex(cfg.DishIndexPath, false)
		if err != nil {
			log.Fatalf("opening dish index: %v", err)
		}
		defer dishIdx.Close()

		userIdx, err := search.OpenUserIndex(cfg.UserIndexPath, false)
		if err != nil {
			log.Fatalf("opening user index: %v", err)
		}
		defer userIdx.Close()

		indexer := search.NewIndexer(dishes, halls, users, dishIdx, userIdx, 100)
		if err := indexer.IndexAllDishes(); err != nil {
			log.Fatalf("indexing dishes: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
