package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gsonntag/bruinbite/configs"
	"github.com/gsonntag/bruinbite/routes"
	"github.com/gsonntag/bruinbite/search"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, tz := setup()
		if err := configs.SeedAdmin(); err != nil {
			log.Fatalf("seeding admin: %v", err)
		}

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

		r := gin.Default()
		routes.RegisterRoutes(r, cfg, dishIdx, userIdx, tz)

		log.Printf("listening on :%s", cfg.Port)
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
