// Command main runs the database seeder for OutFind.
package main

import (
	"flag"
	"log"

	"outfind/internal/config"
	"outfind/internal/database"
	"outfind/internal/models"
	"outfind/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	postsPerUser := flag.Int("posts", 8, "Posts per user")
	itemsPerUser := flag.Int("items", 12, "Closet items per user")
	followRatio := flag.Float64("follow-ratio", 0.15, "Probability of a follow edge between any user pair")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts/user, %d items/user, clean=%v\n",
		*numUsers, *postsPerUser, *itemsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		for _, table := range []string{"follows", "posts", "clothing_items", "users"} {
			if err := database.DB.Exec("DELETE FROM " + table).Error; err != nil {
				log.Fatalf("❌ Cleanup failed for %s: %v", table, err)
			}
		}
		// keep AutoMigrate state intact; only rows were removed
		var count int64
		database.DB.Model(&models.User{}).Count(&count)
		log.Printf("Cleaned database (%d users remain)\n", count)
	}

	opts := seed.Options{
		Users:        *numUsers,
		PostsPerUser: *postsPerUser,
		ItemsPerUser: *itemsPerUser,
		FollowRatio:  *followRatio,
	}
	if err := seed.Run(database.DB, opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
}
