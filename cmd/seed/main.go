package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"toolhub/internal/config"
	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

var sampleTools = []domain.Tool{
	{Name: "Cordless Drill", Price: 89.5, Description: "18V drill driver with two batteries", Image: "https://i.ibb.co/drill.png", MinimumQuantity: 50, AvailableQuantity: 1200},
	{Name: "Angle Grinder", Price: 64, Description: "115mm grinder for cutting and polishing", Image: "https://i.ibb.co/grinder.png", MinimumQuantity: 30, AvailableQuantity: 800},
	{Name: "Claw Hammer", Price: 12.75, Description: "Fibreglass handle, 16oz head", Image: "https://i.ibb.co/hammer.png", MinimumQuantity: 100, AvailableQuantity: 5000},
	{Name: "Circular Saw", Price: 129, Description: "185mm blade, 1400W motor", Image: "https://i.ibb.co/saw.png", MinimumQuantity: 20, AvailableQuantity: 350},
	{Name: "Socket Set", Price: 45.9, Description: "94 piece chrome vanadium set", Image: "https://i.ibb.co/sockets.png", MinimumQuantity: 40, AvailableQuantity: 900},
	{Name: "Laser Level", Price: 74.25, Description: "Self levelling cross line laser", Image: "https://i.ibb.co/level.png", MinimumQuantity: 25, AvailableQuantity: 420},
}

var sampleReviews = []domain.Review{
	{Name: "Rahim Uddin", Email: "rahim@example.com", Review: "Bulk order arrived on time and well packed.", Rating: 5},
	{Name: "Sara Khan", Email: "sara@example.com", Review: "Good prices on grinders, delivery could be faster.", Rating: 4},
	{Name: "Tom Becker", Email: "tom@example.com", Review: "Support helped me pick the right drill set.", Rating: 4.5},
}

func main() {
	seedTools := flag.Bool("tools", true, "seed the tool catalogue")
	seedReviews := flag.Bool("reviews", true, "seed customer reviews")
	drop := flag.Bool("drop", false, "drop seeded collections first")
	admin := flag.String("admin", "", "email to store with the admin role")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := repository.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close(context.Background())

	log.Println("Starting seed process...")

	if *drop {
		if err := dropCollections(ctx, db); err != nil {
			log.Fatalf("Failed to drop collections: %v", err)
		}
	}
	if *seedTools {
		if err := seedToolCatalogue(ctx, db); err != nil {
			log.Printf("Failed to seed tools: %v", err)
		}
	}
	if *seedReviews {
		if err := seedReviewList(ctx, db); err != nil {
			log.Printf("Failed to seed reviews: %v", err)
		}
	}
	if *admin != "" {
		if err := seedAdmin(ctx, db, *admin); err != nil {
			log.Printf("Failed to seed admin: %v", err)
		}
	}

	log.Println("Seed process completed!")
}

func dropCollections(ctx context.Context, db *repository.Database) error {
	for _, name := range []string{repository.ToolsCollection, repository.ReviewsCollection} {
		if err := db.DB().Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop %s: %w", name, err)
		}
		log.Printf("Dropped collection: %s", name)
	}
	return nil
}

func seedToolCatalogue(ctx context.Context, db *repository.Database) error {
	repo := repository.NewToolRepository(db)
	for i := range sampleTools {
		tool := sampleTools[i]
		if _, err := repo.Create(ctx, &tool); err != nil {
			return fmt.Errorf("failed to insert %s: %w", tool.Name, err)
		}
		log.Printf("Inserted tool %s (%s)", tool.Name, tool.ID.Hex())
	}
	return nil
}

func seedReviewList(ctx context.Context, db *repository.Database) error {
	repo := repository.NewReviewRepository(db)
	for i := range sampleReviews {
		review := sampleReviews[i]
		if _, err := repo.Create(ctx, &review); err != nil {
			return fmt.Errorf("failed to insert review by %s: %w", review.Email, err)
		}
	}
	log.Printf("Inserted %d reviews", len(sampleReviews))
	return nil
}

func seedAdmin(ctx context.Context, db *repository.Database, email string) error {
	repo := repository.NewUserRepository(db)
	if _, err := repo.UpsertByEmail(ctx, email, &domain.User{}); err != nil {
		return err
	}
	if _, err := repo.SetRole(ctx, email, domain.RoleAdmin); err != nil {
		return err
	}
	log.Printf("Granted admin role to %s", email)
	return nil
}
