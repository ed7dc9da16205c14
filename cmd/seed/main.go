package main

import (
	"flag"
	"log"

	"sharecase/internal/auth"
	"sharecase/internal/database"
	"sharecase/internal/models"
	"sharecase/internal/services"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

// Seeds the database with a pair of demo users and projects. In a
// production system this would be done through the API or admin interface.

func main() {
	var printToken = flag.Bool("token", false, "Print a session token for the seeded demo user")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("🌱 ShareCase Database Seeder")
	log.Println("============================")

	dbConfig := database.LoadConfig()
	if err := database.Connect(dbConfig); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db := database.DB

	ada := models.User{
		Email:       "ada@example.com",
		Name:        "Ada",
		LinkedInURL: "linkedin.com/in/ada-demo",
		GitHubURL:   "github.com/ada-demo",
		IsActive:    true,
	}
	grace := models.User{
		Email:    "grace@example.com",
		Name:     "Grace",
		IsActive: true,
	}

	for _, user := range []*models.User{&ada, &grace} {
		if err := db.Where("email = ?", user.Email).FirstOrCreate(user).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", user.Email, err)
		}
		log.Printf("✅ Seeded user: %s (%s)", user.Name, user.ID)
	}

	projects := []models.Project{
		{
			OwnerID:     ada.ID,
			Title:       "Robot Arm",
			Description: "A 4-axis desktop robot arm with a 3D printed chassis.",
			Problem:     "Manual pick-and-place tasks are slow and repetitive.",
			Tags:        pq.StringArray{"robotics", "cad", "embedded"},
			Images:      pq.StringArray{"https://picsum.photos/seed/robot-arm/800/600"},
			IsPublished: true,
		},
		{
			OwnerID:     ada.ID,
			Title:       "Sensor Rig",
			Description: "Environmental sensor array logging to a time-series store.",
			Problem:     "Campus greenhouses lack climate telemetry.",
			Tags:        pq.StringArray{"iot", "sensors"},
			Images:      pq.StringArray{"https://images.invalid.example/sensor-rig.png"},
			IsPublished: true,
		},
	}

	for i := range projects {
		project := &projects[i]
		if err := db.Where("owner_id = ? AND title = ?", project.OwnerID, project.Title).
			FirstOrCreate(project).Error; err != nil {
			log.Fatalf("Failed to seed project %q: %v", project.Title, err)
		}
		log.Printf("✅ Seeded project: %s", project.Title)
	}

	social := services.NewSocialService(db, nil)
	if err := social.Follow(grace.ID, ada.ID); err != nil {
		log.Printf("⚠️  Failed to seed follow: %v", err)
	}

	points := services.NewPointsService(db, nil)
	if err := points.AwardPoints(ada.ID, 50, "published a project"); err != nil {
		log.Printf("⚠️  Failed to seed points: %v", err)
	}

	if *printToken {
		token, err := auth.NewSessionManager().IssueToken(ada.ID)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		log.Printf("🔑 Session token for %s:\n%s", ada.Email, token)
	}

	log.Println("🌱 Seeding complete")
}
