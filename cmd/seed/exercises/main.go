package main

import (
	"context"
	"log"
	"time"

	"github.com/mansoorceksport/gymlogger/internal/config"
	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/mansoorceksport/gymlogger/internal/repository"
	"github.com/mansoorceksport/gymlogger/internal/service"
	"github.com/redis/go-redis/v9"
)

// Seeds the custom exercise library with the standard catalog of common
// gym exercises. Safe to rerun: entries are deduplicated by name.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	repo := repository.NewKVWorkoutRepository(repository.NewRedisKVStore(redisClient))

	catalog := []domain.Exercise{
		// Upper Body - Push
		{Name: "Bench Press", Category: domain.CategoryChest},
		{Name: "Incline Bench Press", Category: domain.CategoryChest},
		{Name: "Decline Bench Press", Category: domain.CategoryChest},
		{Name: "Overhead Press", Category: domain.CategoryShoulders},
		{Name: "Dumbbell Press", Category: domain.CategoryChest},
		{Name: "Push Ups", Category: domain.CategoryChest},
		{Name: "Dips", Category: domain.CategoryChest},
		{Name: "Tricep Extensions", Category: domain.CategoryArms},
		{Name: "Lateral Raises", Category: domain.CategoryShoulders},
		{Name: "Front Raises", Category: domain.CategoryShoulders},

		// Upper Body - Pull
		{Name: "Pull Ups", Category: domain.CategoryBack},
		{Name: "Chin Ups", Category: domain.CategoryBack},
		{Name: "Barbell Rows", Category: domain.CategoryBack},
		{Name: "Dumbbell Rows", Category: domain.CategoryBack},
		{Name: "Lat Pulldowns", Category: domain.CategoryBack},
		{Name: "Cable Rows", Category: domain.CategoryBack},
		{Name: "Face Pulls", Category: domain.CategoryShoulders},
		{Name: "Bicep Curls", Category: domain.CategoryArms},
		{Name: "Hammer Curls", Category: domain.CategoryArms},
		{Name: "Shrugs", Category: domain.CategoryBack},

		// Lower Body
		{Name: "Squats", Category: domain.CategoryLegs},
		{Name: "Front Squats", Category: domain.CategoryLegs},
		{Name: "Leg Press", Category: domain.CategoryLegs},
		{Name: "Leg Curls", Category: domain.CategoryLegs},
		{Name: "Leg Extensions", Category: domain.CategoryLegs},
		{Name: "Romanian Deadlifts", Category: domain.CategoryLegs},
		{Name: "Lunges", Category: domain.CategoryLegs},
		{Name: "Calf Raises", Category: domain.CategoryLegs},
		{Name: "Hip Thrusts", Category: domain.CategoryLegs},
		{Name: "Bulgarian Split Squats", Category: domain.CategoryLegs},

		// Full Body
		{Name: "Deadlifts", Category: domain.CategoryBack},
		{Name: "Sumo Deadlifts", Category: domain.CategoryBack},
		{Name: "Power Cleans", Category: domain.CategoryOther},
		{Name: "Snatches", Category: domain.CategoryOther},

		// Core
		{Name: "Planks", Category: domain.CategoryCore},
		{Name: "Crunches", Category: domain.CategoryCore},
		{Name: "Russian Twists", Category: domain.CategoryCore},
		{Name: "Leg Raises", Category: domain.CategoryCore},
	}

	seeded := 0
	for _, ex := range catalog {
		ex.ID = service.NewULID()
		ex.Sets = []domain.Set{}
		if err := repo.SaveCustomExercise(ctx, ex); err != nil {
			log.Printf("Failed to seed %q: %v", ex.Name, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d/%d exercises", seeded, len(catalog))
}
