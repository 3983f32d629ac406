package main

import (
	"context"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"tcmcare-data/internal/config"
	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"
	"tcmcare-data/pkg/database"
)

// seed-catalog 将内置的食材/食谱/穴位种子数据写入 Postgres。
// 表结构先用 apply-migration 执行 migrations/schema.sql。
func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.Database.Database, err)
	}
	defer db.Close()
	fmt.Printf("Connected to database: %s\n", cfg.Database.Database)

	ctx := context.Background()

	ingredients := repository.NewPostgresIngredientsRepository(db)
	for i := range domain.SeedIngredients {
		ing := domain.SeedIngredients[i]
		id, err := ingredients.InsertIngredient(ctx, &ing)
		if err != nil {
			log.Fatalf("Failed to insert ingredient %s: %v", ing.Name, err)
		}
		fmt.Printf("  ingredient %s -> %d\n", ing.Name, id)
	}

	recipes := repository.NewPostgresRecipesRepository(db)
	for i := range domain.SeedRecipes {
		rec := domain.SeedRecipes[i]
		id, err := recipes.InsertRecipe(ctx, &rec)
		if err != nil {
			log.Fatalf("Failed to insert recipe %s: %v", rec.Name, err)
		}
		fmt.Printf("  recipe %s -> %d\n", rec.Name, id)
	}

	acupoints := repository.NewPostgresAcupointsRepository(db)
	for i := range domain.SeedAcupoints {
		ap := domain.SeedAcupoints[i]
		id, err := acupoints.InsertAcupoint(ctx, &ap)
		if err != nil {
			log.Fatalf("Failed to insert acupoint %s: %v", ap.Name, err)
		}
		fmt.Printf("  acupoint %s -> %d\n", ap.Name, id)
	}

	exercises := repository.NewPostgresExercisesRepository(db)
	for i := range domain.SeedExercises {
		ex := domain.SeedExercises[i]
		id, err := exercises.InsertExercise(ctx, &ex)
		if err != nil {
			log.Fatalf("Failed to insert exercise %s: %v", ex.Name, err)
		}
		fmt.Printf("  exercise %s -> %d\n", ex.Name, id)
	}

	courses := repository.NewPostgresCoursesRepository(db)
	for i := range domain.SeedCourses {
		c := domain.SeedCourses[i]
		id, err := courses.InsertCourse(ctx, &c)
		if err != nil {
			log.Fatalf("Failed to insert course %s: %v", c.Title, err)
		}
		fmt.Printf("  course %s -> %d\n", c.Title, id)
	}

	routines := repository.NewPostgresRoutinesRepository(db)
	for i := range domain.SeedRoutines {
		rt := domain.SeedRoutines[i]
		id, err := routines.InsertRoutine(ctx, &rt)
		if err != nil {
			log.Fatalf("Failed to insert routine %s: %v", rt.Name, err)
		}
		fmt.Printf("  routine %s -> %d\n", rt.Name, id)
	}

	fmt.Printf("\nSeeded %d ingredients, %d recipes, %d acupoints, %d exercises, %d courses, %d routines\n",
		len(domain.SeedIngredients), len(domain.SeedRecipes), len(domain.SeedAcupoints),
		len(domain.SeedExercises), len(domain.SeedCourses), len(domain.SeedRoutines))
}
