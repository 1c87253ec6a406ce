package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/db/migrations"
	"github.com/2beens/gymlog/internal/gymlog/exercises"
	"github.com/2beens/gymlog/internal/gymlog/query"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
	"github.com/2beens/gymlog/internal/logging"
	"github.com/2beens/gymlog/internal/users"
	"github.com/2beens/gymlog/pkg"
)

const seedPassword = "gymlog-seed"

type seeder struct {
	users     *users.Repo
	exercises *exercises.Repo
	workouts  *workouts.Repo
	faker     *gofakeit.Faker
}

func main() {
	env := flag.String("env", "development", "environment [dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	usersCount := flag.Int("users", 3, "number of users to create")
	workoutsPerUser := flag.Int("workouts", 40, "number of workouts per user, spread over the last days")
	days := flag.Int("days", 120, "how many days back the workouts go")
	seed := flag.Int64("seed", 0, "faker seed, 0 for random")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}
	if cfg.Environment == "production" {
		log.Fatalln("refusing to seed a production database")
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("GYMLOG_POSTGRES_PASS"),
		DBName:     cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := migrations.MigrateUp(dbPool); err != nil {
		log.Fatalf("migrate up: %s", err)
	}

	s := &seeder{
		users:     users.NewRepo(dbPool),
		exercises: exercises.NewRepo(dbPool),
		workouts:  workouts.NewRepo(dbPool),
		faker:     gofakeit.New(*seed),
	}

	catalog, err := s.sharedExercises(ctx)
	if err != nil {
		log.Fatalf("load shared exercises: %s", err)
	}
	if len(catalog) == 0 {
		log.Fatalln("no shared exercises found, is the catalog migration applied?")
	}

	for i := 0; i < *usersCount; i++ {
		userID, username, err := s.addUser(ctx)
		if err != nil {
			log.Fatalf("add user: %s", err)
		}

		setsCount := 0
		for w := 0; w < *workoutsPerUser; w++ {
			n, err := s.addWorkout(ctx, userID, catalog, *days)
			if err != nil {
				log.Fatalf("add workout for %s: %s", username, err)
			}
			setsCount += n
		}

		log.Infof("seeded user [%s] (password %q): %d workouts, %d sets", username, seedPassword, *workoutsPerUser, setsCount)
	}
}

func (s *seeder) sharedExercises(ctx context.Context) ([]exercises.Exercise, error) {
	return s.exercises.List(
		ctx,
		exercises.ListFilter(query.Request{}, uuid.Nil),
		exercises.Sorts.Default(),
		query.Window{Skip: 0, Take: query.MaxPageSize},
	)
}

func (s *seeder) addUser(ctx context.Context) (uuid.UUID, string, error) {
	hash, err := pkg.HashPassword(seedPassword)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := users.User{
		ID:           uuid.New(),
		Username:     fmt.Sprintf("%s%d", s.faker.Username(), s.faker.Number(10, 99)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Add(ctx, u); err != nil {
		return uuid.Nil, "", err
	}
	return u.ID, u.Username, nil
}

func (s *seeder) addWorkout(ctx context.Context, userID uuid.UUID, catalog []exercises.Exercise, days int) (int, error) {
	now := time.Now().UTC()
	date := now.AddDate(0, 0, -s.faker.Number(0, days))

	w, err := s.workouts.Add(ctx, workouts.Workout{
		ID:              uuid.New(),
		Name:            s.faker.RandomString([]string{"Push", "Pull", "Legs", "Upper", "Lower", "Full body"}) + " " + s.faker.Adjective(),
		Date:            workouts.NewDate(date),
		BelongsToUserID: userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return 0, err
	}

	setsCount := 0
	picked := s.faker.Number(3, 5)
	for i := 0; i < picked; i++ {
		ex := catalog[s.faker.Number(0, len(catalog)-1)]
		ewID := uuid.New()
		sets, err := workouts.BuildSets(ex.LogType, ewID, s.fakeSets(ex.LogType))
		if err != nil {
			return 0, fmt.Errorf("build sets for %s: %w", ex.Name, err)
		}

		if _, err := s.workouts.AddExerciseWorkout(ctx, workouts.ExerciseWorkout{
			ID:              ewID,
			WorkoutID:       w.ID,
			ExerciseID:      ex.ID,
			BelongsToUserID: userID,
			CreatedAt:       now,
			Sets:            sets,
		}); err != nil {
			return 0, err
		}
		setsCount += len(sets)
	}

	return setsCount, nil
}

func (s *seeder) fakeSets(logType exercises.LogType) []workouts.SetInput {
	sets := make([]workouts.SetInput, s.faker.Number(2, 5))
	for i := range sets {
		if logType.UsesWeight() {
			weight := float64(s.faker.Number(4, 60)) * 2.5
			sets[i].Weight = &weight
		}
		if logType.UsesReps() {
			reps := s.faker.Number(4, 15)
			sets[i].Reps = &reps
		}
		if logType.UsesTime() {
			seconds := s.faker.Number(20, 180)
			sets[i].Time = &seconds
		}
	}
	return sets
}
