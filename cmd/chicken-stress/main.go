package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/runchicken/game"
	"github.com/plus3/runchicken/world"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 0, "Seed of the terrain generator, 0 for a random seed.")
	rounds := flag.Int("rounds", 0, "Stop after this many rounds, 0 to run for the whole duration.")
	clickEvery := flag.Int("click-every", 25, "Steps between two clicks of the scripted player.")
	lazy := flag.Float64("lazy", 0.1, "Fraction of rounds in which the player stops clicking.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Printf("Starting run chicken stress test with seed %d...\n", *seed)

	session := game.NewSession(rand.New(rand.NewPCG(*seed, *seed)))
	player := NewPlayer(rand.New(rand.NewPCG(*seed, ^*seed)), *clickEvery, *lazy)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		MaxRounds:      *rounds,
		ClickEvery:     player.ClickEvery,
		Lazy:           *lazy,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	report.Rounds.Games = 1

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		player.Act(session)

		switch session.Phase() {
		case game.Playing:
			updateStart := time.Now()
			steps := session.Update(world.FixedStep)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
			report.TotalSteps += int64(steps)

		case game.EndOfRound, game.GameOver:
			w := session.World()
			report.Rounds.Add(w.CollectStats(), session.EndReason(), session.Score().Total)
			report.AddPhases(w.Stats())
			if report.Rounds.Played%100 == 0 {
				log.Printf("%d rounds played\n", report.Rounds.Played)
			}
			if *rounds > 0 && report.Rounds.Played >= *rounds {
				break Loop
			}

			if !session.NextRound() {
				session.Restart()
				report.Rounds.Games++
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
