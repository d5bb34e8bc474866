package main

import (
	"log"
	"os"
	"strconv"

	"Hearth/CronJobs"
	"Hearth/FiberConfig"
	"Hearth/Models"
	"Hearth/ResetJob"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file loaded, using environment as-is")
	}

	Models.Connect()

	cal := ResetJob.CalendarFromEnv()
	runner := ResetJob.NewRunner(Models.DB, ResetJob.SystemClock{}, cal, batchSizeFromEnv())

	scheduler := CronJobs.NewResetScheduler(runner, cal.Location())
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start reset scheduler:", err)
	}

	FiberConfig.FiberConfig(Models.DB, runner)
}

func batchSizeFromEnv() int {
	raw := os.Getenv("RESET_BATCH_SIZE")
	if raw == "" {
		return ResetJob.DefaultBatchSize
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		log.Printf("Bad RESET_BATCH_SIZE %q, using default %d", raw, ResetJob.DefaultBatchSize)
		return ResetJob.DefaultBatchSize
	}
	return size
}
