package Controllers

import (
	"errors"
	"log"
	"net/http"

	"Hearth/ResetJob"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type ResetController struct {
	DB     *gorm.DB
	Runner *ResetJob.Runner
}

func NewResetController(db *gorm.DB, runner *ResetJob.Runner) *ResetController {
	return &ResetController{DB: db, Runner: runner}
}

// Request DTOs
type TriggerResetRequest struct {
	Label string `json:"label" validate:"required,max=64"`
}

// TriggerRun runs the reset job synchronously with a caller-supplied label.
// POST /api/reset/run
func (rc *ResetController) TriggerRun(c *fiber.Ctx) error {
	var req TriggerResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Label is required (max 64 characters)",
		})
	}

	summary, err := rc.Runner.Run(req.Label)
	if err != nil {
		log.Println(err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Reset run failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// ListRuns returns recent ledger rows, newest day first.
// GET /api/reset/runs?limit=30
func (rc *ResetController) ListRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 30)

	rows, err := ResetJob.Ledger{DB: rc.DB}.Recent(limit)
	if err != nil {
		log.Println(err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list reset runs",
			"error":   err.Error(),
		})
	}
	return c.JSON(rows)
}

// TodayRun returns the ledger row for the current civil day.
// GET /api/reset/runs/today
func (rc *ResetController) TodayRun(c *fiber.Ctx) error {
	today := rc.Runner.Cal.DateKey(rc.Runner.Clock.Now())

	row, err := ResetJob.Ledger{DB: rc.DB}.Get(today)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"message": "No reset run recorded for today",
		})
	}
	if err != nil {
		log.Println(err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to read reset ledger",
			"error":   err.Error(),
		})
	}
	return c.JSON(row)
}
