package handlers

import (
	"chai/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StudentHandler serves the public student listing.
type StudentHandler struct {
	service *services.StudentService
}

// NewStudentHandler creates a new instance of StudentHandler.
func NewStudentHandler(service *services.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// RegisterRoutes mounts the student listing on router.
func (h *StudentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/student", h.HandleGetStudents)
}

// HandleGetStudents lists all students in insertion order.
func (h *StudentHandler) HandleGetStudents(c *fiber.Ctx) error {
	students, err := h.service.GetAllStudents()
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "student", fiber.Map{"all_students": students})
}
