package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type TaskHandler struct {
	mediaService services.MediaService
}

func NewTaskHandler(mediaService services.MediaService) *TaskHandler {
	return &TaskHandler{mediaService: mediaService}
}

// List ดึง task ทั้งหมดของ user
// GET /api/v1/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	all := h.mediaService.ListTasks(user.Key())

	resp := dto.TaskListResponse{Tasks: make([]dto.TaskResponse, 0, len(all))}
	for i := range all {
		resp.Tasks = append(resp.Tasks, dto.TaskToResponse(&all[i]))
		if !all[i].State.IsTerminal() {
			resp.Active++
		}
	}
	return utils.SuccessResponse(c, resp)
}

// Get ดึงสถานะ task เดียว
// GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.mediaService.GetTask(user.Key(), taskID)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.TaskToResponse(task))
}

// Cancel ยกเลิก task ที่ยังไม่จบ
// POST /api/v1/tasks/:id/cancel
func (h *TaskHandler) Cancel(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.mediaService.CancelTask(user.Key(), taskID); err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.Map{"cancelled": true})
}

// Dismiss ลบ task ที่จบแล้วออกจากรายการ
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) Dismiss(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.mediaService.DismissTask(user.Key(), taskID); err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.NoContentResponse(c)
}
