package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classquest/classquest-api/internal/api/handler/v1/request"
	"github.com/classquest/classquest-api/internal/api/handler/v1/response"
	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/service"
)

type QuestService interface {
	CreateQuest(ctx context.Context, quest domain.Quest) (domain.Quest, error)
	ListQuests(ctx context.Context, classCode, studentID string) ([]domain.Quest, error)
	CompleteQuest(ctx context.Context, studentID string, questID uint) (int, error)
}

type QuestHandler struct {
	svc QuestService
}

func NewQuestHandler(svc QuestService) *QuestHandler {
	return &QuestHandler{
		svc: svc,
	}
}

// HandleCreateQuest godoc
// @Summary      Create a quest
// @Tags         quests
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateQuestRequest  true  "request body"
// @Success      200      {object}  response.Success
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /quest/create [post]
func (h *QuestHandler) HandleCreateQuest(ctx *gin.Context) {
	var req request.CreateQuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err := h.svc.CreateQuest(ctx.Request.Context(), domain.Quest{
		ClassCode:   *req.ClassCode,
		Title:       *req.Title,
		Description: req.Description,
		Reward:      req.Reward,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateQuest -> h.svc.CreateQuest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Success{Success: true})
}

// HandleListQuests godoc
// @Summary      List the quests of a class
// @Description  Newest quest first. Without student_id a quest is completed once any student completed it; with student_id the flag is that student's own.
// @Tags         quests
// @Produce      json
// @Param        classCode   path      string  true   "Class code"
// @Param        student_id  query     string  false  "Per-student completion flag"
// @Success      200         {array}   domain.Quest
// @Failure      500         {object}  response.Err
// @Router       /quests/{classCode} [get]
func (h *QuestHandler) HandleListQuests(ctx *gin.Context) {
	quests, err := h.svc.ListQuests(ctx.Request.Context(), ctx.Param("classCode"), ctx.Query("student_id"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListQuests -> h.svc.ListQuests -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, quests)
}

// HandleCompleteQuest godoc
// @Summary      Complete a quest
// @Description  Records the completion and credits the reward. Each student completes a quest at most once.
// @Tags         quests
// @Accept       json
// @Produce      json
// @Param        request  body      request.CompleteQuestRequest  true  "request body"
// @Success      200      {object}  response.CompleteQuest
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /quest/complete [post]
func (h *QuestHandler) HandleCompleteQuest(ctx *gin.Context) {
	var req request.CompleteQuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reward, err := h.svc.CompleteQuest(ctx.Request.Context(), *req.StudentID, req.QuestID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestAlreadyCompleted):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrQuestAlreadyCompleted))
		case errors.Is(err, service.ErrQuestNotFound):
			response.RenderErr(ctx, response.ErrNotFound("quest", "id", req.QuestID))
		default:
			err = fmt.Errorf("v1.HandleCompleteQuest -> h.svc.CompleteQuest -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.CompleteQuest{
		Success: true,
		Reward:  reward,
	})
}
