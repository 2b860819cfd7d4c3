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

type ClassroomService interface {
	CreateClass(ctx context.Context, teacherName, className string) (domain.Teacher, error)
	JoinClass(ctx context.Context, classCode, name string) (domain.Student, error)
	ListStudents(ctx context.Context, classCode string) ([]domain.Student, error)
	AdjustPoints(ctx context.Context, studentID string, amount int) error
}

type ClassroomHandler struct {
	svc ClassroomService
}

func NewClassroomHandler(svc ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{
		svc: svc,
	}
}

// HandleCreateClass godoc
// @Summary      Create a class
// @Description  Registers a teacher and generates a random 6 character class code. A code collision is reported, not retried.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateClassRequest  true  "request body"
// @Success      200      {object}  response.CreateClass
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /teacher/create_class [post]
func (h *ClassroomHandler) HandleCreateClass(ctx *gin.Context) {
	var req request.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teacher, err := h.svc.CreateClass(ctx.Request.Context(), *req.TeacherName, *req.ClassName)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateClassCode) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrDuplicateClassCode))
			return
		}

		err = fmt.Errorf("v1.HandleCreateClass -> h.svc.CreateClass -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CreateClass{
		TeacherID: teacher.ID,
		ClassCode: teacher.ClassCode,
	})
}

// HandleJoinClass godoc
// @Summary      Join a class
// @Description  Creates a student with zero points in the class identified by class_code.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      request.JoinClassRequest  true  "request body"
// @Success      200      {object}  domain.Student
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /student/join [post]
func (h *ClassroomHandler) HandleJoinClass(ctx *gin.Context) {
	var req request.JoinClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	student, err := h.svc.JoinClass(ctx.Request.Context(), *req.ClassCode, *req.Name)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("class", "class_code", *req.ClassCode))
			return
		}

		err = fmt.Errorf("v1.HandleJoinClass -> h.svc.JoinClass -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// HandleListStudents godoc
// @Summary      List the students of a class
// @Description  Leaderboard view: every student of the class ordered by points, highest first.
// @Tags         students
// @Produce      json
// @Param        classCode  path      string  true  "Class code"
// @Success      200        {array}   domain.Student
// @Failure      500        {object}  response.Err
// @Router       /students/{classCode} [get]
func (h *ClassroomHandler) HandleListStudents(ctx *gin.Context) {
	students, err := h.svc.ListStudents(ctx.Request.Context(), ctx.Param("classCode"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListStudents -> h.svc.ListStudents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// HandleAdjustPoints godoc
// @Summary      Adjust a student's points
// @Description  Adds amount (may be negative) to the student's points. Unknown students are ignored.
// @Tags         points
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdjustPointsRequest  true  "request body"
// @Success      200      {object}  response.Success
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /points/adjust [post]
func (h *ClassroomHandler) HandleAdjustPoints(ctx *gin.Context) {
	var req request.AdjustPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.AdjustPoints(ctx.Request.Context(), *req.StudentID, *req.Amount); err != nil {
		err = fmt.Errorf("v1.HandleAdjustPoints -> h.svc.AdjustPoints -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Success{Success: true})
}
