package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub/backend/internal/serializer"
)

// region --- DTOs ---

// CourseInput defines the body for creating a course.
type CourseInput struct {
	Code string `json:"code" binding:"required" example:"CS1998"`
	Name string `json:"name" binding:"required" example:"Intro to Backend"`
}

// EnrollInput defines the body for enrolling a user in a course.
type EnrollInput struct {
	UserID *uint `json:"user_id" binding:"required"`
}

// CourseListResponse wraps the course collection the way the API exposes it.
type CourseListResponse struct {
	Courses []serializer.CourseFull `json:"courses"`
}

// endregion

// GetCourses godoc
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  CourseListResponse
// @Router       /courses [get]
func (h *Handler) GetCourses(c *gin.Context) {
	courses, err := h.store.ListCourses()
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]serializer.CourseFull, 0, len(courses))
	for _, course := range courses {
		full, err := h.serializer.FullCourse(course)
		if err != nil {
			respondError(c, err)
			return
		}
		response = append(response, full)
	}
	c.JSON(http.StatusOK, CourseListResponse{Courses: response})
}

// CreateCourse godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        input body CourseInput true "Course Info"
// @Success      201  {object}  serializer.CourseFull
// @Failure      400  {object}  ErrorResponse "Missing required fields"
// @Router       /courses [post]
func (h *Handler) CreateCourse(c *gin.Context) {
	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.store.CreateCourse(input.Code, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullCourse(course)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}

// GetCourse godoc
// @Summary      Get a course by ID
// @Tags         courses
// @Produce      json
// @Param        id path int true "Course ID"
// @Success      200  {object}  serializer.CourseFull
// @Failure      404  {object}  ErrorResponse "Course not found"
// @Router       /courses/{id} [get]
func (h *Handler) GetCourse(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	course, err := h.store.GetCourse(id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullCourse(course)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Description  Deletes a course, its lobbies, and those lobbies' memberships, returning a snapshot taken before the delete. Enrolled users are untouched.
// @Tags         courses
// @Produce      json
// @Param        id path int true "Course ID"
// @Success      200  {object}  serializer.CourseFull
// @Failure      404  {object}  ErrorResponse "Course not found"
// @Router       /courses/{id} [delete]
func (h *Handler) DeleteCourse(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	course, err := h.store.GetCourse(id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullCourse(course)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.DeleteCourse(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// AddUserToCourse godoc
// @Summary      Enroll a user in a course
// @Description  Enrolls a user; enrolling twice leaves a single association row. Returns the enrolled user in full form.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id    path int         true "Course ID"
// @Param        input body EnrollInput true "Enrollment Info"
// @Success      200  {object}  serializer.UserFull
// @Failure      400  {object}  ErrorResponse "Missing required fields"
// @Failure      404  {object}  ErrorResponse "Course or user not found"
// @Router       /courses/{id}/add [post]
func (h *Handler) AddUserToCourse(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddUserToCourse(id, *input.UserID); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.store.GetUser(*input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	full, err := h.serializer.FullUser(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}
