package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

type todoRequest struct {
	Title      models.Optional[string] `json:"title"`
	Completed  models.Optional[bool]   `json:"completed"`
	UserID     models.Optional[int64]  `json:"user_id"`
	CategoryID models.Optional[int64]  `json:"category_id"`
}

func (r todoRequest) fields() services.TodoFields {
	return services.TodoFields{
		Title:      r.Title,
		Completed:  r.Completed,
		UserID:     r.UserID,
		CategoryID: r.CategoryID,
	}
}

func (h *handlerImpl) HandleListTodos(c *gin.Context) {
	params := services.ListTodosParams{
		Limit:     queryInt(c, "limit", services.DefaultListLimit),
		Offset:    queryInt(c, "offset", services.DefaultListOffset),
		SortField: services.SortField(queryString(c, "sortField", string(services.DefaultSortField))),
		SortOrder: services.SortOrder(queryString(c, "sortOrder", string(services.DefaultSortOrder))),
		Keyword:   c.Query("keyword"),
	}

	todos, err := h.todos.ListTodos(c, params)
	if err != nil {
		h.handleError(c, todoResource, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *handlerImpl) HandleGetTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	todo, err := h.todos.GetTodoByID(c, id)
	if err != nil {
		h.handleError(c, todoResource, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *handlerImpl) HandleCreateTodo(c *gin.Context) {
	var req todoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	id, err := h.todos.CreateTodo(c, req.fields())
	if err != nil {
		h.handleError(c, todoResource, err)
		return
	}
	c.JSON(http.StatusCreated, newCreatedResponse(todoResource, id))
}

func (h *handlerImpl) HandleUpdateTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req todoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	affected, err := h.todos.UpdateTodo(c, id, req.fields())
	h.handleAffected(c, todoResource, actionUpdated, affected, err)
}

func (h *handlerImpl) HandleDeleteTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	affected, err := h.todos.DeleteTodo(c, id)
	h.handleAffected(c, todoResource, actionDeleted, affected, err)
}
