package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

type todoLogRequest struct {
	TodoID models.Optional[int64]  `json:"todo_id"`
	Action models.Optional[string] `json:"action"`
}

func (h *handlerImpl) HandleListTodoLogs(c *gin.Context) {
	logs, err := h.todoLogs.ListTodoLogs(c)
	if err != nil {
		h.handleError(c, todoLogResource, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *handlerImpl) HandleGetTodoLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	log, err := h.todoLogs.GetTodoLogByID(c, id)
	if err != nil {
		h.handleError(c, todoLogResource, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *handlerImpl) HandleCreateTodoLog(c *gin.Context) {
	var req todoLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	id, err := h.todoLogs.CreateTodoLog(c, services.TodoLogFields{
		TodoID: req.TodoID,
		Action: req.Action,
	})
	if err != nil {
		h.handleError(c, todoLogResource, err)
		return
	}
	c.JSON(http.StatusCreated, newCreatedResponse(todoLogResource, id))
}

func (h *handlerImpl) HandleDeleteTodoLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	affected, err := h.todoLogs.DeleteTodoLog(c, id)
	h.handleAffected(c, todoLogResource, actionDeleted, affected, err)
}
