package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleListTodoDetails(c *gin.Context) {
	details, err := h.todoDetails.ListTodoDetails(c)
	if err != nil {
		h.handleError(c, todoDetailResource, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *handlerImpl) HandleGetTodoDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.todoDetails.GetTodoDetailByID(c, id)
	if err != nil {
		h.handleError(c, todoDetailResource, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
