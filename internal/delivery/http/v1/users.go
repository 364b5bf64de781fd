package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

type userRequest struct {
	Username models.Optional[string] `json:"username"`
	Email    models.Optional[string] `json:"email"`
}

func (r userRequest) fields() services.UserFields {
	return services.UserFields{
		Username: r.Username,
		Email:    r.Email,
	}
}

func (h *handlerImpl) HandleListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c)
	if err != nil {
		h.handleError(c, userResource, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *handlerImpl) HandleGetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(c, id)
	if err != nil {
		h.handleError(c, userResource, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *handlerImpl) HandleCreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	id, err := h.users.CreateUser(c, req.fields())
	if err != nil {
		h.handleError(c, userResource, err)
		return
	}
	c.JSON(http.StatusCreated, newCreatedResponse(userResource, id))
}

func (h *handlerImpl) HandleUpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	affected, err := h.users.UpdateUser(c, id, req.fields())
	h.handleAffected(c, userResource, actionUpdated, affected, err)
}

func (h *handlerImpl) HandleDeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	affected, err := h.users.DeleteUser(c, id)
	h.handleAffected(c, userResource, actionDeleted, affected, err)
}
