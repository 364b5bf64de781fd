package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

type categoryRequest struct {
	Name models.Optional[string] `json:"name"`
}

func (h *handlerImpl) HandleListCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c)
	if err != nil {
		h.handleError(c, categoryResource, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlerImpl) HandleGetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categories.GetCategoryByID(c, id)
	if err != nil {
		h.handleError(c, categoryResource, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *handlerImpl) HandleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	id, err := h.categories.CreateCategory(c, services.CategoryFields{Name: req.Name})
	if err != nil {
		h.handleError(c, categoryResource, err)
		return
	}
	c.JSON(http.StatusCreated, newCreatedResponse(categoryResource, id))
}

func (h *handlerImpl) HandleUpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	affected, err := h.categories.UpdateCategory(c, id, services.CategoryFields{Name: req.Name})
	h.handleAffected(c, categoryResource, actionUpdated, affected, err)
}

func (h *handlerImpl) HandleDeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	affected, err := h.categories.DeleteCategory(c, id)
	h.handleAffected(c, categoryResource, actionDeleted, affected, err)
}
