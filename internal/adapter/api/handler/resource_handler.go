package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"beyondtheory/internal/usecase"
	"beyondtheory/pkg/response"
)

type ResourceHandler struct {
	resourceUseCase *usecase.ResourceUseCase
}

func NewResourceHandler(resourceUseCase *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{
		resourceUseCase: resourceUseCase,
	}
}

type createResourceRequest struct {
	Title       string   `json:"title" validate:"required"`
	URL         string   `json:"url" validate:"required,url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (h *ResourceHandler) ListResources(c echo.Context) error {
	if keyword := c.QueryParam("q"); keyword != "" {
		resources, err := h.resourceUseCase.Search(c.Request().Context(), keyword)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, resources)
	}

	resources, err := h.resourceUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, resources)
}

func (h *ResourceHandler) CreateResource(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createResourceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	resource, err := h.resourceUseCase.Create(c.Request().Context(), userID, usecase.CreateResourceInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, resource)
}

func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	userID := c.Get("uid").(string)
	resourceID := c.Param("id")

	if err := h.resourceUseCase.Delete(c.Request().Context(), userID, resourceID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}
