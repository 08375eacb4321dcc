package handlers

import (
	"cookbook/domain"
	"cookbook/internal/api/presenters"
	"cookbook/pkg/scale"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	ScaleHandler interface {
		ScaleRecipe(c *fiber.Ctx) error
	}

	scaleHandler struct {
		scaleService scale.ScaleService
	}
)

func NewScaleHandler(scaleService scale.ScaleService) ScaleHandler {
	return &scaleHandler{scaleService: scaleService}
}

func (h *scaleHandler) ScaleRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScaleRecipe, err)
	}

	serve, err := strconv.Atoi(c.Query("serve", "0"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScaleRecipe, domain.ErrInvalidScaleServe)
	}

	res, err := h.scaleService.Scale(c.Context(), recipeID, serve)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedScaleRecipe, err)
		}
		if errors.Is(err, domain.ErrInvalidScaleServe) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScaleRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedScaleRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScaleRecipe)
}
