package handlers

import (
	"edu-turkish-backend/internal/repository"
	"edu-turkish-backend/internal/services"
	"edu-turkish-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UniversityHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewUniversityHandler(service services.CatalogService, logger *logrus.Logger) *UniversityHandler {
	return &UniversityHandler{
		service: service,
		logger:  logger,
	}
}

// GetUniversities godoc
// @Summary List universities
// @Description Filtered, sorted and paginated university catalog with filter facets
// @Tags universities
// @Accept json
// @Produce json
// @Param lang query string false "Locale (ru, en, kk, tr)" default(ru)
// @Param q query string false "Search by title or description"
// @Param city query string false "City name"
// @Param type query string false "University type label (state/private)"
// @Param level query string false "Degree level label"
// @Param langs query []string false "Teaching language codes" collectionFormat(csv)
// @Param price_min query number false "Minimum tuition"
// @Param price_max query number false "Maximum tuition"
// @Param sort query string false "pop, price_asc, price_desc, alpha, lang_en" default(pop)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} utils.StandardResponse{data=[]dto.University} "meta holds pagination, filters and locale"
// @Failure 500 {object} utils.StandardResponse
// @Router /universities [get]
func (h *UniversityHandler) GetUniversities(c *fiber.Ctx) error {
	loc := requestLocale(c)
	filter := parseFilter(c)

	result, err := h.service.ListUniversities(c.Context(), filter, loc)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list universities")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve universities")
	}

	meta := utils.CreatePaginationMeta(result.Page, result.Limit, result.Total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Universities retrieved successfully", result.Data, fiber.Map{
		"pagination": meta,
		"filters":    result.Filters,
		"locale":     loc.Normalized,
	})
}

// GetUniversityByID godoc
// @Summary Get university by ID
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Param lang query string false "Locale" default(ru)
// @Success 200 {object} utils.StandardResponse{data=dto.UniversityDetail}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /universities/{id} [get]
func (h *UniversityHandler) GetUniversityByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid university ID")
	}

	detail, err := h.service.GetUniversity(c.Context(), id, requestLocale(c))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get university")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve university")
	}
	if detail == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "University not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "University retrieved successfully", detail)
}

// GetUniversityBySlug godoc
// @Summary Get university by slug
// @Tags universities
// @Produce json
// @Param slug path string true "University slug"
// @Param lang query string false "Locale" default(ru)
// @Success 200 {object} utils.StandardResponse{data=dto.UniversityDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /universities/slug/{slug} [get]
func (h *UniversityHandler) GetUniversityBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	detail, err := h.service.GetUniversityBySlug(c.Context(), slug, requestLocale(c))
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("Failed to get university")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve university")
	}
	if detail == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "University not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "University retrieved successfully", detail)
}

// GetFilters godoc
// @Summary Get catalog filter facets
// @Description Cities, types, levels, languages and the price range across the whole catalog
// @Tags universities
// @Produce json
// @Param lang query string false "Locale" default(ru)
// @Success 200 {object} utils.StandardResponse{data=dto.UniversityFilters}
// @Failure 500 {object} utils.StandardResponse
// @Router /universities/filters [get]
func (h *UniversityHandler) GetFilters(c *fiber.Ctx) error {
	filters, err := h.service.GetFilters(c.Context(), requestLocale(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to build filters")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve filters")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Filters retrieved successfully", filters)
}

// GetDirections godoc
// @Summary List study directions
// @Tags directions
// @Produce json
// @Param lang query string false "Locale" default(ru)
// @Param search query string false "Search by direction name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} utils.StandardResponse{data=[]dto.Direction,meta=utils.PaginationMeta}
// @Failure 500 {object} utils.StandardResponse
// @Router /directions [get]
func (h *UniversityHandler) GetDirections(c *fiber.Ctx) error {
	q := repository.DirectionQuery{
		Search: c.Query("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	result, err := h.service.ListDirections(c.Context(), requestLocale(c), q)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list directions")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve directions")
	}

	meta := utils.CreatePaginationMeta(result.Page, result.Limit, result.Total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Directions retrieved successfully", result.Data, meta)
}

// GetUniversitiesByDirection godoc
// @Summary List universities offering a study direction
// @Tags directions
// @Produce json
// @Param slug path string true "Direction slug"
// @Param lang query string false "Locale" default(ru)
// @Success 200 {object} utils.StandardResponse{data=[]dto.University}
// @Failure 500 {object} utils.StandardResponse
// @Router /directions/{slug}/universities [get]
func (h *UniversityHandler) GetUniversitiesByDirection(c *fiber.Ctx) error {
	slug := c.Params("slug")

	universities, err := h.service.UniversitiesByDirection(c.Context(), slug, requestLocale(c))
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("Failed to list universities by direction")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve universities")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Universities retrieved successfully", universities)
}
