package handlers

import (
	"edu-turkish-backend/internal/repository"
	"edu-turkish-backend/internal/services"
	"edu-turkish-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ContentHandler serves the FAQ, review and blog sections of the site.
type ContentHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewContentHandler(service services.CatalogService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger,
	}
}

// GetFAQs godoc
// @Summary List FAQs
// @Tags content
// @Produce json
// @Param lang query string false "Locale" default(ru)
// @Param category query string false "FAQ category"
// @Param search query string false "Search in question and answer"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} utils.StandardResponse{data=[]dto.FAQ,meta=utils.PaginationMeta}
// @Failure 500 {object} utils.StandardResponse
// @Router /faqs [get]
func (h *ContentHandler) GetFAQs(c *fiber.Ctx) error {
	q := repository.FAQQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	result, err := h.service.ListFAQs(c.Context(), requestLocale(c), q)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list FAQs")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve FAQs")
	}

	meta := utils.CreatePaginationMeta(result.Page, result.Limit, result.Total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "FAQs retrieved successfully", result.Data, meta)
}

// GetReviews godoc
// @Summary List published reviews
// @Tags content
// @Produce json
// @Param lang query string false "Locale" default(ru)
// @Param university_id query int false "Only reviews of this university"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} utils.StandardResponse{data=[]dto.Review,meta=utils.PaginationMeta}
// @Failure 500 {object} utils.StandardResponse
// @Router /reviews [get]
func (h *ContentHandler) GetReviews(c *fiber.Ctx) error {
	q := repository.ReviewQuery{
		UniversityID: queryUint(c, "university_id"),
		Page:         queryInt(c, "page"),
		Limit:        queryInt(c, "limit"),
	}

	result, err := h.service.ListReviews(c.Context(), requestLocale(c), q)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list reviews")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve reviews")
	}

	meta := utils.CreatePaginationMeta(result.Page, result.Limit, result.Total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Reviews retrieved successfully", result.Data, meta)
}

// GetBlogArticles godoc
// @Summary List published blog articles
// @Tags blog
// @Produce json
// @Param lang query string false "Locale" default(ru)
// @Param category query string false "Article category"
// @Param search query string false "Search in title and excerpt"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} utils.StandardResponse{data=[]dto.BlogArticle,meta=utils.PaginationMeta}
// @Failure 500 {object} utils.StandardResponse
// @Router /blog [get]
func (h *ContentHandler) GetBlogArticles(c *fiber.Ctx) error {
	q := repository.BlogQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	result, err := h.service.ListBlogArticles(c.Context(), requestLocale(c), q)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list blog articles")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve articles")
	}

	meta := utils.CreatePaginationMeta(result.Page, result.Limit, result.Total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Articles retrieved successfully", result.Data, meta)
}

// GetBlogArticle godoc
// @Summary Get blog article by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Article slug"
// @Param lang query string false "Locale" default(ru)
// @Success 200 {object} utils.StandardResponse{data=dto.BlogArticle}
// @Failure 404 {object} utils.StandardResponse
// @Router /blog/{slug} [get]
func (h *ContentHandler) GetBlogArticle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	article, err := h.service.GetBlogArticle(c.Context(), slug, requestLocale(c))
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("Failed to get blog article")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve article")
	}
	if article == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Article not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Article retrieved successfully", article)
}
