package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

// parseListQuery reads page, page_size (or limit) and search.
func parseListQuery(c *gin.Context) dto.ListQuery {
	p := utils.ParsePagination(c)
	return dto.ListQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
}

// parseBoolQuery returns nil when the parameter is absent.
func parseBoolQuery(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key+" parameter", "expected true or false")
	}
	return &v, nil
}

// bindJSON wraps gin binding errors so they render as 400 rather than 500.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}

func respondList[T any](c *gin.Context, res *dto.ListResult[T]) {
	utils.ListSuccessResponse(c, res.Items, res.Total, res.Page, res.PageSize)
}
