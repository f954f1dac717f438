package report

import (
	"fmt"
	"net/http"

	"gymdesk/internal/api"
	"gymdesk/internal/dashboard"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gyms/:gymId/reports/revenue.xlsx", h.DownloadRevenue)
}

// DownloadRevenue godoc
// @Summary      Download revenue report
// @Description  XLSX workbook with revenue per period and active memberships per plan type.
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        gymId   path   int     true   "Gym ID"
// @Param        period  query  string  false  "monthly or yearly"  Enums(monthly, yearly)  default(monthly)
// @Success      200     {file}    file
// @Failure      400     {object}  api.ErrorResponse
// @Failure      403     {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/reports/revenue.xlsx [get]
func (h *Handler) DownloadRevenue(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	gymID, err := api.ParamID(c, "gymId", "gym")
	if err != nil {
		c.Error(err)
		return
	}
	period := c.DefaultQuery("period", dashboard.PeriodMonthly)

	data, err := h.service.RevenueWorkbook(c.Request.Context(), userID, gymID, period)
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("gym-%d-revenue-%s.xlsx", gymID, period)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
