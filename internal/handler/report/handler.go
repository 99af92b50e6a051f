package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/service/report"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service report.Servicer
}

func NewHandler(service report.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/census.xlsx", h.DownloadCensus)
	}
}

func (h *Handler) DownloadCensus(c *gin.Context) {
	data, err := h.service.Census(c.Request.Context())
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	filename := fmt.Sprintf("census-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
