package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/services"
)

// xlsxMIME is the media type of an Office Open XML workbook.
const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportReport godoc
// @ID          exportReport
// @Summary     Download the learning report
// @Description Excel workbook with the user's page progress, quiz history and bookmarks.
// @Tags        Report
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Success     200  {file}   file
// @Header      200  {string} Content-Disposition "attachment; filename=learning-report-YYYYMMDD.xlsx"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Failure     500  {object} handlers.ErrorResponse "Export failed"
// @Router      /report.xlsx [get]
func (h *Handlers) ExportReport(c *gin.Context) {
	data, err := h.reportSvc.Export(c.Request.Context(), h.userID(c))
	if err != nil {
		if services.KindOf(err) == services.KindUnknown {
			_ = c.Error(err)
			fail(c, http.StatusInternalServerError, ErrCodeExportFailed, "could not build the report")
			return
		}
		failErr(c, err)
		return
	}
	name := fmt.Sprintf("learning-report-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, xlsxMIME, data)
}
