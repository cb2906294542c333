package handlers

import (
	"net/http"

	"github.com/Ayash-Bera/fortaleza/internal/health"
	"github.com/Ayash-Bera/fortaleza/pkg/utils"
	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	checker   *health.Checker
	indexHTML []byte
}

func NewSystemHandler(checker *health.Checker, indexHTML []byte) *SystemHandler {
	return &SystemHandler{
		checker:   checker,
		indexHTML: indexHTML,
	}
}

func (h *SystemHandler) HandleHealth(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.checker.Check())
}

func (h *SystemHandler) HandleInfo(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.checker.Info())
}

func (h *SystemHandler) HandleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.indexHTML)
}

// HandleNotFound sends unknown GETs back to the entry page when redirect is
// set; everything else gets a JSON 404.
func (h *SystemHandler) HandleNotFound(redirect bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redirect && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		utils.ErrorResponse(c, http.StatusNotFound, "Rota não encontrada")
	}
}
