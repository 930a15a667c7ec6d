package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taafi-health-tools/internal/catalog"
	"taafi-health-tools/internal/export"
	"taafi-health-tools/internal/healthcalc"
	"taafi-health-tools/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *HealthToolsServer) handleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": catalog.Tools()})
}

// QuestionInfo describes one questionnaire item and the answer keys it accepts.
type QuestionInfo struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// ToolDetail is a catalog entry plus what a client needs to build its form.
type ToolDetail struct {
	catalog.Tool
	Questions  []QuestionInfo `json:"questions,omitempty"`
	VaccineIDs []string       `json:"vaccineIds,omitempty"`
}

var keyedScreeners = map[string]healthcalc.Screener{
	"diabetes_risk": healthcalc.DiabetesRisk,
	"dental_risk":   healthcalc.DentalRisk,
}

func toolDetail(tool catalog.Tool) ToolDetail {
	detail := ToolDetail{Tool: tool}
	if screener, ok := keyedScreeners[tool.Name]; ok {
		for _, q := range screener.Questions {
			detail.Questions = append(detail.Questions, QuestionInfo{
				ID:      q.ID,
				Text:    q.Text,
				Options: q.OptionKeys(),
			})
		}
	}
	if tool.Name == "vaccination_schedule" {
		detail.VaccineIDs = healthcalc.VaccineIDs()
	}
	return detail
}

func (s *HealthToolsServer) handleGetTool(c *gin.Context) {
	tool, ok := catalog.Lookup(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": fmt.Sprintf("unknown tool: %s", c.Param("name"))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toolDetail(tool)})
}

func (s *HealthToolsServer) handleRecommend(c *gin.Context) {
	var params RecommendParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	data, err := s.callTool(c.Request.Context(), "recommend_tool", map[string]interface{}{
		"text":  params.Text,
		"limit": params.Limit,
	}, models.ChannelREST)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// handleVaccinationExport takes vaccination_schedule arguments and answers
// with the schedule as a spreadsheet.
func (s *HealthToolsServer) handleVaccinationExport(c *gin.Context) {
	args := map[string]interface{}{}
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := s.vaccinationResult(args)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	data, err := export.VaccinationWorkbook(result)
	if err != nil {
		s.logger.Error("failed to build vaccination workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to build workbook"})
		return
	}

	s.recordUsage(c.Request.Context(), "vaccination_schedule", models.ChannelREST)
	c.Header("Content-Disposition", "attachment; filename=vaccination-schedule.xlsx")
	c.Data(http.StatusOK, xlsxContentType, data)
}
