package handlers

import (
	"net/http"

	"travelease/middleware"
	"travelease/models"
	"travelease/services/chatbot"
	"travelease/services/planner"
	"travelease/services/pricing"
	"travelease/utils"

	"github.com/gin-gonic/gin"
)

// AIHandler serves the budget suggester, the planner questionnaire and
// the chat endpoint.
type AIHandler struct {
	Planner planner.Service
	Chat    chatbot.Service
}

func NewAIHandler(plannerSvc planner.Service, chatSvc chatbot.Service) *AIHandler {
	return &AIHandler{Planner: plannerSvc, Chat: chatSvc}
}

// Suggest applies the budget classification rules.
func (h *AIHandler) Suggest(c *gin.Context) {
	var input struct {
		Budget float64 `json:"budget"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	suggestion, estimatedCost := pricing.SuggestTrip(input.Budget)
	c.JSON(http.StatusOK, gin.H{
		"suggestion":    suggestion,
		"estimatedCost": estimatedCost,
	})
}

// PlannerStart opens a questionnaire session and returns the first
// question.
func (h *AIHandler) PlannerStart(c *gin.Context) {
	sess, err := h.Planner.Start(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not start planner session", err.Error())
		return
	}

	question, _ := planner.CurrentQuestion(sess)
	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"phase":     sess.Phase,
		"question":  question,
	})
}

// PlannerAnswer records one answer and returns either the next
// question or the completed result.
func (h *AIHandler) PlannerAnswer(c *gin.Context) {
	sessionID := c.Param("id")

	var input struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	sess, err := h.Planner.Answer(c.Request.Context(), sessionID, input.Key, input.Value)
	switch err {
	case nil:
	case planner.ErrSessionNotFound:
		utils.JSONError(c, http.StatusNotFound, "Planner session not found", sessionID)
		return
	case planner.ErrSessionComplete:
		utils.JSONError(c, http.StatusConflict, "Planner session already complete", sessionID)
		return
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Planner session failed", err.Error())
		return
	}

	resp := gin.H{
		"sessionId": sess.ID,
		"phase":     sess.Phase,
	}
	if question, ok := planner.CurrentQuestion(sess); ok {
		resp["question"] = question
	}
	if sess.Result != nil {
		resp["result"] = sess.Result
	}
	c.JSON(http.StatusOK, resp)
}

// HandleChat routes one chat message.
func (h *AIHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if uid := middleware.UserID(c); uid != "" {
		req.UserID = uid
	}

	c.JSON(http.StatusOK, h.Chat.Respond(c.Request.Context(), req))
}
