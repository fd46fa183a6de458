package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Jonathan-Rajaratnam/project-management/internal/http/middleware"
	"github.com/Jonathan-Rajaratnam/project-management/internal/model"
	"github.com/Jonathan-Rajaratnam/project-management/internal/service"
)

type Handler struct {
	quotes   *service.QuoteService
	catalog  *service.CatalogService
	finance  *service.FinanceService
	forecast *service.ForecastService
	team     *service.TeamService
	exports  *service.ExportService
	log      zerolog.Logger
}

func NewHandler(
	quotes *service.QuoteService,
	catalog *service.CatalogService,
	finance *service.FinanceService,
	forecast *service.ForecastService,
	team *service.TeamService,
	exports *service.ExportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		quotes:   quotes,
		catalog:  catalog,
		finance:  finance,
		forecast: forecast,
		team:     team,
		exports:  exports,
		log:      log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/quotes/preview", h.previewQuote)
	protected.POST("/quotes", h.createQuote)
	protected.GET("/quotes", h.listQuotes)
	protected.GET("/quotes/export", h.exportQuotes)
	protected.GET("/quotes/:id", h.getQuote)
	protected.GET("/quotes/:id/proposal", h.quoteProposalPDF)
	protected.PATCH("/quotes/:id/status", h.updateQuoteStatus)
	protected.DELETE("/quotes/:id", h.deleteQuote)

	protected.GET("/components", h.listComponents)
	protected.POST("/components", h.createComponent)
	protected.PUT("/components/:id", h.updateComponent)

	protected.GET("/margins", h.listMargins)
	protected.PUT("/margins", h.upsertMargin)
	protected.GET("/margins/suggestion", h.suggestMargin)

	protected.GET("/financials", h.listMonthlyFinancials)
	protected.PUT("/financials", h.saveMonthlyFinancial)

	protected.GET("/fixed-costs", h.listFixedCosts)
	protected.POST("/fixed-costs", h.createFixedCost)
	protected.PUT("/fixed-costs/:id", h.updateFixedCost)

	protected.GET("/team", h.listTeamMembers)
	protected.POST("/team", h.addTeamMember)
	protected.PUT("/team/:id", h.updateTeamMember)
	protected.DELETE("/team/:id", h.removeTeamMember)

	protected.GET("/forecast", h.getForecast)
}

type staffAssignmentPayload struct {
	PersonName string  `json:"person_name"`
	RoleLabel  string  `json:"role_label"`
	WeeklyRate float64 `json:"weekly_rate"`
}

type previewQuoteRequest struct {
	Staffing        []staffAssignmentPayload `json:"staffing"`
	TimelineWeeks   int                      `json:"timeline_weeks" binding:"required"`
	TechStack       []string                 `json:"tech_stack"`
	Complexity      string                   `json:"complexity" binding:"required"`
	PricingStrategy string                   `json:"pricing_strategy"`
}

type createQuoteRequest struct {
	ClientName   string `json:"client_name" binding:"required"`
	ClientEmail  string `json:"client_email"`
	Pages        int    `json:"pages" binding:"required"`
	ProposalText string `json:"proposal_text"`
	previewQuoteRequest
}

type lineItemResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type breakdownResponse struct {
	BaseCost      float64            `json:"base_cost"`
	MarginPercent float64            `json:"margin_percent"`
	MarginPeriod  string             `json:"margin_period"`
	TotalCost     float64            `json:"total_cost"`
	Profit        float64            `json:"profit"`
	LineItems     []lineItemResponse `json:"line_items"`
	Warnings      []string           `json:"warnings,omitempty"`
}

type quoteResponse struct {
	ID              string                   `json:"id"`
	ClientName      string                   `json:"client_name"`
	ClientEmail     string                   `json:"client_email,omitempty"`
	Pages           int                      `json:"pages"`
	Complexity      string                   `json:"complexity"`
	TimelineWeeks   int                      `json:"timeline_weeks"`
	TechStack       []string                 `json:"tech_stack"`
	PricingStrategy string                   `json:"pricing_strategy,omitempty"`
	Staffing        []staffAssignmentPayload `json:"staffing"`
	BaseCost        float64                  `json:"base_cost"`
	MarginPercent   float64                  `json:"margin_percent"`
	TotalCost       float64                  `json:"total_cost"`
	Profit          float64                  `json:"profit"`
	Status          string                   `json:"status"`
	ProposalText    string                   `json:"proposal_text,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
}

func (h *Handler) previewQuote(c *gin.Context) {
	var req previewQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breakdown, err := h.quotes.ComputeQuote(c.Request.Context(), toComputeInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBreakdownResponse(*breakdown))
}

func (h *Handler) createQuote(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quotes.CreateQuote(c.Request.Context(), service.CreateQuoteInput{
		ClientName:        req.ClientName,
		ClientEmail:       req.ClientEmail,
		Pages:             req.Pages,
		ProposalText:      req.ProposalText,
		ComputeQuoteInput: toComputeInput(req.previewQuoteRequest),
	})
	if err != nil {
		if result != nil {
			// The quote was computed but not saved. Return the breakdown so
			// the caller does not lose the figures.
			h.log.Error().Err(err).Msg("quote computed but not persisted")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "quote could not be saved",
				"breakdown": toBreakdownResponse(result.Breakdown),
			})
			return
		}
		h.handleError(c, err)
		return
	}

	h.log.Info().
		Str("quote_id", result.Quote.ID.String()).
		Str("user_id", principal.UserID).
		Msg("quote created")
	c.JSON(http.StatusCreated, gin.H{
		"quote":     toQuoteResponse(result.Quote),
		"breakdown": toBreakdownResponse(result.Breakdown),
	})
}

func (h *Handler) listQuotes(c *gin.Context) {
	quotes, err := h.quotes.ListQuotes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	responses := make([]quoteResponse, 0, len(quotes))
	for _, quote := range quotes {
		responses = append(responses, toQuoteResponse(quote))
	}
	c.JSON(http.StatusOK, gin.H{"quotes": responses})
}

func (h *Handler) getQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
		return
	}
	quote, err := h.quotes.GetQuote(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(*quote))
}

type updateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateQuoteStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
		return
	}
	var req updateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.quotes.UpdateQuoteStatus(c.Request.Context(), id, model.QuoteStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}
	h.log.Info().
		Str("quote_id", id.String()).
		Str("status", req.Status).
		Str("user_id", principal.UserID).
		Msg("quote status updated")
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) deleteQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
		return
	}
	if err := h.quotes.DeleteQuote(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) quoteProposalPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
		return
	}
	result, err := h.exports.ProposalPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) exportQuotes(c *gin.Context) {
	to := time.Now().UTC()
	from := to.AddDate(-1, 0, 0)
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = parsed
	}

	result, err := h.exports.QuotesWorkbook(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

type componentRequest struct {
	Category    string  `json:"category" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	BasePrice   float64 `json:"base_price"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type componentResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description,omitempty"`
	Active      bool    `json:"active"`
}

func (h *Handler) listComponents(c *gin.Context) {
	category := model.ComponentCategory(c.Query("category"))
	components, err := h.catalog.ListComponents(c.Request.Context(), category)
	if err != nil {
		h.handleError(c, err)
		return
	}
	responses := make([]componentResponse, 0, len(components))
	for _, component := range components {
		responses = append(responses, toComponentResponse(component))
	}
	c.JSON(http.StatusOK, gin.H{"components": responses})
}

func (h *Handler) createComponent(c *gin.Context) {
	var req componentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.catalog.CreateComponent(c.Request.Context(), toComponent(req))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toComponentResponse(*created))
}

func (h *Handler) updateComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}
	var req componentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	component := toComponent(req)
	component.ID = id
	if err := h.catalog.UpdateComponent(c.Request.Context(), component); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toComponentResponse(component))
}

type marginRequest struct {
	PeriodKey     string  `json:"period_key" binding:"required"`
	Revenue       float64 `json:"revenue"`
	MarginPercent float64 `json:"margin_percent"`
}

type marginResponse struct {
	PeriodKey     string  `json:"period_key"`
	Revenue       float64 `json:"revenue"`
	MarginPercent float64 `json:"margin_percent"`
}

func (h *Handler) listMargins(c *gin.Context) {
	records, err := h.finance.ListMargins(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	responses := make([]marginResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, marginResponse{
			PeriodKey:     record.PeriodKey,
			Revenue:       record.ObservedRevenue,
			MarginPercent: record.MarginPercent,
		})
	}
	c.JSON(http.StatusOK, gin.H{"margins": responses})
}

func (h *Handler) upsertMargin(c *gin.Context) {
	var req marginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.finance.UpsertMargin(c.Request.Context(), req.PeriodKey, req.Revenue, req.MarginPercent); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, marginResponse(req))
}

func (h *Handler) suggestMargin(c *gin.Context) {
	periodKey := strings.TrimSpace(c.Query("period"))
	if periodKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period query parameter is required"})
		return
	}
	revenue, err := parseFloatQuery(c.Query("revenue"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid revenue"})
		return
	}
	suggested, err := h.finance.SuggestMarginPercent(c.Request.Context(), periodKey, revenue)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period_key": periodKey, "margin_percent": suggested})
}

type monthlyFinancialRequest struct {
	Month         string  `json:"month" binding:"required"`
	Revenue       float64 `json:"revenue"`
	Expenses      float64 `json:"expenses"`
	OverheadCosts float64 `json:"overhead_costs"`
	Notes         string  `json:"notes"`
}

type monthlyFinancialResponse struct {
	Month         string  `json:"month"`
	Revenue       float64 `json:"revenue"`
	Expenses      float64 `json:"expenses"`
	OverheadCosts float64 `json:"overhead_costs"`
	ProfitLoss    float64 `json:"profit_loss"`
	Notes         string  `json:"notes,omitempty"`
}

func (h *Handler) saveMonthlyFinancial(c *gin.Context) {
	var req monthlyFinancialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	month, err := parseDate(req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}
	record := model.MonthlyFinancial{
		Month:         month,
		Revenue:       req.Revenue,
		Expenses:      req.Expenses,
		OverheadCosts: req.OverheadCosts,
		Notes:         req.Notes,
	}
	if err := h.finance.SaveMonthlyFinancial(c.Request.Context(), record); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMonthlyFinancialResponse(model.MonthlyFinancial{
		Month:         month,
		Revenue:       req.Revenue,
		Expenses:      req.Expenses,
		OverheadCosts: req.OverheadCosts,
		ProfitLoss:    req.Revenue - req.Expenses - req.OverheadCosts,
		Notes:         req.Notes,
	}))
}

func (h *Handler) listMonthlyFinancials(c *gin.Context) {
	to := time.Now().UTC()
	from := to.AddDate(-1, 0, 0)
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = parsed
	}
	records, err := h.finance.ListMonthlyFinancials(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	responses := make([]monthlyFinancialResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toMonthlyFinancialResponse(record))
	}
	c.JSON(http.StatusOK, gin.H{"financials": responses})
}

type fixedCostRequest struct {
	Name        string  `json:"name" binding:"required"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency" binding:"required"`
	Description string  `json:"description"`
	Active      *bool   `json:"active"`
}

type fixedCostResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	Description string  `json:"description,omitempty"`
	Active      bool    `json:"active"`
}

func (h *Handler) listFixedCosts(c *gin.Context) {
	costs, err := h.finance.ListFixedCosts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	responses := make([]fixedCostResponse, 0, len(costs))
	for _, cost := range costs {
		responses = append(responses, toFixedCostResponse(cost))
	}
	c.JSON(http.StatusOK, gin.H{"fixed_costs": responses})
}

func (h *Handler) createFixedCost(c *gin.Context) {
	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.finance.CreateFixedCost(c.Request.Context(), model.FixedCost{
		Name:        req.Name,
		Amount:      req.Amount,
		Frequency:   model.CostFrequency(req.Frequency),
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFixedCostResponse(*created))
}

func (h *Handler) updateFixedCost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fixed cost id"})
		return
	}
	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	cost := model.FixedCost{
		ID:          id,
		Name:        req.Name,
		Amount:      req.Amount,
		Frequency:   model.CostFrequency(req.Frequency),
		Description: req.Description,
		Active:      active,
	}
	if err := h.finance.UpdateFixedCost(c.Request.Context(), cost); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFixedCostResponse(cost))
}

type teamMemberRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	RoleType    string  `json:"role_type" binding:"required"`
	DefaultRate float64 `json:"default_rate"`
}

type teamMemberResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	RoleType    string  `json:"role_type"`
	DefaultRate float64 `json:"default_rate"`
	Active      bool    `json:"active"`
}

func (h *Handler) listTeamMembers(c *gin.Context) {
	members, err := h.team.ListMembers(c.Request.Context(), model.RoleType(c.Query("role_type")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	responses := make([]teamMemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, toTeamMemberResponse(member))
	}
	c.JSON(http.StatusOK, gin.H{"members": responses})
}

func (h *Handler) addTeamMember(c *gin.Context) {
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.team.AddMember(c.Request.Context(), model.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		RoleType:    model.RoleType(req.RoleType),
		DefaultRate: req.DefaultRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTeamMemberResponse(*created))
}

func (h *Handler) updateTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member := model.TeamMember{
		ID:          id,
		Name:        req.Name,
		Role:        req.Role,
		RoleType:    model.RoleType(req.RoleType),
		DefaultRate: req.DefaultRate,
	}
	if err := h.team.UpdateMember(c.Request.Context(), member); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTeamMemberResponse(member))
}

func (h *Handler) removeTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}
	if err := h.team.RemoveMember(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type forecastScenarioResponse struct {
	Revenue       float64 `json:"revenue"`
	Expenses      float64 `json:"expenses"`
	OverheadCosts float64 `json:"overhead_costs"`
	ProfitLoss    float64 `json:"profit_loss"`
}

type forecastResponse struct {
	TargetMonth  string                   `json:"target_month"`
	Conservative forecastScenarioResponse `json:"conservative"`
	Optimistic   forecastScenarioResponse `json:"optimistic"`
	Breakeven    struct {
		CurrentRevenue         float64 `json:"current_revenue"`
		NeededRevenue          float64 `json:"needed_revenue"`
		RevenueGap             float64 `json:"revenue_gap"`
		PotentialProjectsValue float64 `json:"potential_projects_value"`
	} `json:"breakeven"`
	PreviousMonth monthlyFinancialResponse `json:"previous_month"`
}

func (h *Handler) getForecast(c *gin.Context) {
	targetMonth := time.Now().UTC()
	if raw := c.Query("month"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		targetMonth = parsed
	}

	forecast, err := h.forecast.Forecast(c.Request.Context(), targetMonth)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var resp forecastResponse
	resp.TargetMonth = forecast.TargetMonth.Format("2006-01")
	resp.Conservative = forecastScenarioResponse(forecast.Conservative)
	resp.Optimistic = forecastScenarioResponse(forecast.Optimistic)
	resp.Breakeven.CurrentRevenue = forecast.Breakeven.CurrentRevenue
	resp.Breakeven.NeededRevenue = forecast.Breakeven.NeededRevenue
	resp.Breakeven.RevenueGap = forecast.Breakeven.RevenueGap
	resp.Breakeven.PotentialProjectsValue = forecast.Breakeven.PotentialProjectsValue
	resp.PreviousMonth = toMonthlyFinancialResponse(forecast.PreviousMonth)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnknownComponent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateMember):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toComputeInput(req previewQuoteRequest) service.ComputeQuoteInput {
	staffing := make([]model.StaffAssignment, 0, len(req.Staffing))
	for _, assignment := range req.Staffing {
		staffing = append(staffing, model.StaffAssignment{
			PersonName: strings.TrimSpace(assignment.PersonName),
			RoleLabel:  strings.TrimSpace(assignment.RoleLabel),
			WeeklyRate: assignment.WeeklyRate,
		})
	}
	return service.ComputeQuoteInput{
		Staffing:        staffing,
		TimelineWeeks:   req.TimelineWeeks,
		TechStack:       req.TechStack,
		Complexity:      strings.TrimSpace(req.Complexity),
		PricingStrategy: strings.TrimSpace(req.PricingStrategy),
	}
}

func toBreakdownResponse(breakdown model.Breakdown) breakdownResponse {
	items := make([]lineItemResponse, 0, len(breakdown.LineItems))
	for _, item := range breakdown.LineItems {
		items = append(items, lineItemResponse(item))
	}
	return breakdownResponse{
		BaseCost:      breakdown.BaseCost,
		MarginPercent: breakdown.MarginPercent,
		MarginPeriod:  breakdown.MarginPeriod,
		TotalCost:     breakdown.TotalCost,
		Profit:        breakdown.Profit,
		LineItems:     items,
		Warnings:      breakdown.Warnings,
	}
}

func toQuoteResponse(quote model.Quote) quoteResponse {
	staffing := make([]staffAssignmentPayload, 0, len(quote.Staffing))
	for _, assignment := range quote.Staffing {
		staffing = append(staffing, staffAssignmentPayload(assignment))
	}
	return quoteResponse{
		ID:              quote.ID.String(),
		ClientName:      quote.ClientName,
		ClientEmail:     quote.ClientEmail,
		Pages:           quote.Pages,
		Complexity:      quote.Complexity,
		TimelineWeeks:   quote.TimelineWeeks,
		TechStack:       quote.TechStack,
		PricingStrategy: quote.PricingStrategy,
		Staffing:        staffing,
		BaseCost:        quote.BaseCost,
		MarginPercent:   quote.MarginPercent,
		TotalCost:       quote.TotalCost,
		Profit:          quote.Profit,
		Status:          string(quote.Status),
		ProposalText:    quote.ProposalText,
		CreatedAt:       quote.CreatedAt,
	}
}

func toComponent(req componentRequest) model.PricingComponent {
	multiplier := req.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	return model.PricingComponent{
		Category:    model.ComponentCategory(req.Category),
		Name:        strings.TrimSpace(req.Name),
		BasePrice:   req.BasePrice,
		Multiplier:  multiplier,
		Description: req.Description,
	}
}

func toComponentResponse(component model.PricingComponent) componentResponse {
	return componentResponse{
		ID:          component.ID.String(),
		Category:    string(component.Category),
		Name:        component.Name,
		BasePrice:   component.BasePrice,
		Multiplier:  component.Multiplier,
		Description: component.Description,
		Active:      component.Active,
	}
}

func toMonthlyFinancialResponse(record model.MonthlyFinancial) monthlyFinancialResponse {
	month := ""
	if !record.Month.IsZero() {
		month = record.Month.Format("2006-01")
	}
	return monthlyFinancialResponse{
		Month:         month,
		Revenue:       record.Revenue,
		Expenses:      record.Expenses,
		OverheadCosts: record.OverheadCosts,
		ProfitLoss:    record.ProfitLoss,
		Notes:         record.Notes,
	}
}

func toFixedCostResponse(cost model.FixedCost) fixedCostResponse {
	return fixedCostResponse{
		ID:          cost.ID.String(),
		Name:        cost.Name,
		Amount:      cost.Amount,
		Frequency:   string(cost.Frequency),
		Description: cost.Description,
		Active:      cost.Active,
	}
}

func toTeamMemberResponse(member model.TeamMember) teamMemberResponse {
	return teamMemberResponse{
		ID:          member.ID.String(),
		Name:        member.Name,
		Role:        member.Role,
		RoleType:    string(member.RoleType),
		DefaultRate: member.DefaultRate,
		Active:      member.Active,
	}
}

func parseFloatQuery(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
