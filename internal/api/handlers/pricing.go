// Package handlers exposes the pricing engine over HTTP. The handlers
// collect and validate raw inputs and translate engine failures into the
// error envelope; all numerical work stays in internal/pricing.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/contactkeval/option-pricer/internal/api/models"
	"github.com/contactkeval/option-pricer/internal/pricing"

	"github.com/gin-gonic/gin"
)

// PricingHandler handles pricing and implied-vol requests.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Price handles POST /api/v1/price.
func (h *PricingHandler) Price(c *gin.Context) {
	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	in, err := toMarketInputs(req.Spot, req.Strike, req.ValuationDate, req.ExerciseDate,
		req.VolatilityPct, req.RatePct, req.DividendPct)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	res, err := pricing.Price(in)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.PriceResponse{Result: *res}
	if req.IncludeCurve {
		curve, err := pricing.BuildCurve(in, direction(req.Direction), res.Call.Price, res.Put.Price)
		if err != nil {
			writeEngineError(c, err)
			return
		}
		resp.Curve = curve
	}
	c.JSON(http.StatusOK, resp)
}

// ImpliedVol handles POST /api/v1/implied-vol.
func (h *PricingHandler) ImpliedVol(c *gin.Context) {
	var req models.ImpliedVolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	in, err := toMarketInputs(req.Spot, req.Strike, req.ValuationDate, req.ExerciseDate,
		0, req.RatePct, req.DividendPct)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	solved, err := pricing.SolveImpliedVol(in, pricing.Side(req.Side), req.MarketPrice)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.ImpliedVolResponse{
		ImpliedVolPct: solved.VolPct,
		Result:        solved.Result,
	}
	if req.IncludeCurve {
		// Re-derive the curve at the solved volatility.
		in.VolPct = solved.VolPct
		curve, err := pricing.BuildCurve(in, direction(req.Direction), solved.Call.Price, solved.Put.Price)
		if err != nil {
			writeEngineError(c, err)
			return
		}
		resp.Curve = curve
	}
	c.JSON(http.StatusOK, resp)
}

// Curve handles POST /api/v1/curve.
func (h *PricingHandler) Curve(c *gin.Context) {
	var req models.CurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	in, err := toMarketInputs(req.Spot, req.Strike, req.ValuationDate, req.ExerciseDate,
		req.VolatilityPct, req.RatePct, req.DividendPct)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	// Entry prices default to the theoretical prices at the current spot.
	res, err := pricing.Price(in)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	entryCall := res.Call.Price
	if req.EntryCallPrice != nil {
		entryCall = *req.EntryCallPrice
	}
	entryPut := res.Put.Price
	if req.EntryPutPrice != nil {
		entryPut = *req.EntryPutPrice
	}

	curve, err := pricing.BuildCurve(in, direction(req.Direction), entryCall, entryPut)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CurveResponse{Curve: curve})
}

func toMarketInputs(spot, strike float64, valuationDate, exerciseDate string, volPct, ratePct, divPct float64) (pricing.MarketInputs, error) {
	valuation, err := time.Parse("2006-01-02", valuationDate)
	if err != nil {
		return pricing.MarketInputs{}, fmt.Errorf("valuation_date: %w", err)
	}
	exercise, err := time.Parse("2006-01-02", exerciseDate)
	if err != nil {
		return pricing.MarketInputs{}, fmt.Errorf("exercise_date: %w", err)
	}
	return pricing.MarketInputs{
		Spot:        spot,
		Strike:      strike,
		Valuation:   valuation,
		Exercise:    exercise,
		VolPct:      volPct,
		RatePct:     ratePct,
		DividendPct: divPct,
	}, nil
}

func direction(s string) pricing.Direction {
	if pricing.Direction(s) == pricing.Short {
		return pricing.Short
	}
	return pricing.Long
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

// writeEngineError maps the engine's typed failures onto HTTP statuses.
// Non-convergence is not a caller mistake, so it gets 422 rather than 400.
func writeEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidInput):
		badRequest(c, "INVALID_INPUT", err.Error())
	case errors.Is(err, pricing.ErrNonConvergence):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NON_CONVERGENCE", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
	}
}
